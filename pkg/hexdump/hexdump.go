// Package hexdump renders memory snapshots for diagnostics: 16 bytes per
// line, grouped in eights, with printable ASCII on the right.
package hexdump

import (
	"fmt"
	"io"
	"strings"

	"github.com/joshuapare/scankit/pkg/types"
)

// Write renders buffer to w, labeling each line with its absolute address
// starting at base.
func Write(w io.Writer, base types.Address, buffer []byte) {
	for i := 0; i < len(buffer); i += 16 {
		fmt.Fprintf(w, "%12X:", uint64(base)+uint64(i))
		for j := 0; j < 16; j++ {
			if j == 8 {
				fmt.Fprint(w, " ")
			}
			if i+j < len(buffer) {
				fmt.Fprintf(w, " %02x", buffer[i+j])
			} else {
				fmt.Fprint(w, "   ")
			}
		}

		fmt.Fprint(w, "  |")

		for j := 0; j < 16; j++ {
			if i+j < len(buffer) && buffer[i+j] >= 32 && buffer[i+j] <= 126 {
				fmt.Fprintf(w, "%c", buffer[i+j])
			} else {
				fmt.Fprint(w, " ")
			}
		}

		fmt.Fprintln(w, "|")
	}
}

// String renders buffer as with Write and returns the result.
func String(base types.Address, buffer []byte) string {
	var sb strings.Builder
	Write(&sb, base, buffer)
	return sb.String()
}
