//go:build !linux && !windows

package procmem

import (
	"fmt"
	"runtime"

	"github.com/joshuapare/scankit/pkg/types"
)

func open(pid int) (Process, error) {
	return nil, &types.Error{
		Kind: types.ErrKindAttach,
		Msg:  fmt.Sprintf("process memory access is not supported on %s", runtime.GOOS),
	}
}
