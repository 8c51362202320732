package scan_test

import (
	"fmt"

	"github.com/joshuapare/scankit/internal/codec"
	"github.com/joshuapare/scankit/pkg/namepool"
	"github.com/joshuapare/scankit/pkg/scan"
	"github.com/joshuapare/scankit/pkg/snapshot"
)

// Example locates a known 32-bit constant inside a captured region.
func Example() {
	buf := make([]byte, 32)
	codec.PutUint(buf, 12, codec.Width32, 1234)

	mem := snapshot.FromBytes(0x7FF6000, buf)
	res := scan.Find(mem.Region(), scan.Exact(1234, codec.Width32), mem, nil)

	fmt.Println(res.Found, res.Addr)
	// Output: true 0x7FF600C
}

// ExampleName resolves a field offset by scanning an object image for the
// identifier of a known property name.
func ExampleName() {
	names := namepool.Table{
		501: "ObjectFlags",
		502: "Health",
	}

	object := make([]byte, 16)
	codec.PutUint(object, 4, codec.Width32, 501)
	codec.PutUint(object, 12, codec.Width32, 502)

	mem := snapshot.FromBytes(0x9000, object)
	s := scan.New(mem, names)

	res := s.Find(mem.Region(), scan.Name("Health", true))
	fmt.Printf("Health id found at offset +0x%X\n", uint64(res.Addr)-0x9000)
	// Output: Health id found at offset +0xC
}

// ExampleBetween finds the first element inside a closed interval.
func ExampleBetween() {
	buf := make([]byte, 12)
	codec.PutUint(buf, 0, codec.Width32, 9)
	codec.PutUint(buf, 4, codec.Width32, 15)
	codec.PutUint(buf, 8, codec.Width32, 21)

	mem := snapshot.FromBytes(0x1000, buf)
	res := scan.Find(mem.Region(), scan.Between(10, 20, codec.Width32), mem, nil)

	fmt.Println(res.Addr)
	// Output: 0x1004
}
