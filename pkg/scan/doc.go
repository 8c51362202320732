// Package scan locates a target value inside a contiguous region of a
// target address space and reports the absolute address of the first match.
//
// A scan walks the region in fixed-width little-endian strides and applies
// one of three match policies: exact numeric equality, bounded-interval
// membership, or symbolic name comparison through a types.Resolver. Symbolic
// scans always walk in 4-byte steps because name identifiers are 32-bit.
//
// The engine is deliberately permissive: an unmapped base address, a failed
// or shortened read, and a region with no satisfying element all collapse to
// a not-found Result. The Reason field carries a diagnostic hint but never
// changes the found/not-found contract.
//
// Basic usage:
//
//	mem := snapshot.FromBytes(0x1000, data)
//	res := scan.Find(types.Region{Base: 0x1000, Size: 0x200},
//	    scan.Exact(1234, codec.Width32), mem, nil)
//	if res.Found {
//	    fmt.Println("hit at", res.Addr)
//	}
package scan
