package scan

import (
	"github.com/joshuapare/scankit/internal/codec"
	"github.com/joshuapare/scankit/pkg/types"
)

// Reason explains why a scan came back empty. It is diagnostic only: the
// found/not-found contract is carried entirely by Result.Found.
type Reason int

const (
	// ReasonNone accompanies a successful scan.
	ReasonNone Reason = iota
	// ReasonEmptyRegion reports a region with size zero.
	ReasonEmptyRegion
	// ReasonUnmapped reports a base address with no readable backing.
	ReasonUnmapped
	// ReasonReadFailed reports a read that produced no bytes at all.
	ReasonReadFailed
	// ReasonNoMatch reports that every decoded element was inspected and
	// none satisfied the target.
	ReasonNoMatch
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "found"
	case ReasonEmptyRegion:
		return "empty region"
	case ReasonUnmapped:
		return "base address not mapped"
	case ReasonReadFailed:
		return "memory read failed"
	case ReasonNoMatch:
		return "no matching element"
	default:
		return "unknown"
	}
}

// Result is the outcome of a single scan. Addr is meaningful only when
// Found is true.
type Result struct {
	Addr   types.Address
	Found  bool
	Reason Reason
}

// Find scans region for the first element satisfying target and returns its
// absolute address.
//
// The walk starts at region.Base and advances in target.Stride() steps; a
// trailing partial element is never inspected. names is consulted only for
// symbolic targets and may be nil otherwise.
//
// Every failure path — unmapped base, failed read, no satisfying element —
// collapses to a not-found Result rather than an error. A read that returns
// fewer bytes than region.Size is not an error either: the scan proceeds
// over the bytes actually snapshotted.
func Find(region types.Region, target Target, mem types.Memory, names types.Resolver) Result {
	if region.Size == 0 {
		return Result{Reason: ReasonEmptyRegion}
	}
	if !mem.IsValid(region.Base) {
		return Result{Reason: ReasonUnmapped}
	}

	// Best-effort contract: a failed or shortened read is not an error here;
	// the scan proceeds over whatever bytes came back.
	buf, _ := mem.Read(region.Base, int(region.Size))
	if len(buf) == 0 {
		return Result{Reason: ReasonReadFailed}
	}

	stride := target.Stride()
	if stride <= 0 {
		// Only reachable through a zero-value Target; treat it like any
		// other target nothing satisfies.
		return Result{Reason: ReasonNoMatch}
	}
	for i := 0; i+stride <= len(buf); i += stride {
		v := codec.Uint(buf, i, stride)

		switch target.kind {
		case KindName:
			if names == nil {
				return Result{Reason: ReasonNoMatch}
			}
			resolved, ok := names.Lookup(uint32(v))
			if ok && target.matchName(resolved) {
				return Result{Addr: region.Base + types.Address(i), Found: true}
			}
		default:
			if target.matchValue(v) {
				return Result{Addr: region.Base + types.Address(i), Found: true}
			}
		}
	}
	return Result{Reason: ReasonNoMatch}
}

// Scanner binds the two collaborators so call sites resolving many offsets
// do not have to thread them through every Find call. The zero value is not
// usable; construct with New.
type Scanner struct {
	mem   types.Memory
	names types.Resolver
}

// New returns a Scanner reading from mem and resolving identifiers through
// names. names may be nil if only numeric targets will be used.
func New(mem types.Memory, names types.Resolver) *Scanner {
	return &Scanner{mem: mem, names: names}
}

// Find scans region for target using the bound collaborators.
func (s *Scanner) Find(region types.Region, target Target) Result {
	return Find(region, target, s.mem, s.names)
}
