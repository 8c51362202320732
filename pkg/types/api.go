package types

import "fmt"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindAttach   ErrKind = iota // process could not be opened/attached
	ErrKindUnmapped                // address not backed by a mapped region
	ErrKindRead                    // mapped but the read itself failed/shortened
	ErrKindFormat                  // malformed structure (dump file, name entry)
	ErrKindState                   // invalid operation for current state (e.g., closed)
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels commonly returned by implementations.
var (
	// ErrUnmapped indicates the address lies outside every readable region.
	ErrUnmapped = &Error{Kind: ErrKindUnmapped, Msg: "address not mapped"}
	// ErrShortRead indicates fewer bytes were produced than requested.
	ErrShortRead = &Error{Kind: ErrKindRead, Msg: "short memory read"}
	// ErrClosed indicates an operation on a closed Memory handle.
	ErrClosed = &Error{Kind: ErrKindState, Msg: "memory handle is closed"}
)

// -----------------------------------------------------------------------------
// Core Identifiers
// -----------------------------------------------------------------------------

// Address identifies a location in the target address space. It is never
// dereferenced directly; all access goes through a Memory implementation.
type Address uint64

// String implements the Stringer interface for Address.
func (a Address) String() string { return fmt.Sprintf("0x%X", uint64(a)) }

// Region is a contiguous byte range of the target address space.
type Region struct {
	Base Address
	Size uint64
}

// End returns the first address past the region.
func (r Region) End() Address { return r.Base + Address(r.Size) }

// Contains reports whether addr lies within the region.
func (r Region) Contains(addr Address) bool {
	return addr >= r.Base && addr < r.End()
}

func (r Region) String() string {
	return fmt.Sprintf("[%s..%s)", r.Base, r.End())
}

// MappedRegion describes one mapping of a live process's address space, as
// reported by the OS.
type MappedRegion struct {
	Region
	Readable   bool
	Writable   bool
	Executable bool
	Path       string // backing module or mapping name, empty for anonymous
}

// -----------------------------------------------------------------------------
// Collaborator contracts
// -----------------------------------------------------------------------------

// Memory is a read-only view of a target address space.
//
// Read may return fewer bytes than requested when the range crosses out of
// mapped memory; callers decide whether a short read matters. Implementations
// must be safe for concurrent readers.
type Memory interface {
	// IsValid reports whether addr is backed by readable memory.
	IsValid(addr Address) bool

	// Read snapshots up to size bytes starting at addr. The returned slice
	// is owned by the caller.
	Read(addr Address, size int) ([]byte, error)
}

// Resolver maps a 32-bit identifier to a registered name.
//
// Lookup returns ("", false) for unknown identifiers. It is called once per
// stride position during symbolic scans, so implementations should be cheap
// and must not mutate shared state.
type Resolver interface {
	Lookup(id uint32) (string, bool)
}
