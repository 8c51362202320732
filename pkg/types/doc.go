// Package types defines the shared data model and collaborator contracts for
// scanning a target address space.
//
// This package only exposes interfaces and core types. The two interfaces,
// Memory and Resolver, are the seams between the scanning engine and its
// host: Memory snapshots bytes out of a target address space (a live process
// or an offline dump), and Resolver maps 32-bit identifiers to
// human-readable names. The engine treats both as opaque, read-only
// dependencies; implementations live in pkg/proc, pkg/snapshot and
// pkg/namepool.
//
// Design goals:
//   - Small, copyable values (Address/Region) instead of object graphs.
//   - Paranoid bounds checking; never panic on unreadable memory.
//   - Typed errors with stable categories (attach/unmapped/format/...).
//
// This package has no dependencies beyond the standard library.
package types
