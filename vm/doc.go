// Package vm implements the Siskin runtime core.
//
// This package contains:
//   - NaN-boxed value representation
//   - Symbol interning for selectors and global names
//   - Per-class direct-indexed method dispatch
//   - The native primitive library (numbers, strings, console IO)
//   - Global singleton registry and runtime bootstrap
//   - Image snapshots and heap keep-alive collection
package vm
