// Package arena provides slice-backed node storage addressed by integer
// handles.
//
// Octree nodes reference their children by Handle instead of by pointer.
// Destroying a tree is a single Reset or Free of its arena; there is no
// recursive teardown.
//
// # Features
//
//   - Handle 0 is reserved as the null handle
//   - Reset keeps the backing storage for the next build
//   - Get returns nil for invalid handles rather than panicking
//
// # Safety
//
// Pointers returned by Alloc and Get are invalidated by the next Alloc,
// which may grow the backing slice. Callers that recurse while allocating
// must hold handles, not pointers, across the recursive call.
//
// An Arena is not safe for concurrent mutation. Concurrent Get calls on an
// arena that is not being mutated are safe.
package arena
