// Package octant implements the point octree of Behley et al., "Efficient
// Radius Neighbor Search in Three-dimensional Point Clouds" (ICRA 2015).
//
// # Index Chain
//
// Points are never copied into nodes. A single []uint32 of "next" links,
// one per point, threads the members of every node: a node owns the window
// (Start, End, Size) and its members are enumerated by starting at Start and
// following the chain exactly Size times. There is no terminating sentinel.
//
// Construction splices the chain in place. Each internal node classifies its
// run by 3-bit Morton code in one pass, links members of the same octant
// together, builds the children, and then concatenates the children's runs
// in octant order 0..7. Every subtree therefore owns a contiguous run of the
// chain, which is what makes bulk acceptance during search possible.
//
// # Search
//
// Radius search descends from the root. A node fully inside the query
// sphere contributes all of its members without distance checks. A leaf
// that is only partially covered checks each member exactly. Internal nodes
// recurse into the children that overlap the sphere.
//
// # Termination
//
// A run whose points cannot be separated by subdivision, such as exact
// duplicates, becomes a leaf regardless of its size. Subdivision also stops
// at Config.MaxDepth.
package octant
