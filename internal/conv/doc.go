// Package conv provides checked integer conversions for point indices.
//
// The index chain stores uint32 links while callers address their point
// slices with int. Conversions at the API boundary go through this package;
// conversions inside the builder are bounded by the validated point count
// and use direct casts instead.
package conv
