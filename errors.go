package octree

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/hupe1980/octree/internal/arena"
	"github.com/hupe1980/octree/internal/octant"
)

var (
	// ErrInvalidInput is the category of every error caused by the points
	// passed to Initialize. Check with errors.Is.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyPoints is returned by Initialize for an empty point slice.
	ErrEmptyPoints = fmt.Errorf("%w: empty point set", ErrInvalidInput)

	// ErrCapacityExceeded is returned when the tree cannot address more nodes.
	ErrCapacityExceeded = errors.New("octree capacity exceeded")

	// ErrCorrupted is returned by Validate when a structural invariant does
	// not hold.
	ErrCorrupted = errors.New("octree corrupted")
)

// ErrInvalidPoint indicates a point with a NaN or infinite coordinate.
//
// It unwraps to ErrInvalidInput.
type ErrInvalidPoint struct {
	Index int
	Point mgl64.Vec3
}

func (e *ErrInvalidPoint) Error() string {
	return fmt.Sprintf("invalid point %d: non-finite coordinate in %v", e.Index, e.Point)
}

func (e *ErrInvalidPoint) Unwrap() error { return ErrInvalidInput }

// ErrTooManyPoints indicates a point set larger than the index can address.
//
// It unwraps to ErrInvalidInput and, if present, to the original cause.
type ErrTooManyPoints struct {
	Count int
	cause error
}

func (e *ErrTooManyPoints) Error() string {
	return fmt.Sprintf("too many points: %d", e.Count)
}

func (e *ErrTooManyPoints) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrInvalidInput}
	}
	return []error{ErrInvalidInput, e.cause}
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, octant.ErrNoPoints) {
		return fmt.Errorf("%w: %w", ErrEmptyPoints, err)
	}
	if errors.Is(err, octant.ErrTooManyPoints) {
		return &ErrTooManyPoints{cause: err}
	}
	if errors.Is(err, arena.ErrArenaFull) {
		return fmt.Errorf("%w: %w", ErrCapacityExceeded, err)
	}
	if errors.Is(err, octant.ErrInvariant) {
		return fmt.Errorf("%w: %w", ErrCorrupted, err)
	}

	return err
}
