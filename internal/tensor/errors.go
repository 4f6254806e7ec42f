package tensor

import "fmt"

// ShapeError reports tensors whose dimensions do not fit an operation.
//
// Backends and layers panic with a *ShapeError; callers that need an error
// value recover it (see train.Trainer).
type ShapeError struct {
	Op     string  // Operation that rejected the shapes (e.g. "matmul")
	Shapes []Shape // Offending shapes, in argument order
	Reason string
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s (shapes %v)", e.Op, e.Reason, e.Shapes)
}

// NewShapeError creates a ShapeError with a formatted reason.
func NewShapeError(op string, shapes []Shape, format string, args ...any) *ShapeError {
	return &ShapeError{
		Op:     op,
		Shapes: shapes,
		Reason: fmt.Sprintf(format, args...),
	}
}
