package ops

import "errors"

// Sentinel errors for modeling operation failures, checked with
// errors.Is by callers that need to distinguish failure categories.
var (
	ErrInvalidDepth   = errors.New("ops: depth must be positive")
	ErrInvalidRadius  = errors.New("ops: radius must be positive")
	ErrInvalidDistance = errors.New("ops: distance must be positive")
	ErrInvalidThickness = errors.New("ops: thickness must be positive")
	ErrInvalidAngle   = errors.New("ops: angle must be non-zero")
	ErrInvalidSegments = errors.New("ops: segment count must be at least 1")
	ErrEmptyProfile   = errors.New("ops: profile outer loop must have at least 3 points")
	ErrEntityNotFound = errors.New("ops: referenced entity not found")
	ErrFilletFailed   = errors.New("ops: fillet failed")
	ErrChamferFailed  = errors.New("ops: chamfer failed")
	ErrShellFailed    = errors.New("ops: shell failed")
)
