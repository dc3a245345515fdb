package ir

import "errors"

var (
	// Err is the base error for the codec; every parse and generate
	// error matches it via errors.Is.
	Err = errors.New("yyjson error")

	ErrParse    = errors.New("parse error")
	ErrGenerate = errors.New("generate error")

	ErrNestingTooDeep    = errors.New("nesting too deep")
	ErrCircularReference = errors.New("circular reference detected")
	ErrDocBuild          = errors.New("failed to build document")
	ErrWrite             = errors.New("failed to write document")
)

// GenerateErr wraps a cause so that it matches both ErrGenerate and the
// base Err.
type GenerateErr struct {
	Cause error
}

func (e *GenerateErr) Error() string { return e.Cause.Error() }
func (e *GenerateErr) Unwrap() error { return e.Cause }

func (e *GenerateErr) Is(target error) bool {
	return target == ErrGenerate || target == Err
}

func NewGenerateErr(cause error) error {
	return &GenerateErr{Cause: cause}
}
