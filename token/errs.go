package token

import (
	"errors"
	"fmt"

	"github.com/yyjson-go/yyjson/ir"
)

var (
	ErrNumber            = errors.New("invalid number")
	ErrNumberLeadingZero = errors.New("invalid number: leading zero")
	ErrString            = errors.New("invalid string")
	ErrEscape            = errors.New("invalid escape sequence")
	ErrUTF8              = errors.New("invalid UTF-8 sequence")
	ErrComment           = errors.New("unterminated comment")
	ErrLiteral           = errors.New("invalid literal")
)

// SyntaxErr is a malformed-input error carrying the byte offset at which
// the problem was detected. It wraps ir.ErrParse.
type SyntaxErr struct {
	Err error
	Off int
}

func (e *SyntaxErr) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Err.Error(), e.Off)
}

func (e *SyntaxErr) Unwrap() error {
	return e.Err
}

// Is makes every SyntaxErr match ir.ErrParse and ir.Err in addition to
// its cause.
func (e *SyntaxErr) Is(target error) bool {
	return target == ir.ErrParse || target == ir.Err
}

func NewSyntaxErr(e error, off int) *SyntaxErr {
	return &SyntaxErr{Err: e, Off: off}
}

func ExpectedErr(what string, off int) error {
	return NewSyntaxErr(fmt.Errorf("expected %s", what), off)
}

func UnexpectedErr(what string, off int) error {
	return NewSyntaxErr(fmt.Errorf("unexpected %s", what), off)
}
