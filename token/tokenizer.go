package token

import "fmt"

// Tokenizer provides stateful tokenization over a complete document.
// It is call-scoped: create one per parse, read tokens with Next until
// TEOF, then discard it.
type Tokenizer struct {
	d   []byte
	i   int
	opt *tokenOpts
}

type tokenOpts struct {
	allowComments  bool
	allowInfAndNaN bool
}

type TokenOpt func(*tokenOpts)

func AllowComments(v bool) TokenOpt {
	return func(o *tokenOpts) { o.allowComments = v }
}

func AllowInfAndNaN(v bool) TokenOpt {
	return func(o *tokenOpts) { o.allowInfAndNaN = v }
}

func NewTokenizer(d []byte, opts ...TokenOpt) *Tokenizer {
	opt := &tokenOpts{}
	for _, o := range opts {
		o(opt)
	}
	return &Tokenizer{d: d, opt: opt}
}

// Off returns the current byte offset.
func (tz *Tokenizer) Off() int {
	return tz.i
}

// Next returns the next token. At end of input it returns a TEOF token;
// calling Next again keeps returning TEOF.
func (tz *Tokenizer) Next() (Token, error) {
	if err := tz.skipSpace(); err != nil {
		return Token{}, err
	}
	n := len(tz.d)
	if tz.i >= n {
		return Token{Type: TEOF, Off: n}, nil
	}
	off := tz.i
	c := tz.d[tz.i]
	switch c {
	case '{':
		tz.i++
		return Token{Type: TLCurl, Off: off, Bytes: tz.d[off : off+1]}, nil
	case '}':
		tz.i++
		return Token{Type: TRCurl, Off: off, Bytes: tz.d[off : off+1]}, nil
	case '[':
		tz.i++
		return Token{Type: TLSquare, Off: off, Bytes: tz.d[off : off+1]}, nil
	case ']':
		tz.i++
		return Token{Type: TRSquare, Off: off, Bytes: tz.d[off : off+1]}, nil
	case ':':
		tz.i++
		return Token{Type: TColon, Off: off, Bytes: tz.d[off : off+1]}, nil
	case ',':
		tz.i++
		return Token{Type: TComma, Off: off, Bytes: tz.d[off : off+1]}, nil
	case '"':
		return tz.string()
	case 't':
		return tz.keyword("true", TTrue)
	case 'f':
		return tz.keyword("false", TFalse)
	case 'n':
		return tz.keyword("null", TNull)
	case 'N':
		if tz.opt.allowInfAndNaN {
			return tz.keyword("NaN", TNaN)
		}
	case 'I':
		if tz.opt.allowInfAndNaN {
			return tz.keyword("Infinity", TInfinity)
		}
	case '-':
		if tz.opt.allowInfAndNaN && tz.i+1 < n && tz.d[tz.i+1] == 'I' {
			return tz.signedInfinity()
		}
		return tz.number()
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return tz.number()
	}
	return Token{}, UnexpectedErr(fmt.Sprintf("character %q", c), off)
}

func (tz *Tokenizer) keyword(kw string, tt TokenType) (Token, error) {
	off := tz.i
	if off+len(kw) > len(tz.d) || string(tz.d[off:off+len(kw)]) != kw {
		return Token{}, NewSyntaxErr(ErrLiteral, off)
	}
	tz.i += len(kw)
	return Token{Type: tt, Off: off, Bytes: tz.d[off:tz.i]}, nil
}

func (tz *Tokenizer) signedInfinity() (Token, error) {
	off := tz.i
	const kw = "-Infinity"
	if off+len(kw) > len(tz.d) || string(tz.d[off:off+len(kw)]) != kw {
		return Token{}, NewSyntaxErr(ErrLiteral, off)
	}
	tz.i += len(kw)
	return Token{Type: TInfinity, Off: off, Bytes: tz.d[off:tz.i]}, nil
}

func (tz *Tokenizer) number() (Token, error) {
	off := tz.i
	consumed, isFloat, err := number(tz.d[off:])
	if err != nil {
		return Token{}, NewSyntaxErr(err, off)
	}
	tz.i += consumed
	tt := TInteger
	if isFloat {
		tt = TFloat
	}
	return Token{Type: tt, Off: off, Bytes: tz.d[off:tz.i]}, nil
}

func (tz *Tokenizer) string() (Token, error) {
	off := tz.i
	tz.i++ // opening quote
	start := tz.i
	n := len(tz.d)
	for tz.i < n {
		c := tz.d[tz.i]
		switch {
		case c == '"':
			tok := Token{Type: TString, Off: off, Bytes: tz.d[start:tz.i]}
			tz.i++
			return tok, nil
		case c == '\\':
			if tz.i+1 >= n {
				return Token{}, NewSyntaxErr(ErrEscape, tz.i)
			}
			tz.i += 2
		case c < 0x20:
			return Token{}, NewSyntaxErr(ErrString, tz.i)
		default:
			tz.i++
		}
	}
	return Token{}, ExpectedErr(`closing '"'`, n)
}

func (tz *Tokenizer) skipSpace() error {
	n := len(tz.d)
	for tz.i < n {
		switch tz.d[tz.i] {
		case ' ', '\t', '\r', '\n':
			tz.i++
		case '/':
			if !tz.opt.allowComments {
				return UnexpectedErr(`character '/'`, tz.i)
			}
			if err := tz.skipComment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
	return nil
}

func (tz *Tokenizer) skipComment() error {
	off := tz.i
	n := len(tz.d)
	if tz.i+1 >= n {
		return UnexpectedErr(`character '/'`, off)
	}
	switch tz.d[tz.i+1] {
	case '/':
		tz.i += 2
		for tz.i < n && tz.d[tz.i] != '\n' {
			tz.i++
		}
		return nil
	case '*':
		tz.i += 2
		for tz.i+1 < n {
			if tz.d[tz.i] == '*' && tz.d[tz.i+1] == '/' {
				tz.i += 2
				return nil
			}
			tz.i++
		}
		return NewSyntaxErr(ErrComment, off)
	default:
		return UnexpectedErr(`character '/'`, off)
	}
}
