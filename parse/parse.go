package parse

import (
	"math"
	"strconv"
	"strings"

	"github.com/yyjson-go/yyjson/ir"
	"github.com/yyjson-go/yyjson/token"
)

// Parse parses a complete JSON document into an ir.Node tree.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: 100}
	for _, f := range opts {
		f(pOpts)
	}
	tz := token.NewTokenizer(d, pOpts.TokenizeOpts()...)
	tok, err := tz.Next()
	if err != nil {
		return nil, err
	}
	if tok.Type == token.TEOF {
		return nil, token.ExpectedErr("value", tok.Off)
	}
	res, err := parseValue(tz, &tok, 0, pOpts)
	if err != nil {
		return nil, err
	}
	end, err := tz.Next()
	if err != nil {
		return nil, err
	}
	if end.Type != token.TEOF {
		return nil, token.UnexpectedErr("trailing "+end.Type.String(), end.Off)
	}
	return res, nil
}

// ParseString is Parse over a string.
func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

func parseValue(tz *token.Tokenizer, t *token.Token, depth int, opts *parseOpts) (*ir.Node, error) {
	switch t.Type {
	case token.TNull:
		return ir.Null(), nil
	case token.TTrue:
		return ir.FromBool(true), nil
	case token.TFalse:
		return ir.FromBool(false), nil
	case token.TString:
		s, err := token.Unquote(t.Bytes)
		if err != nil {
			return nil, token.NewSyntaxErr(err, t.Off)
		}
		return ir.FromString(s), nil
	case token.TInteger:
		return parseInteger(t)
	case token.TFloat:
		f, err := strconv.ParseFloat(string(t.Bytes), 64)
		if err != nil {
			return nil, token.NewSyntaxErr(token.ErrNumber, t.Off)
		}
		return ir.FromFloat(f), nil
	case token.TNaN:
		return ir.FromFloat(math.NaN()), nil
	case token.TInfinity:
		if t.Neg() {
			return ir.FromFloat(math.Inf(-1)), nil
		}
		return ir.FromFloat(math.Inf(1)), nil
	case token.TLCurl:
		return parseObj(tz, t.Off, depth+1, opts)
	case token.TLSquare:
		return parseArr(tz, t.Off, depth+1, opts)
	case token.TEOF:
		return nil, token.ExpectedErr("value", t.Off)
	default:
		return nil, token.UnexpectedErr(t.Type.String(), t.Off)
	}
}

// parseInteger maps integers that fit int64 to IntType, larger unsigned
// values to UintType, and everything else to FloatType.
func parseInteger(t *token.Token) (*ir.Node, error) {
	s := string(t.Bytes)
	i, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return ir.FromInt(i), nil
	}
	if !strings.HasPrefix(s, "-") {
		u, uerr := strconv.ParseUint(s, 10, 64)
		if uerr == nil {
			return ir.FromUint(u), nil
		}
	}
	f, ferr := strconv.ParseFloat(s, 64)
	if ferr != nil {
		return nil, token.NewSyntaxErr(token.ErrNumber, t.Off)
	}
	return ir.FromFloat(f), nil
}

func parseObj(tz *token.Tokenizer, open int, depth int, opts *parseOpts) (*ir.Node, error) {
	if opts.maxDepth > 0 && depth > opts.maxDepth {
		return nil, token.NewSyntaxErr(ir.ErrNestingTooDeep, open)
	}
	obj := ir.NewObject(4)
	t, err := tz.Next()
	if err != nil {
		return nil, err
	}
	if t.Type == token.TRCurl {
		return obj, nil
	}
	for {
		if t.Type != token.TString {
			return nil, token.ExpectedErr("object key", t.Off)
		}
		key, err := token.Unquote(t.Bytes)
		if err != nil {
			return nil, token.NewSyntaxErr(err, t.Off)
		}
		sep, err := tz.Next()
		if err != nil {
			return nil, err
		}
		if sep.Type != token.TColon {
			return nil, token.ExpectedErr("':'", sep.Off)
		}
		vt, err := tz.Next()
		if err != nil {
			return nil, err
		}
		val, err := parseValue(tz, &vt, depth, opts)
		if err != nil {
			return nil, err
		}
		obj.Add(key, val)
		t, err = tz.Next()
		if err != nil {
			return nil, err
		}
		switch t.Type {
		case token.TRCurl:
			return obj, nil
		case token.TComma:
			t, err = tz.Next()
			if err != nil {
				return nil, err
			}
		default:
			return nil, token.ExpectedErr("',' or '}'", t.Off)
		}
	}
}

func parseArr(tz *token.Tokenizer, open int, depth int, opts *parseOpts) (*ir.Node, error) {
	if opts.maxDepth > 0 && depth > opts.maxDepth {
		return nil, token.NewSyntaxErr(ir.ErrNestingTooDeep, open)
	}
	arr := ir.NewArray(4)
	t, err := tz.Next()
	if err != nil {
		return nil, err
	}
	if t.Type == token.TRSquare {
		return arr, nil
	}
	for {
		val, err := parseValue(tz, &t, depth, opts)
		if err != nil {
			return nil, err
		}
		arr.Append(val)
		t, err = tz.Next()
		if err != nil {
			return nil, err
		}
		switch t.Type {
		case token.TRSquare:
			return arr, nil
		case token.TComma:
			t, err = tz.Next()
			if err != nil {
				return nil, err
			}
		default:
			return nil, token.ExpectedErr("',' or ']'", t.Off)
		}
	}
}
