package token

import "fmt"

type TokenType int

const (
	TNull TokenType = iota
	TTrue
	TFalse
	TInteger
	TFloat
	TNaN
	TInfinity
	TString
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TColon
	TComma
	TEOF
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TNull:     "TNull",
		TTrue:     "TTrue",
		TFalse:    "TFalse",
		TInteger:  "TInteger",
		TFloat:    "TFloat",
		TNaN:      "TNaN",
		TInfinity: "TInfinity",
		TString:   "TString",
		TLCurl:    "TLCurl",
		TRCurl:    "TRCurl",
		TLSquare:  "TLSquare",
		TRSquare:  "TRSquare",
		TColon:    "TColon",
		TComma:    "TComma",
		TEOF:      "TEOF",
	}[t]
}

// Token is a single lexical element. Off is the byte offset of the token's
// first byte in the source document. For TString, Bytes holds the raw
// contents between the quotes, escapes undecoded; use Unquote.
type Token struct {
	Type  TokenType
	Off   int
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s at offset %d", t.Type, t.Off)
}

// Neg reports whether a TInfinity token carries a leading minus.
func (t *Token) Neg() bool {
	return len(t.Bytes) > 0 && t.Bytes[0] == '-'
}
