package token

import (
	"unicode/utf16"
	"unicode/utf8"
)

// Unquote decodes the raw contents of a TString token (the bytes between
// the quotes, escapes undecoded) into a Go string. Source bytes are copied;
// the result never aliases the input document.
func Unquote(d []byte) (string, error) {
	// fast path: no escapes
	esc := -1
	for i, c := range d {
		if c == '\\' {
			esc = i
			break
		}
	}
	if esc < 0 {
		if !utf8.Valid(d) {
			return "", ErrUTF8
		}
		return string(d), nil
	}

	res := make([]byte, 0, len(d))
	res = append(res, d[:esc]...)
	i := esc
	for i < len(d) {
		c := d[i]
		if c != '\\' {
			res = append(res, c)
			i++
			continue
		}
		if i+1 >= len(d) {
			return "", ErrEscape
		}
		switch d[i+1] {
		case '"':
			res = append(res, '"')
		case '\\':
			res = append(res, '\\')
		case '/':
			res = append(res, '/')
		case 'b':
			res = append(res, '\b')
		case 'f':
			res = append(res, '\f')
		case 'n':
			res = append(res, '\n')
		case 'r':
			res = append(res, '\r')
		case 't':
			res = append(res, '\t')
		case 'u':
			r, n, err := unquoteRune(d[i:])
			if err != nil {
				return "", err
			}
			res = utf8.AppendRune(res, r)
			i += n
			continue
		default:
			return "", ErrEscape
		}
		i += 2
	}
	if !utf8.Valid(res) {
		return "", ErrUTF8
	}
	return string(res), nil
}

// unquoteRune decodes a \uXXXX escape (possibly a surrogate pair) at the
// start of d, returning the rune and the bytes consumed.
func unquoteRune(d []byte) (rune, int, error) {
	r1, ok := hex4(d[2:])
	if !ok {
		return 0, 0, ErrEscape
	}
	if !utf16.IsSurrogate(r1) {
		return r1, 6, nil
	}
	if len(d) >= 12 && d[6] == '\\' && d[7] == 'u' {
		r2, ok := hex4(d[8:])
		if ok {
			if r := utf16.DecodeRune(r1, r2); r != utf8.RuneError {
				return r, 12, nil
			}
		}
	}
	// lone surrogate
	return utf8.RuneError, 6, nil
}

func hex4(d []byte) (rune, bool) {
	if len(d) < 4 {
		return 0, false
	}
	var r rune
	for _, c := range d[:4] {
		r <<= 4
		switch {
		case c >= '0' && c <= '9':
			r |= rune(c - '0')
		case c >= 'a' && c <= 'f':
			r |= rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			r |= rune(c-'A') + 10
		default:
			return 0, false
		}
	}
	return r, true
}

// AppendQuoted appends the JSON quoted form of s to dst, including the
// surrounding quotes. escapeSlash additionally escapes '/' as `\/`.
func AppendQuoted(dst []byte, s string, escapeSlash bool) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			dst = append(dst, '\\', '"')
		case c == '\\':
			dst = append(dst, '\\', '\\')
		case c == '/' && escapeSlash:
			dst = append(dst, '\\', '/')
		case c == '\b':
			dst = append(dst, '\\', 'b')
		case c == '\f':
			dst = append(dst, '\\', 'f')
		case c == '\n':
			dst = append(dst, '\\', 'n')
		case c == '\r':
			dst = append(dst, '\\', 'r')
		case c == '\t':
			dst = append(dst, '\\', 't')
		case c < 0x20:
			dst = append(dst, '\\', 'u', '0', '0', hexDigit(c>>4), hexDigit(c&0xf))
		default:
			dst = append(dst, c)
		}
	}
	return append(dst, '"')
}

func hexDigit(c byte) byte {
	if c < 10 {
		return '0' + c
	}
	return 'a' + c - 10
}
