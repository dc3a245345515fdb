package encode

// EscapeHTML rewrites serialized JSON so that '<', '>', '&' and '\'' become
// fixed 6-byte \u escapes, preventing XSS when the output is embedded in
// HTML. Two passes: count occurrences, then rewrite into a correctly-sized
// buffer. If nothing needs escaping the input is returned unchanged.
func EscapeHTML(d []byte) []byte {
	count := 0
	for _, c := range d {
		if htmlUnsafe(c) {
			count++
		}
	}
	if count == 0 {
		return d
	}
	// each escaped byte becomes 6 bytes
	res := make([]byte, 0, len(d)+count*5)
	for _, c := range d {
		switch c {
		case '<':
			res = append(res, "\\u003c"...)
		case '>':
			res = append(res, "\\u003e"...)
		case '&':
			res = append(res, "\\u0026"...)
		case '\'':
			res = append(res, "\\u0027"...)
		default:
			res = append(res, c)
		}
	}
	return res
}

func htmlUnsafe(c byte) bool {
	switch c {
	case '<', '>', '&', '\'':
		return true
	default:
		return false
	}
}
