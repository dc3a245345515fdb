package encode

type EncodeOption func(*EncState)

// Pretty enables multi-line output, 2-space indented by default.
func Pretty(v bool) EncodeOption {
	return func(es *EncState) { es.pretty = v }
}

// Indent sets the number of spaces per nesting level for pretty output.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EscapeSlashes escapes '/' as `\/` inside strings.
func EscapeSlashes(v bool) EncodeOption {
	return func(es *EncState) { es.escapeSlash = v }
}

// AllowInfAndNaN writes non-finite floats as NaN, Infinity and -Infinity
// instead of failing.
func AllowInfAndNaN(v bool) EncodeOption {
	return func(es *EncState) { es.allowInfAndNaN = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
