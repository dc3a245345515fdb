package opts

// Option sets one field of the shared option bag. Each resolver reads the
// fields it recognizes; the rest are ignored, so one option list can be
// handed to either path.
type Option func(*overlay)

// overlay records explicitly-provided fields. A nil field was not supplied
// and keeps its mode default.
type overlay struct {
	mode *Mode

	symbolizeNames *bool
	freeze         *bool
	allowNaN       *bool
	allowComments  *bool
	maxNesting     *int

	pretty      *bool
	escapeSlash *bool
	escapeHTML  *bool
	indent      *int
}

func WithMode(m Mode) Option {
	return func(o *overlay) { o.mode = &m }
}

// SymbolizeNames makes parsed object keys value.Atom instead of string.
func SymbolizeNames(v bool) Option {
	return func(o *overlay) { o.symbolizeNames = &v }
}

// Freeze makes parsed values immutable: strings are canonicalized into a
// shared pool and maps are frozen, at every depth.
func Freeze(v bool) Option {
	return func(o *overlay) { o.freeze = &v }
}

// AllowNaN permits NaN and Infinity on the selected path.
func AllowNaN(v bool) Option {
	return func(o *overlay) { o.allowNaN = &v }
}

// AllowComments permits C-style comments when parsing.
func AllowComments(v bool) Option {
	return func(o *overlay) { o.allowComments = &v }
}

// MaxNesting bounds container depth on both paths. 0 means unlimited.
func MaxNesting(n int) Option {
	return func(o *overlay) { o.maxNesting = &n }
}

// Pretty enables 2-space indented output.
func Pretty(v bool) Option {
	return func(o *overlay) { o.pretty = &v }
}

// Indent sets the spaces per level; a value > 0 implies Pretty.
func Indent(n int) Option {
	return func(o *overlay) { o.indent = &n }
}

// EscapeSlash escapes '/' in dumped strings.
func EscapeSlash(v bool) Option {
	return func(o *overlay) { o.escapeSlash = &v }
}

// EscapeHTML rewrites dumped text so it is safe to embed in HTML.
func EscapeHTML(v bool) Option {
	return func(o *overlay) { o.escapeHTML = &v }
}

func resolve(options []Option) *overlay {
	ov := &overlay{}
	for _, o := range options {
		o(ov)
	}
	return ov
}
