package opts

// DumpOptions is the resolved option bundle for the dump path.
type DumpOptions struct {
	Mode        Mode
	Pretty      bool
	EscapeSlash bool
	AllowNaN    bool
	EscapeHTML  bool
	Indent      int
	MaxNesting  int
}

// DefaultDumpOptions returns the Compat-mode bundle.
func DefaultDumpOptions() *DumpOptions {
	return &DumpOptions{
		Mode:        Compat,
		Pretty:      false,
		EscapeSlash: false,
		AllowNaN:    true,
		EscapeHTML:  false,
		Indent:      2,
		MaxNesting:  100,
	}
}

// ResolveDump applies the mode's default bundle, then every explicitly
// provided field. An explicit Indent > 0 implies Pretty.
func ResolveDump(options ...Option) *DumpOptions {
	ov := resolve(options)
	res := DefaultDumpOptions()
	if ov.mode != nil {
		res.Mode = *ov.mode
	}
	switch res.Mode {
	case Strict:
		res.AllowNaN = false
		res.EscapeSlash = true
	case Rails:
		res.EscapeHTML = true
	case Compat, Object, Custom:
		// baseline
	}
	if ov.pretty != nil {
		res.Pretty = *ov.pretty
	}
	if ov.indent != nil {
		res.Indent = *ov.indent
		if res.Indent > 0 {
			res.Pretty = true
		}
	}
	if ov.escapeSlash != nil {
		res.EscapeSlash = *ov.escapeSlash
	}
	if ov.allowNaN != nil {
		res.AllowNaN = *ov.allowNaN
	}
	if ov.escapeHTML != nil {
		res.EscapeHTML = *ov.escapeHTML
	}
	if ov.maxNesting != nil {
		res.MaxNesting = *ov.maxNesting
	}
	return res
}
