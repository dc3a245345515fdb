package opts

// ParseOptions is the resolved option bundle for the parse path.
type ParseOptions struct {
	Mode           Mode
	SymbolizeNames bool
	Freeze         bool
	AllowNaN       bool
	AllowComments  bool
	MaxNesting     int
}

// DefaultParseOptions returns the Compat-mode bundle.
func DefaultParseOptions() *ParseOptions {
	return &ParseOptions{
		Mode:           Compat,
		SymbolizeNames: false,
		Freeze:         false,
		AllowNaN:       true,
		AllowComments:  true,
		MaxNesting:     100,
	}
}

// ResolveParse applies the mode's default bundle, then every explicitly
// provided field.
func ResolveParse(options ...Option) *ParseOptions {
	ov := resolve(options)
	res := DefaultParseOptions()
	if ov.mode != nil {
		res.Mode = *ov.mode
	}
	switch res.Mode {
	case Strict:
		res.AllowNaN = false
		res.AllowComments = false
		res.SymbolizeNames = false
	case Rails:
		res.SymbolizeNames = true
		res.AllowNaN = true
		res.AllowComments = true
	case Compat, Object, Custom:
		// baseline
	}
	if ov.symbolizeNames != nil {
		res.SymbolizeNames = *ov.symbolizeNames
	}
	if ov.freeze != nil {
		res.Freeze = *ov.freeze
	}
	if ov.allowNaN != nil {
		res.AllowNaN = *ov.allowNaN
	}
	if ov.allowComments != nil {
		res.AllowComments = *ov.allowComments
	}
	if ov.maxNesting != nil {
		res.MaxNesting = *ov.maxNesting
	}
	return res
}
