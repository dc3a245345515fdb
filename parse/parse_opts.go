package parse

import "github.com/yyjson-go/yyjson/token"

type parseOpts struct {
	allowComments  bool
	allowInfAndNaN bool
	maxDepth       int
}

type ParseOption func(*parseOpts)

// AllowComments permits C-style // and /* */ comments between tokens.
func AllowComments(v bool) ParseOption {
	return func(o *parseOpts) { o.allowComments = v }
}

// AllowInfAndNaN permits the NaN, Infinity and -Infinity literals.
func AllowInfAndNaN(v bool) ParseOption {
	return func(o *parseOpts) { o.allowInfAndNaN = v }
}

// MaxDepth bounds container nesting. 0 means unlimited.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

func (o *parseOpts) TokenizeOpts() []token.TokenOpt {
	return []token.TokenOpt{
		token.AllowComments(o.allowComments),
		token.AllowInfAndNaN(o.allowInfAndNaN),
	}
}
