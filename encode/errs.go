package encode

import "errors"

// ErrNonFinite is returned for NaN or infinite floats when AllowInfAndNaN
// is not set.
var ErrNonFinite = errors.New("NaN and Infinity not allowed in JSON")
