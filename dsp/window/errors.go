package window

import "errors"

// ErrUnknownType is returned for a Type outside Types().
var ErrUnknownType = errors.New("unknown window type")

var (
	errEmptyCoeffs      = errors.New("window coefficients must not be empty")
	errZeroCoherentGain = errors.New("window coherent gain is zero")
)
