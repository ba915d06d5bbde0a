package track

import "errors"

// track geometry errors
var (
	ErrInvalidControlPolygon = errors.New("invalid control polygon")
	ErrParameterOutOfRange   = errors.New("track parameter out of range [0, 1]")
	ErrDegenerateTangent     = errors.New("degenerate tangent")
	ErrUnknownPreset         = errors.New("unknown track preset")
)
