package track

// TrackBuilderOption is a functional option for configuring a Track.
type TrackBuilderOption func(*trackImpl)

// WithName sets the track's display name.
//
// Parameters:
//   - name: the name shown in logs and plots
//
// Returns:
//   - TrackBuilderOption: functional option to set the name
func WithName(name string) TrackBuilderOption {
	return func(tr *trackImpl) {
		tr.name = name
	}
}

// WithLaneWidth overrides the width of one lane. Must be positive.
//
// Parameters:
//   - width: lane width in meters
//
// Returns:
//   - TrackBuilderOption: functional option to set the lane width
func WithLaneWidth(width float64) TrackBuilderOption {
	return func(tr *trackImpl) {
		tr.projector.LaneWidth = width
	}
}
