package race

// RobotBuilderOption is a functional option for configuring a Robot.
type RobotBuilderOption func(*robotImpl)

// WithParam sets the starting track parameter.
//
// Parameters:
//   - t: the starting position along the lap
//
// Returns:
//   - RobotBuilderOption: functional option to set the start parameter
func WithParam(t float64) RobotBuilderOption {
	return func(rb *robotImpl) {
		rb.param = t
	}
}

// WithLapStep overrides the initial pace.
//
// Parameters:
//   - step: fraction of a lap per millisecond
//
// Returns:
//   - RobotBuilderOption: functional option to set the pace
func WithLapStep(step float64) RobotBuilderOption {
	return func(rb *robotImpl) {
		rb.lapStep = step
		rb.gaitSpeed = step * gaitPerLapStepMul
	}
}
