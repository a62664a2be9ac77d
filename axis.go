package texart

// AxisMode selects linear or logarithmic scaling for one axis.
type AxisMode int

const (
	// AxisLinear is the default linear axis scaling.
	AxisLinear AxisMode = iota

	// AxisLog is base-10 logarithmic axis scaling.
	AxisLog
)

// String returns the PGFPlots mode name for the axis.
func (m AxisMode) String() string {
	if m == AxisLog {
		return "log"
	}
	return "normal"
}

// IsLog reports whether the axis is logarithmic.
func (m AxisMode) IsLog() bool { return m == AxisLog }
