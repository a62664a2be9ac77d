package texart

import "errors"

// Common errors returned by texart.
var (
	// ErrDimensionMismatch indicates that paired data sequences have
	// different lengths.
	ErrDimensionMismatch = errors.New("data sequences must be the same length")

	// ErrEmptyData indicates that a data sequence is empty where at
	// least one value is required.
	ErrEmptyData = errors.New("data sequence is empty")

	// ErrInvalidDegree indicates an invalid smoothing degree or window
	// width.
	ErrInvalidDegree = errors.New("invalid smoothing degree")

	// ErrLogDomain indicates non-positive values on a logarithmic axis.
	ErrLogDomain = errors.New("logarithmic axis requires strictly positive values")

	// ErrNoSeries indicates that an operation requires a previously
	// plotted data series.
	ErrNoSeries = errors.New("no data series plotted yet")

	// ErrUnknownLocation indicates an unrecognized label location.
	ErrUnknownLocation = errors.New("unknown label location")

	// ErrInvalidHistogram indicates histogram data whose dimensions are
	// inconsistent.
	ErrInvalidHistogram = errors.New("invalid histogram data")

	// ErrInvalidLimit indicates invalid axis or size limits.
	ErrInvalidLimit = errors.New("invalid limit")
)
