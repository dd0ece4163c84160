package dataset

import "github.com/containerd/errdefs"

// Invalid-argument errors. All of them satisfy errdefs.IsInvalidArgument.
var (
	ErrEmptyDataset      = errdefs.ErrInvalidArgument.WithMessage("dataset cannot be empty")
	ErrLengthMismatch    = errdefs.ErrInvalidArgument.WithMessage("datasets must have the same length")
	ErrTooFewPoints      = errdefs.ErrInvalidArgument.WithMessage("correlation requires at least two data points")
	ErrZeroVariance      = errdefs.ErrInvalidArgument.WithMessage("correlation is undefined for a constant dataset")
	ErrInvalidPercentile = errdefs.ErrInvalidArgument.WithMessage("percentile must be in (0, 100]")
)

// ErrZeroRange is returned by Normalize when every value is identical.
// It satisfies errdefs.IsFailedPrecondition.
var ErrZeroRange = errdefs.ErrFailedPrecondition.WithMessage("cannot normalize data with identical values")

// ErrSumOverflow is returned by Sum when an integer total does not fit in
// the element type. It satisfies errdefs.IsOutOfRange.
var ErrSumOverflow = errdefs.ErrOutOfRange.WithMessage("sum overflows the element type")
