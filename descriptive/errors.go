package descriptive

import "github.com/cockroachdb/errors"

// Error classes returned by this package. Use errors.Is to classify.
var (
	// ErrInvalidArgument reports mismatched lengths, empty input where a
	// non-empty sample is required, or an undersized output buffer.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIndexRange reports a from/to range outside the sample, or a lag
	// that is not smaller than the sample size.
	ErrIndexRange = errors.New("index out of range")
)

// CheckRangeFromTo validates the inclusive index range [from, to] against a
// sequence of the given size. The empty range to == from-1 is always valid.
func CheckRangeFromTo(from, to, size int) error {
	if to == from-1 {
		return nil
	}
	if from < 0 || from > to || to >= size {
		return errors.Wrapf(ErrIndexRange, "from: %d, to: %d, size=%d", from, to, size)
	}
	return nil
}

func checkSameLength(op string, a, b []float64) error {
	if len(a) != len(b) {
		return errors.Wrapf(ErrInvalidArgument, "%s: lengths differ (%d != %d)", op, len(a), len(b))
	}
	if len(a) == 0 {
		return errors.Wrapf(ErrInvalidArgument, "%s: empty data", op)
	}
	return nil
}
