package palette

import (
	"math"
	"strconv"

	apperrors "github.com/alexisbeaulieu97/colormix/pkg/errors"
)

// Channel identifies one of the three colour components.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

// Channel value bounds, inclusive.
const (
	MinValue = 0.0
	MaxValue = 255.0
)

// Channels returns every channel in display order.
func Channels() []Channel {
	return []Channel{Red, Green, Blue}
}

func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return "unknown"
	}
}

// Valid reports whether c names a real channel.
func (c Channel) Valid() bool {
	return c >= Red && c <= Blue
}

// InRange reports whether v lies in [MinValue, MaxValue]. NaN and infinities fail.
func InRange(v float64) bool {
	return v >= MinValue && v <= MaxValue
}

// Clamp forces v into [MinValue, MaxValue]. NaN clamps to MinValue.
func Clamp(v float64) float64 {
	if math.IsNaN(v) || v < MinValue {
		return MinValue
	}
	if v > MaxValue {
		return MaxValue
	}
	return v
}

// FormatValue renders v as rounded integer text, halves rounding away from zero.
func FormatValue(v float64) string {
	return strconv.FormatInt(int64(math.Round(v)), 10)
}

// ParseValue validates free text typed into a channel field. The returned
// value is the parsed number, unrounded; anything that does not parse or falls
// outside [0, 255] yields an *errors.InvalidChannelInputError.
func ParseValue(ch Channel, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, apperrors.NewInvalidChannelInputError(ch.String(), s, err)
	}
	if !InRange(v) {
		return 0, apperrors.NewInvalidChannelInputError(ch.String(), s, nil)
	}
	return v, nil
}
