package svg

import (
	"strconv"

	"github.com/Seanld/lottie"
	"github.com/tdewolff/minify/v2"
)

// dec formats a number in fixed notation with the shortest decimals at the path precision.
type dec float64

func (f dec) String() string {
	b := strconv.AppendFloat(nil, float64(f), 'f', lottie.Precision, 64)
	return string(minify.Decimal(b, lottie.Precision))
}
