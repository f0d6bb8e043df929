package repl

import (
	"math"
	"strconv"

	"github.com/reusee/taicalc/calcconfigs"
)

func FormatResult(value float64, format calcconfigs.ResultFormat) string {
	order := math.Log10(math.Abs(value))
	if math.Abs(order) < float64(format.SciThreshold) || math.Mod(value, 1) == 0 {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
	return strconv.FormatFloat(value, 'e', format.SciDigits, 64)
}
