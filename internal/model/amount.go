package model

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Amount is a stored numeric quantity (calories, minutes, kilograms).
// Decoding never fails: numeric strings are parsed and anything else that is
// not a number reads as zero, so hand-edited or foreign data still folds into
// totals.
type Amount float64

func (a Amount) Float() float64 { return float64(a) }

// Int truncates toward zero.
func (a Amount) Int() int { return int(math.Trunc(float64(a))) }

func (a *Amount) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*a = Amount(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
			*a = Amount(v)
			return nil
		}
	}
	*a = 0
	return nil
}

// AmountPtr returns nil for nil input.
func AmountPtr(v *float64) *Amount {
	if v == nil {
		return nil
	}
	a := Amount(*v)
	return &a
}
