package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/saadjs/fitmentor/internal/fitness"
)

func validateRange(name string, value float64, r fitness.Range, unit string) error {
	if math.IsNaN(value) || !r.Contains(value) {
		return fmt.Errorf("%s must be between %g and %g%s", name, r.Min, r.Max, unit)
	}
	return nil
}

func validatePositiveInt(name string, value int) error {
	if value <= 0 {
		return fmt.Errorf("%s must be > 0", name)
	}
	return nil
}

func normalizeName(name string) string {
	return strings.TrimSpace(strings.ToLower(name))
}
