package pkg

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Weight is a lift weight with two decimal places of precision, held as
// hundredths of a unit. The stored NUMERIC(6,2) column round-trips through
// this type exactly, so equality checks never suffer from binary float drift.
type Weight int64

func WeightFromFloat(f float64) Weight {
	return Weight(math.Round(f * 100))
}

func ParseWeight(s string) (Weight, error) {
	s = strings.TrimSpace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse weight %q: %w", s, err)
	}
	return WeightFromFloat(f), nil
}

func (w Weight) Float64() float64 {
	return float64(w) / 100
}

func (w Weight) String() string {
	sign := ""
	v := int64(w)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON renders the weight as a plain JSON number, e.g. 102.50.
func (w Weight) MarshalJSON() ([]byte, error) {
	return []byte(w.String()), nil
}

func (w *Weight) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseWeight(s)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}
