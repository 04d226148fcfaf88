package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	coordinateScale   = 1_000_000
	maxDecimalPlaces  = 6
	maxWholeDigits    = 3 // NUMERIC(9,6)
	coordinateNilText = "null"
)

// CoordinateError carries a message meant for API clients.
type CoordinateError struct {
	Msg string
}

func (e *CoordinateError) Error() string { return e.Msg }

var (
	ErrInvalidCoordinate   = &CoordinateError{Msg: "A valid number is required."}
	ErrTooManyDecimals     = &CoordinateError{Msg: "Ensure that there are no more than 6 decimal places."}
	ErrTooManyWholeDigits  = &CoordinateError{Msg: "Ensure that there are no more than 3 digits before the decimal point."}
	errUnsupportedScanType = errors.New("unsupported coordinate scan type")
)

// Coordinate is a decimal degree with six fixed decimal places, held as
// micro-degrees so values round-trip through NUMERIC(9,6) exactly.
type Coordinate int64

// ParseCoordinate parses a decimal string such as "-33.868820" or "151.2".
func ParseCoordinate(s string) (Coordinate, error) {
	s = strings.TrimSpace(s)
	if strings.ContainsAny(s, "eE") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, ErrInvalidCoordinate
		}
		s = strconv.FormatFloat(f, 'f', -1, 64)
	}

	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")
	if (whole == "" && frac == "") || !isDigits(whole) || !isDigits(frac) {
		return 0, ErrInvalidCoordinate
	}

	if len(frac) > maxDecimalPlaces {
		return 0, ErrTooManyDecimals
	}
	whole = strings.TrimLeft(whole, "0")
	if len(whole) > maxWholeDigits {
		return 0, ErrTooManyWholeDigits
	}

	var w, f int64
	if whole != "" {
		w, _ = strconv.ParseInt(whole, 10, 64)
	}
	if frac != "" {
		f, _ = strconv.ParseInt(frac+strings.Repeat("0", maxDecimalPlaces-len(frac)), 10, 64)
	}

	v := w*coordinateScale + f
	if neg {
		v = -v
	}
	return Coordinate(v), nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// CoordinateFromFloat rounds f to six decimal places.
func CoordinateFromFloat(f float64) (Coordinate, error) {
	return ParseCoordinate(strconv.FormatFloat(f, 'f', maxDecimalPlaces, 64))
}

func (c Coordinate) String() string {
	v := int64(c)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%06d", sign, v/coordinateScale, v%coordinateScale)
}

func (c Coordinate) Float64() float64 {
	return float64(c) / coordinateScale
}

// MarshalJSON encodes the coordinate as a decimal string, matching how the
// web client has always received it.
func (c Coordinate) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON accepts either a JSON number or a decimal string.
func (c *Coordinate) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	if text == coordinateNilText {
		return ErrInvalidCoordinate
	}
	if strings.HasPrefix(text, `"`) {
		if err := json.Unmarshal(data, &text); err != nil {
			return ErrInvalidCoordinate
		}
	}

	v, err := ParseCoordinate(text)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (c *Coordinate) Scan(src interface{}) error {
	var (
		v   Coordinate
		err error
	)
	switch s := src.(type) {
	case string:
		v, err = ParseCoordinate(s)
	case []byte:
		v, err = ParseCoordinate(string(s))
	case float64:
		v, err = CoordinateFromFloat(s)
	case int64:
		v = Coordinate(s * coordinateScale)
	default:
		return fmt.Errorf("%w: %T", errUnsupportedScanType, src)
	}
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (c Coordinate) Value() (driver.Value, error) {
	return c.String(), nil
}
