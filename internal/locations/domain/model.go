package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/civichero/civichero-backend/internal/validation"
)

const MaxAddressLength = 255

var (
	minLatitude  = Coordinate(-90 * coordinateScale)
	maxLatitude  = Coordinate(90 * coordinateScale)
	minLongitude = Coordinate(-180 * coordinateScale)
	maxLongitude = Coordinate(180 * coordinateScale)
)

// Location is a reported point of interest
type Location struct {
	ID        int64      `json:"id"`
	Latitude  Coordinate `json:"latitude"`
	Longitude Coordinate `json:"longitude"`
	Address   string     `json:"address"`
	CreatedAt time.Time  `json:"created_at"`
}

func (l Location) String() string {
	return fmt.Sprintf("%s, %s (@ %s)", l.Latitude, l.Longitude, l.CreatedAt.Format("2006-01-02 15:04:05"))
}

// CreateLocationRequest keeps the coordinates raw so that every field can be
// reported on at once instead of failing on the first bad value.
type CreateLocationRequest struct {
	Latitude  json.RawMessage   `json:"latitude"`
	Longitude json.RawMessage   `json:"longitude"`
	Address   validation.String `json:"address"`
}

// Normalize validates the request and returns the location to insert.
// ID and CreatedAt are assigned by the store.
func (r CreateLocationRequest) Normalize() (Location, error) {
	var errs validation.Errors
	var loc Location

	loc.Latitude = parseField(&errs, "latitude", r.Latitude, minLatitude, maxLatitude)
	loc.Longitude = parseField(&errs, "longitude", r.Longitude, minLongitude, maxLongitude)

	// address is optional, but null is still rejected
	loc.Address = strings.TrimSpace(r.Address.Value)
	if r.Address.Null {
		errs.Add("address", validation.MsgNull)
	} else if utf8.RuneCountInString(loc.Address) > MaxAddressLength {
		errs.Add("address", "Ensure this field has no more than 255 characters.")
	}

	if err := errs.Err(); err != nil {
		return Location{}, err
	}
	return loc, nil
}

func parseField(errs *validation.Errors, field string, raw json.RawMessage, min, max Coordinate) Coordinate {
	if len(raw) == 0 {
		errs.Add(field, validation.MsgRequired)
		return 0
	}
	switch strings.TrimSpace(string(raw)) {
	case "null":
		errs.Add(field, validation.MsgNull)
		return 0
	case `""`:
		errs.Add(field, ErrInvalidCoordinate.Error())
		return 0
	}

	var c Coordinate
	if err := json.Unmarshal(raw, &c); err != nil {
		errs.Add(field, err.Error())
		return 0
	}
	if c < min || c > max {
		errs.Add(field, fmt.Sprintf("Ensure this value is between %s and %s.", min, max))
		return 0
	}
	return c
}
