package domain

import (
	"strings"
	"unicode/utf8"

	"github.com/civichero/civichero-backend/internal/validation"
)

const MaxNameLength = 100

// Department is a municipal department that handles civic reports
type Department struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateDepartmentRequest is the writable part of a Department
type CreateDepartmentRequest struct {
	Name        validation.String `json:"name"`
	Description validation.String `json:"description"`
}

// Normalize trims the input and validates it, returning the department to
// insert or a validation.Errors.
func (r CreateDepartmentRequest) Normalize() (Department, error) {
	var errs validation.Errors
	var d Department

	switch msg := r.Name.Presence(); {
	case msg != "":
		errs.Add("name", msg)
	case strings.TrimSpace(r.Name.Value) == "":
		errs.Add("name", validation.MsgBlank)
	default:
		d.Name = strings.TrimSpace(r.Name.Value)
		if utf8.RuneCountInString(d.Name) > MaxNameLength {
			errs.Add("name", "Ensure this field has no more than 100 characters.")
		}
	}

	switch msg := r.Description.Presence(); {
	case msg != "":
		errs.Add("description", msg)
	case strings.TrimSpace(r.Description.Value) == "":
		errs.Add("description", validation.MsgBlank)
	default:
		d.Description = strings.TrimSpace(r.Description.Value)
	}

	if err := errs.Err(); err != nil {
		return Department{}, err
	}
	return d, nil
}
