package middleware

import (
	"net/http"

	"github.com/devansh2311/deskmate/internal/dto"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validator plugs go-playground/validator into echo's c.Validate.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	v.RegisterStructValidation(validateBookingInterval, dto.BookMeetingRoomRequest{})
	return &Validator{validate: v}
}

// validateBookingInterval enforces EndTime > StartTime. Tag-based field
// comparisons compare lengths for string kinds, so the zero-padded HH:MM
// values are ordered here instead.
func validateBookingInterval(sl validator.StructLevel) {
	req := sl.Current().Interface().(dto.BookMeetingRoomRequest)
	if req.StartTime != "" && req.EndTime != "" && req.EndTime <= req.StartTime {
		sl.ReportError(req.EndTime, "EndTime", "EndTime", "gtstarttime", "")
	}
}

func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
