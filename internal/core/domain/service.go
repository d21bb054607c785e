package domain

import (
	"math"
	"strconv"
	"strings"
)

// Service is a bookable offering under a category.
// Values of this type always reflect state confirmed by the server.
type Service struct {
	// ID is assigned by the server on creation.
	ID string `json:"id"`

	// Name is the non-empty display name.
	Name string `json:"name"`

	// Price is strictly positive; displayed currency-formatted.
	Price float64 `json:"price"`

	// Time is the duration in minutes, one of DurationOptions.
	Time int `json:"time"`

	// CategoryID links the service to its category.
	CategoryID string `json:"category_id"`
}

// ServiceInput is a validated create or update payload.
type ServiceInput struct {
	Name  string
	Price float64
	Time  int
}

// ServiceDraft is in-progress form state. Price stays a string until validated.
// Setters return modified copies; a draft is never mutated in place.
type ServiceDraft struct {
	Name  string
	Price string
	Time  int
}

// NewServiceDraft returns an empty draft with the default duration.
func NewServiceDraft() ServiceDraft {
	return ServiceDraft{Time: DefaultDuration}
}

// WithName returns a copy of the draft with name replaced.
func (d ServiceDraft) WithName(name string) ServiceDraft {
	d.Name = name
	return d
}

// WithPrice returns a copy of the draft with price replaced.
func (d ServiceDraft) WithPrice(price string) ServiceDraft {
	d.Price = price
	return d
}

// WithTime returns a copy of the draft with time replaced.
func (d ServiceDraft) WithTime(minutes int) ServiceDraft {
	d.Time = minutes
	return d
}

// Validate checks the draft and converts it into a ServiceInput.
// Failures are returned as *ValidationError.
func (d ServiceDraft) Validate() (ServiceInput, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return ServiceInput{}, &ValidationError{Field: "name", Err: ErrInvalidName}
	}
	price, err := ParsePrice(d.Price)
	if err != nil {
		return ServiceInput{}, err
	}
	if !IsValidDuration(d.Time) {
		return ServiceInput{}, &ValidationError{Field: "time", Err: ErrInvalidDuration}
	}
	return ServiceInput{Name: name, Price: price, Time: d.Time}, nil
}

// ParsePrice parses a form price. Empty, non-numeric and non-positive values are rejected.
func ParsePrice(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, &ValidationError{Field: "price", Err: ErrInvalidPrice}
	}
	return v, nil
}

// FormatPriceInput renders a price the way a form field holds it.
func FormatPriceInput(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}

// EditSession is a checked-out copy of a Service being edited.
// Changing the session never touches the Service it was copied from.
type EditSession struct {
	ServiceID  string
	CategoryID string
	Draft      ServiceDraft
}

// CheckOut copies s into a new edit session.
func CheckOut(s Service) EditSession {
	return EditSession{
		ServiceID:  s.ID,
		CategoryID: s.CategoryID,
		Draft: ServiceDraft{
			Name:  s.Name,
			Price: FormatPriceInput(s.Price),
			Time:  s.Time,
		},
	}
}

// WithDraft returns a copy of the session holding d.
func (e EditSession) WithDraft(d ServiceDraft) EditSession {
	e.Draft = d
	return e
}
