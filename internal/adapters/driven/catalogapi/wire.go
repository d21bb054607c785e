package catalogapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/catalog-cli/internal/core/domain"
)

// flexString accepts a JSON string or number and keeps its text.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", b)
	}
	*f = flexString(n.String())
	return nil
}

// flexFloat accepts a JSON number or a numeric string.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	var s flexString
	if err := s.UnmarshalJSON(b); err != nil {
		return err
	}
	if s == "" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(string(s)), 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", string(s))
	}
	*f = flexFloat(v)
	return nil
}

// flexInt accepts a JSON number or a numeric string. Fractions are truncated.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	var v flexFloat
	if err := v.UnmarshalJSON(b); err != nil {
		return err
	}
	*f = flexInt(int(v))
	return nil
}

type categoryResponse struct {
	ID    flexString `json:"id"`
	Name  string     `json:"name"`
	Image flexString `json:"image"`
}

func (r categoryResponse) toDomain() *domain.Category {
	return &domain.Category{
		ID:    string(r.ID),
		Name:  r.Name,
		Image: string(r.Image),
	}
}

type serviceResponse struct {
	ID         flexString `json:"id"`
	Name       string     `json:"name"`
	Price      flexFloat  `json:"price"`
	Time       flexInt    `json:"time"`
	CategoryID flexString `json:"category_id"`
}

func (r serviceResponse) toDomain() domain.Service {
	return domain.Service{
		ID:         string(r.ID),
		Name:       r.Name,
		Price:      float64(r.Price),
		Time:       int(r.Time),
		CategoryID: string(r.CategoryID),
	}
}

// createServiceRequest is the POST /services body. category_id is sent as
// the page's route parameter, a string.
type createServiceRequest struct {
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Time       int     `json:"time"`
	CategoryID string  `json:"category_id"`
}

// updateServiceRequest is the full-field PUT /services/{id} body.
type updateServiceRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Time  int     `json:"time"`
}

// errorResponse covers {"error": "..."} and {"message": "..."} bodies.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (e errorResponse) text() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}
