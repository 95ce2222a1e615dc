package usecase

import (
	"time"

	"github.com/tu-usuario/gmao-pro/internal/domain"
)

const dateLayout = "2006-01-02"

// parseDate interpreta una fecha 2006-01-02 opcional (nil o "" -> nil).
func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return &t, nil
}

// formatDate serializa una fecha opcional como 2006-01-02.
func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
