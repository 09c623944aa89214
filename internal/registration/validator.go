package registration

import (
	"time"

	"github.com/yug1204/event-registration/internal/validation"
)

// Validator bundles the stateless field rules with the one check that needs
// the store: duplicate detection on (email, event date).
type Validator struct {
	Repo *Repository
}

func NewValidator(r *Repository) *Validator {
	return &Validator{Repo: r}
}

func (v *Validator) ValidateEmail(s string) bool {
	return validation.ValidateEmail(s)
}

func (v *Validator) ValidateTextField(s string) bool {
	return validation.ValidateTextField(s)
}

func (v *Validator) ValidateDateRange(start, end string) bool {
	return validation.ValidateDateRange(start, end)
}

// IsDuplicateRegistration reports whether a submission already exists for
// this email on this event date.
func (v *Validator) IsDuplicateRegistration(email string, eventDate time.Time) (bool, error) {
	count, err := v.Repo.CountByEmailAndDate(email, eventDate)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
