package employee

import (
	"strings"
	"time"

	"github.com/frahmantamala/employee-records/internal"
)

const dateLayout = "2006-01-02"

// maxProfileImageLen bounds inline-encoded image payloads. A 5 MB file grows
// by roughly a third when base64 encoded.
const maxProfileImageLen = 7 * 1024 * 1024

// EmployeeInput is the payload for creating or replacing a record. The store
// assigns id and timestamps itself; callers never supply them. IsActive is a
// pointer so an omitted flag can be told apart from an explicit false.
type EmployeeInput struct {
	FullName     string `json:"fullName"`
	Gender       Gender `json:"gender"`
	DateOfBirth  string `json:"dateOfBirth"`
	ProfileImage string `json:"profileImage"`
	State        string `json:"state"`
	IsActive     *bool  `json:"isActive"`
}

// Active resolves the requested status flag. New records are active unless
// the caller says otherwise, matching the form's default.
func (in EmployeeInput) Active() bool {
	return in.IsActive == nil || *in.IsActive
}

// Validate checks the input the way the form layer does. The store calls it
// again defensively so malformed data can never reach the collection.
func (in EmployeeInput) Validate() error {
	name := strings.TrimSpace(in.FullName)
	if name == "" {
		return internal.NewValidationFieldError("fullName", "full name is required", internal.ErrCodeInvalidName)
	}
	if len(name) < 2 {
		return internal.NewValidationFieldError("fullName", "full name must be at least 2 characters", internal.ErrCodeInvalidName)
	}

	if !in.Gender.Valid() {
		return internal.NewValidationFieldError("gender", "gender must be male, female or other", internal.ErrCodeInvalidGender)
	}

	if in.DateOfBirth == "" {
		return internal.NewValidationFieldError("dateOfBirth", "date of birth is required", internal.ErrCodeInvalidDateOfBirth)
	}
	dob, err := time.Parse(dateLayout, in.DateOfBirth)
	if err != nil {
		return internal.NewValidationFieldError("dateOfBirth", "date of birth must be in YYYY-MM-DD format", internal.ErrCodeInvalidDateOfBirth)
	}
	now := time.Now().UTC()
	if dob.After(now) {
		return internal.NewValidationFieldError("dateOfBirth", "date of birth cannot be in the future", internal.ErrCodeInvalidDateOfBirth)
	}
	if dob.AddDate(18, 0, 0).After(now) {
		return internal.NewValidationFieldError("dateOfBirth", "employee must be at least 18 years old", internal.ErrCodeInvalidDateOfBirth)
	}

	if in.State == "" {
		return internal.NewValidationFieldError("state", "state is required", internal.ErrCodeInvalidState)
	}
	if !ValidState(in.State) {
		return internal.NewValidationFieldError("state", "unknown state", internal.ErrCodeInvalidState)
	}

	if len(in.ProfileImage) > maxProfileImageLen {
		return internal.NewValidationFieldError("profileImage", "image size must be less than 5MB", internal.ErrCodeInvalidImage)
	}

	return nil
}
