package employee_test

import (
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/employee-records/internal"
	"github.com/frahmantamala/employee-records/internal/employee"
)

var _ = Describe("EmployeeInput", func() {
	var input employee.EmployeeInput

	BeforeEach(func() {
		input = employee.EmployeeInput{
			FullName:    "Test User",
			Gender:      employee.GenderFemale,
			DateOfBirth: "1990-01-01",
			State:       "Kerala",
		}
	})

	expectFieldError := func(err error, field string, code internal.ErrorCode) {
		GinkgoHelper()
		Expect(err).To(HaveOccurred())
		appErr, ok := internal.IsAppError(err)
		Expect(ok).To(BeTrue())
		Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
		Expect(appErr.Field).To(Equal(field))
		Expect(appErr.Code).To(Equal(code))
	}

	It("should accept a well-formed input", func() {
		Expect(input.Validate()).To(Succeed())
	})

	It("should require a name", func() {
		input.FullName = "   "
		expectFieldError(input.Validate(), "fullName", internal.ErrCodeInvalidName)
	})

	It("should require at least two characters after trimming", func() {
		input.FullName = " a "
		expectFieldError(input.Validate(), "fullName", internal.ErrCodeInvalidName)
	})

	It("should reject an unknown gender", func() {
		input.Gender = "unknown"
		expectFieldError(input.Validate(), "gender", internal.ErrCodeInvalidGender)
	})

	It("should require a date of birth", func() {
		input.DateOfBirth = ""
		expectFieldError(input.Validate(), "dateOfBirth", internal.ErrCodeInvalidDateOfBirth)
	})

	It("should reject a malformed date", func() {
		input.DateOfBirth = "15/05/1990"
		expectFieldError(input.Validate(), "dateOfBirth", internal.ErrCodeInvalidDateOfBirth)
	})

	It("should reject a future date of birth", func() {
		input.DateOfBirth = time.Now().UTC().AddDate(1, 0, 0).Format("2006-01-02")
		expectFieldError(input.Validate(), "dateOfBirth", internal.ErrCodeInvalidDateOfBirth)
	})

	It("should reject anyone under 18", func() {
		input.DateOfBirth = time.Now().UTC().AddDate(-17, 0, 0).Format("2006-01-02")
		expectFieldError(input.Validate(), "dateOfBirth", internal.ErrCodeInvalidDateOfBirth)
	})

	It("should accept someone exactly old enough", func() {
		input.DateOfBirth = time.Now().UTC().AddDate(-18, 0, -1).Format("2006-01-02")
		Expect(input.Validate()).To(Succeed())
	})

	It("should require a state", func() {
		input.State = ""
		expectFieldError(input.Validate(), "state", internal.ErrCodeInvalidState)
	})

	It("should reject an unknown state", func() {
		input.State = "Atlantis"
		expectFieldError(input.Validate(), "state", internal.ErrCodeInvalidState)
	})

	It("should reject an oversized inline image", func() {
		input.ProfileImage = strings.Repeat("x", 7*1024*1024+1)
		expectFieldError(input.Validate(), "profileImage", internal.ErrCodeInvalidImage)
	})
})
