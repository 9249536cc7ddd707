package employee_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/employee-records/internal"
	"github.com/frahmantamala/employee-records/internal/employee"
)

var _ = Describe("Filter", func() {
	var records []employee.Employee

	BeforeEach(func() {
		records = employee.SeedEmployees()
	})

	Describe("Apply", func() {
		It("should match everything with the zero criteria", func() {
			result := employee.Apply(records, employee.Criteria{})
			Expect(result).To(HaveLen(len(records)))
		})

		It("should find a record by a lower-case fragment of its name", func() {
			result := employee.Apply(records, employee.Criteria{SearchQuery: "priya"})
			Expect(result).To(HaveLen(1))
			Expect(result[0].FullName).To(Equal("Priya Patel"))
		})

		It("should ignore the case of the query", func() {
			lower := employee.Apply(records, employee.Criteria{SearchQuery: "rahul"})
			upper := employee.Apply(records, employee.Criteria{SearchQuery: "RAHUL"})
			mixed := employee.Apply(records, employee.Criteria{SearchQuery: "RaHuL"})
			Expect(lower).To(Equal(upper))
			Expect(lower).To(Equal(mixed))
			Expect(lower).To(HaveLen(1))
		})

		It("should match substrings anywhere in the name", func() {
			result := employee.Apply(records, employee.Criteria{SearchQuery: "sha"})
			Expect(result).To(HaveLen(1))
			Expect(result[0].FullName).To(Equal("Rahul Sharma"))
		})

		It("should filter by gender", func() {
			result := employee.Apply(records, employee.Criteria{Gender: employee.GenderIs(employee.GenderMale)})
			Expect(result).To(HaveLen(3))
			for _, rec := range result {
				Expect(rec.Gender).To(Equal(employee.GenderMale))
			}
		})

		It("should filter by status", func() {
			result := employee.Apply(records, employee.Criteria{Status: employee.InactiveOnly})
			Expect(result).To(HaveLen(2))
			for _, rec := range result {
				Expect(rec.IsActive).To(BeFalse())
			}
		})

		It("should combine all three predicates", func() {
			result := employee.Apply(records, employee.Criteria{
				SearchQuery: "a",
				Gender:      employee.GenderIs(employee.GenderFemale),
				Status:      employee.ActiveOnly,
			})
			for _, rec := range result {
				Expect(rec.FullName).To(ContainSubstring("a"))
				Expect(rec.Gender).To(Equal(employee.GenderFemale))
				Expect(rec.IsActive).To(BeTrue())
			}
		})

		It("should preserve the original order", func() {
			result := employee.Apply(records, employee.Criteria{Gender: employee.GenderIs(employee.GenderMale)})
			Expect(result[0].FullName).To(Equal("Rahul Sharma"))
			Expect(result[1].FullName).To(Equal("Amit Kumar"))
			Expect(result[2].FullName).To(Equal("Vikram Singh"))
		})

		It("should return an empty slice when nothing matches", func() {
			result := employee.Apply(records, employee.Criteria{SearchQuery: "zzz"})
			Expect(result).To(BeEmpty())
		})

		It("should not mutate the input", func() {
			before := employee.SeedEmployees()
			_ = employee.Apply(records, employee.Criteria{SearchQuery: "priya"})
			Expect(records).To(Equal(before))
		})
	})

	Describe("ParseGenderFilter", func() {
		It("should treat empty and all as the wildcard", func() {
			for _, s := range []string{"", "all"} {
				f, err := employee.ParseGenderFilter(s)
				Expect(err).NotTo(HaveOccurred())
				Expect(f.Matches(employee.GenderMale)).To(BeTrue())
				Expect(f.Matches(employee.GenderFemale)).To(BeTrue())
				Expect(f.Matches(employee.GenderOther)).To(BeTrue())
			}
		})

		It("should parse a single gender", func() {
			f, err := employee.ParseGenderFilter("female")
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Matches(employee.GenderFemale)).To(BeTrue())
			Expect(f.Matches(employee.GenderMale)).To(BeFalse())
		})

		It("should reject unknown values", func() {
			_, err := employee.ParseGenderFilter("robot")
			Expect(err).To(HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidFilter))
		})
	})

	Describe("ParseStatusFilter", func() {
		It("should treat empty and all as the wildcard", func() {
			for _, s := range []string{"", "all"} {
				f, err := employee.ParseStatusFilter(s)
				Expect(err).NotTo(HaveOccurred())
				Expect(f.Matches(true)).To(BeTrue())
				Expect(f.Matches(false)).To(BeTrue())
			}
		})

		It("should parse active and inactive", func() {
			active, err := employee.ParseStatusFilter("active")
			Expect(err).NotTo(HaveOccurred())
			Expect(active.Matches(true)).To(BeTrue())
			Expect(active.Matches(false)).To(BeFalse())

			inactive, err := employee.ParseStatusFilter("inactive")
			Expect(err).NotTo(HaveOccurred())
			Expect(inactive.Matches(false)).To(BeTrue())
			Expect(inactive.Matches(true)).To(BeFalse())
		})

		It("should reject unknown values", func() {
			_, err := employee.ParseStatusFilter("paused")
			Expect(err).To(HaveOccurred())
		})
	})
})
