package employee_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/employee-records/internal/employee"
)

var _ = Describe("Employee Handler", func() {
	var (
		mockStorage *MockStorage
		store       *employee.Store
		router      *chi.Mux
	)

	BeforeEach(func() {
		mockStorage = NewMockStorage()
		store = employee.NewStore(mockStorage, testLogger())
		_, err := store.Initialize()
		Expect(err).NotTo(HaveOccurred())

		handler := employee.NewHandler(store)
		router = chi.NewRouter()
		router.Route("/employees", func(r chi.Router) {
			r.Get("/", handler.ListEmployees)
			r.Post("/", handler.CreateEmployee)
			r.Get("/stats", handler.GetStats)
			r.Get("/report", handler.Report)
			r.Get("/{id}", handler.GetEmployee)
			r.Put("/{id}", handler.UpdateEmployee)
			r.Delete("/{id}", handler.DeleteEmployee)
			r.Patch("/{id}/status", handler.ToggleEmployeeStatus)
		})
	})

	do := func(method, target string, body interface{}) *httptest.ResponseRecorder {
		GinkgoHelper()
		var reader *bytes.Reader
		if body != nil {
			payload, err := json.Marshal(body)
			Expect(err).NotTo(HaveOccurred())
			reader = bytes.NewReader(payload)
		} else {
			reader = bytes.NewReader(nil)
		}
		req := httptest.NewRequest(method, target, reader)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	Describe("GET /employees", func() {
		It("should return the collection with summary counts", func() {
			rec := do(http.MethodGet, "/employees", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var resp employee.ListResponse
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Employees).To(HaveLen(6))
			Expect(resp.Stats.Total).To(Equal(6))
			Expect(resp.Stats.Active).To(Equal(4))
		})

		It("should filter by query parameters", func() {
			rec := do(http.MethodGet, "/employees?search=priya&gender=female&status=active", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var resp employee.ListResponse
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Employees).To(HaveLen(1))
			Expect(resp.Employees[0].FullName).To(Equal("Priya Patel"))
			// stats still describe the whole collection
			Expect(resp.Stats.Total).To(Equal(6))
		})

		It("should reject an unknown filter value", func() {
			rec := do(http.MethodGet, "/employees?gender=robot", nil)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GET /employees/stats", func() {
		It("should return the counts", func() {
			rec := do(http.MethodGet, "/employees/stats", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var stats employee.Stats
			Expect(json.Unmarshal(rec.Body.Bytes(), &stats)).To(Succeed())
			Expect(stats.Total).To(Equal(6))
			Expect(stats.Inactive).To(Equal(2))
		})
	})

	Describe("GET /employees/report", func() {
		It("should render an HTML roster", func() {
			rec := do(http.MethodGet, "/employees/report", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get("Content-Type")).To(ContainSubstring("text/html"))
			Expect(rec.Body.String()).To(ContainSubstring("Rahul Sharma"))
		})

		It("should honor the filter parameters", func() {
			rec := do(http.MethodGet, "/employees/report?status=inactive", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(ContainSubstring("Amit Kumar"))
			Expect(rec.Body.String()).NotTo(ContainSubstring("Rahul Sharma"))
		})
	})

	Describe("GET /employees/{id}", func() {
		It("should return the record", func() {
			rec := do(http.MethodGet, "/employees/2", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var emp employee.Employee
			Expect(json.Unmarshal(rec.Body.Bytes(), &emp)).To(Succeed())
			Expect(emp.FullName).To(Equal("Priya Patel"))
		})

		It("should return 404 for an unknown id", func() {
			rec := do(http.MethodGet, "/employees/nope", nil)
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("POST /employees", func() {
		It("should create a record", func() {
			rec := do(http.MethodPost, "/employees", validInput())
			Expect(rec.Code).To(Equal(http.StatusCreated))

			var emp employee.Employee
			Expect(json.Unmarshal(rec.Body.Bytes(), &emp)).To(Succeed())
			Expect(emp.ID).NotTo(BeEmpty())
			Expect(emp.ProfileImage).NotTo(BeEmpty())
			Expect(store.List()).To(HaveLen(7))
		})

		It("should default a new record to active when the flag is omitted", func() {
			rec := do(http.MethodPost, "/employees", map[string]string{
				"fullName":    "Test User",
				"gender":      "male",
				"dateOfBirth": "1990-01-01",
				"state":       "Delhi",
			})
			Expect(rec.Code).To(Equal(http.StatusCreated))

			var emp employee.Employee
			Expect(json.Unmarshal(rec.Body.Bytes(), &emp)).To(Succeed())
			Expect(emp.IsActive).To(BeTrue())
		})

		It("should reject malformed JSON with a validation code", func() {
			req := httptest.NewRequest(http.MethodPost, "/employees", bytes.NewReader([]byte("{not json")))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Body.String()).To(ContainSubstring("VALIDATION_FAILED"))
		})

		It("should reject invalid input with a field error", func() {
			input := validInput()
			input.State = "Atlantis"
			rec := do(http.MethodPost, "/employees", input)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Body.String()).To(ContainSubstring("state"))
			Expect(store.List()).To(HaveLen(6))
		})
	})

	Describe("PUT /employees/{id}", func() {
		It("should update the record", func() {
			input := validInput()
			input.FullName = "Priya Sharma"
			rec := do(http.MethodPut, "/employees/2", input)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var emp employee.Employee
			Expect(json.Unmarshal(rec.Body.Bytes(), &emp)).To(Succeed())
			Expect(emp.ID).To(Equal("2"))
			Expect(emp.FullName).To(Equal("Priya Sharma"))
		})

		It("should return 404 for an unknown id", func() {
			rec := do(http.MethodPut, "/employees/nope", validInput())
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("DELETE /employees/{id}", func() {
		It("should delete and return 204", func() {
			rec := do(http.MethodDelete, "/employees/3", nil)
			Expect(rec.Code).To(Equal(http.StatusNoContent))
			Expect(store.List()).To(HaveLen(5))
		})

		It("should return 204 for an id that is already gone", func() {
			Expect(do(http.MethodDelete, "/employees/3", nil).Code).To(Equal(http.StatusNoContent))
			Expect(do(http.MethodDelete, "/employees/3", nil).Code).To(Equal(http.StatusNoContent))
		})
	})

	Describe("PATCH /employees/{id}/status", func() {
		It("should flip the active flag", func() {
			rec := do(http.MethodPatch, "/employees/1/status", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))

			var emp employee.Employee
			Expect(json.Unmarshal(rec.Body.Bytes(), &emp)).To(Succeed())
			Expect(emp.IsActive).To(BeFalse())
		})

		It("should return 404 for an unknown id", func() {
			rec := do(http.MethodPatch, "/employees/nope/status", nil)
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})
})
