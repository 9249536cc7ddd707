package employee

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/employee-records/internal"
	"github.com/frahmantamala/employee-records/internal/transport"
	"github.com/frahmantamala/employee-records/pkg/logger"
)

type StoreAPI interface {
	List() []Employee
	GetByID(id string) (*Employee, bool)
	Add(input EmployeeInput) (*Employee, error)
	Update(id string, input EmployeeInput) (*Employee, error)
	Delete(id string) error
	ToggleStatus(id string) (*Employee, error)
}

type Handler struct {
	*transport.BaseHandler
	Store StoreAPI
}

func NewHandler(store StoreAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Store:       store,
	}
}

// ListResponse wraps a filtered view of the collection together with the
// summary counts over the whole collection, which is what the dashboard
// renders side by side.
type ListResponse struct {
	Employees []Employee `json:"employees"`
	Stats     Stats      `json:"stats"`
}

// ListEmployees returns the collection filtered by the search, gender and
// status query parameters.
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	criteria, err := h.criteriaFromQuery(r)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	records := h.Store.List()
	h.WriteJSON(w, http.StatusOK, ListResponse{
		Employees: Apply(records, criteria),
		Stats:     Summarize(records),
	})
}

// GetStats returns the summary counts for the whole collection.
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, Summarize(h.Store.List()))
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rec, ok := h.Store.GetByID(id)
	if !ok {
		h.WriteError(w, http.StatusNotFound, "employee not found")
		return
	}
	h.WriteJSON(w, http.StatusOK, rec)
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	lg := logger.From(r.Context())

	var input EmployeeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		lg.Error("CreateEmployee: invalid request body", "error", err)
		h.HandleServiceError(w, internal.NewValidationError("invalid request body", internal.ErrCodeValidationFailed).WithCause(err))
		return
	}

	rec, err := h.Store.Add(input)
	if err != nil {
		lg.Error("CreateEmployee: store error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	lg.Info("CreateEmployee: employee created", "id", rec.ID, "name", rec.FullName)
	h.WriteJSON(w, http.StatusCreated, rec)
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	lg := logger.From(r.Context())
	id := chi.URLParam(r, "id")

	var input EmployeeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		lg.Error("UpdateEmployee: invalid request body", "error", err, "id", id)
		h.HandleServiceError(w, internal.NewValidationError("invalid request body", internal.ErrCodeValidationFailed).WithCause(err))
		return
	}

	rec, err := h.Store.Update(id, input)
	if err != nil {
		lg.Error("UpdateEmployee: store error", "error", err, "id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, rec)
}

// DeleteEmployee removes a record. Deleting an id that no longer exists still
// returns 204: deletes are only issued against visible rows, so a repeat is
// benign.
func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Store.Delete(id); err != nil {
		logger.From(r.Context()).Error("DeleteEmployee: store error", "error", err, "id", id)
		h.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ToggleEmployeeStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := h.Store.ToggleStatus(id)
	if err != nil {
		logger.From(r.Context()).Error("ToggleEmployeeStatus: store error", "error", err, "id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, rec)
}

func (h *Handler) criteriaFromQuery(r *http.Request) (Criteria, error) {
	query := r.URL.Query()

	gender, err := ParseGenderFilter(query.Get("gender"))
	if err != nil {
		return Criteria{}, err
	}
	status, err := ParseStatusFilter(query.Get("status"))
	if err != nil {
		return Criteria{}, err
	}

	return Criteria{
		SearchQuery: query.Get("search"),
		Gender:      gender,
		Status:      status,
	}, nil
}
