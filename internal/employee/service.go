package employee

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/frahmantamala/employee-records/internal"
	"github.com/frahmantamala/employee-records/pkg/avatar"
)

// Storage is the durable home of the whole collection. Load reports found =
// false when the slot has never been written, which is distinct from a slot
// holding an empty collection.
type Storage interface {
	Load() (records []Employee, found bool, err error)
	Save(records []Employee) error
}

// Store owns the employee collection. Every mutation writes the full
// collection through to storage before returning; when the write fails the
// in-memory state is rolled back so memory and storage never diverge.
type Store struct {
	mu      sync.Mutex
	storage Storage
	records []Employee
	loaded  bool
	logger  *slog.Logger
}

func NewStore(storage Storage, logger *slog.Logger) *Store {
	return &Store{
		storage: storage,
		logger:  logger,
	}
}

// Initialize loads the persisted collection, seeding the example records when
// the slot has never been written. Repeated calls are no-ops: a collection
// that was emptied by deletions is not re-seeded.
func (s *Store) Initialize() ([]Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.snapshot(), nil
	}

	records, found, err := s.storage.Load()
	if err != nil {
		s.logger.Error("failed to load employee collection", "error", err)
		return nil, internal.NewStorageError("failed to load employees", err)
	}

	if !found {
		records = SeedEmployees()
		if err := s.storage.Save(records); err != nil {
			s.logger.Error("failed to persist seed collection", "error", err)
			return nil, internal.NewStorageError("failed to persist seed employees", err)
		}
		s.logger.Info("seeded employee collection", "count", len(records))
	}

	s.records = records
	s.loaded = true
	s.logger.Info("employee store initialized", "count", len(s.records))
	return s.snapshot(), nil
}

// Add validates the input, assigns identity and timestamps and appends the
// record. An absent profile image is replaced with the deterministic
// placeholder for the name.
func (s *Store) Add(input EmployeeInput) (*Employee, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	rec := Employee{
		ID:           s.newID(),
		FullName:     strings.TrimSpace(input.FullName),
		Gender:       input.Gender,
		DateOfBirth:  input.DateOfBirth,
		ProfileImage: input.ProfileImage,
		State:        input.State,
		IsActive:     input.Active(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if rec.ProfileImage == "" {
		rec.ProfileImage = avatar.URL(rec.FullName)
	}

	s.records = append(s.records, rec)
	if err := s.persist(); err != nil {
		s.records = s.records[:len(s.records)-1]
		return nil, err
	}

	s.logger.Info("employee added", "id", rec.ID, "name", rec.FullName)
	out := rec
	return &out, nil
}

// Update replaces every field except id and createdAt and bumps updatedAt.
func (s *Store) Update(id string, input EmployeeInput) (*Employee, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, internal.ErrEmployeeNotFound
	}

	prev := s.records[idx]
	rec := prev
	rec.FullName = strings.TrimSpace(input.FullName)
	rec.Gender = input.Gender
	rec.DateOfBirth = input.DateOfBirth
	rec.ProfileImage = input.ProfileImage
	rec.State = input.State
	rec.IsActive = input.Active()
	rec.UpdatedAt = time.Now().UTC()
	if rec.ProfileImage == "" {
		rec.ProfileImage = avatar.URL(rec.FullName)
	}

	s.records[idx] = rec
	if err := s.persist(); err != nil {
		s.records[idx] = prev
		return nil, err
	}

	s.logger.Info("employee updated", "id", rec.ID, "name", rec.FullName)
	out := rec
	return &out, nil
}

// Delete removes the record with the given id. Deleting an id that is not
// present is a no-op: the UI only ever deletes records it can see, so a
// second click on a stale row must not surface an error.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		s.logger.Debug("delete of absent employee ignored", "id", id)
		return nil
	}

	prev := s.snapshot()
	s.records = append(s.records[:idx], s.records[idx+1:]...)
	if err := s.persist(); err != nil {
		s.records = prev
		return err
	}

	s.logger.Info("employee deleted", "id", id)
	return nil
}

// ToggleStatus flips the active flag and bumps updatedAt.
func (s *Store) ToggleStatus(id string) (*Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, internal.ErrEmployeeNotFound
	}

	prev := s.records[idx]
	rec := prev
	rec.IsActive = !rec.IsActive
	rec.UpdatedAt = time.Now().UTC()

	s.records[idx] = rec
	if err := s.persist(); err != nil {
		s.records[idx] = prev
		return nil, err
	}

	s.logger.Info("employee status toggled", "id", rec.ID, "is_active", rec.IsActive)
	out := rec
	return &out, nil
}

// GetByID looks a record up without side effects.
func (s *Store) GetByID(id string) (*Employee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, false
	}
	out := s.records[idx]
	return &out, true
}

// List returns a snapshot of the collection in insertion order. Mutating the
// returned slice does not affect the store.
func (s *Store) List() []Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Store) snapshot() []Employee {
	out := make([]Employee, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) indexOf(id string) int {
	for i := range s.records {
		if s.records[i].ID == id {
			return i
		}
	}
	return -1
}

// newID returns a fresh uuid that is not already taken. A collision is
// vanishingly unlikely but cheap to rule out while holding the lock.
func (s *Store) newID() string {
	for {
		id := uuid.NewString()
		if s.indexOf(id) < 0 {
			return id
		}
	}
}

func (s *Store) persist() error {
	if err := s.storage.Save(s.records); err != nil {
		s.logger.Error("failed to persist employee collection", "error", err, "count", len(s.records))
		return internal.NewStorageError("failed to persist employees", err)
	}
	return nil
}
