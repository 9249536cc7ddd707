package session

import (
	"log/slog"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/frahmantamala/employee-records/internal"
)

type ServiceAPI interface {
	Login(dto LoginDTO) (*LoginResponse, error)
	Logout()
	IsAuthenticated() bool
	CurrentUser() (*User, bool)
	ValidateAccessToken(tokenString string) (*Claims, error)
}

// Service is the session guard: it holds the authenticated-operator identity
// for the lifetime of the process. Only Login and Logout write it.
type Service struct {
	mu      sync.Mutex
	current *User

	cred   Credential
	tokens TokenGeneratorAPI
	logger *slog.Logger
}

func NewService(cred Credential, tokens TokenGeneratorAPI, logger *slog.Logger) *Service {
	return &Service{
		cred:   cred,
		tokens: tokens,
		logger: logger,
	}
}

// Login validates the credential and, on success, sets the current identity
// and issues an access token. A failed attempt never alters existing session
// state: a bad login after a good one does not log the operator out.
func (s *Service) Login(dto LoginDTO) (*LoginResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if dto.Username != s.cred.Username {
		s.logger.Warn("login failed: unknown username", "username", dto.Username)
		return nil, internal.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cred.PasswordHash), []byte(dto.Password)); err != nil {
		s.logger.Warn("login failed: password mismatch", "username", dto.Username)
		return nil, internal.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(s.cred.Username)
	if err != nil {
		s.logger.Error("failed to generate access token", "error", err)
		return nil, internal.NewInternalError("failed to generate access token", err)
	}

	user := User{Username: s.cred.Username, Name: s.cred.Name}
	s.mu.Lock()
	s.current = &user
	s.mu.Unlock()

	s.logger.Info("operator logged in", "username", user.Username)
	return &LoginResponse{AccessToken: token, User: user}, nil
}

// Logout clears the session identity unconditionally.
func (s *Service) Logout() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	s.logger.Info("operator logged out")
}

func (s *Service) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil
}

func (s *Service) CurrentUser() (*User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, false
	}
	user := *s.current
	return &user, true
}

func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokens.ValidateToken(tokenString)
}
