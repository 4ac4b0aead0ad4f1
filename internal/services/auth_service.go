package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	apperrors "stridelog/internal/errors"
	"stridelog/internal/storage"
)

// authService handles credential-related business logic.
type authService struct {
	store storage.CredentialStore
}

// NewAuthService creates a new AuthServicer over a credential store.
func NewAuthService(store storage.CredentialStore) AuthServicer {
	return &authService{store: store}
}

// Login verifies the password, creating the credential on first use.
func (s *authService) Login(password string) (bool, error) {
	if strings.TrimSpace(password) == "" {
		return false, apperrors.WithMessage(apperrors.ErrInvalidInput, "password is required")
	}

	stored, err := s.store.LoadCredential()
	if err != nil {
		if errors.Is(err, apperrors.ErrCredentialNotSet) {
			// First login sets up the account.
			hash, hashErr := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if hashErr != nil {
				return false, apperrors.Wrap(apperrors.ErrInternalServer, hashErr)
			}
			if saveErr := s.store.SaveCredential(string(hash)); saveErr != nil {
				return false, saveErr
			}
			return true, nil
		}
		return false, err
	}

	if bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) != nil {
		return false, apperrors.ErrInvalidCredentials
	}
	return false, nil
}
