package services

import (
	"log/slog"
	"strings"

	"suredoor/models"

	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 8
	// bcrypt ignores input past 72 bytes
	maxPasswordLength = 72
)

// AuthService handles admin authentication against the hashed credentials in settings
type AuthService struct {
	repo         SettingsRepository
	sessionStore SessionStore
	bcryptCost   int
}

// NewAuthService creates a new auth service
func NewAuthService(repo SettingsRepository, sessionStore SessionStore) *AuthService {
	return &AuthService{
		repo:         repo,
		sessionStore: sessionStore,
		bcryptCost:   bcrypt.DefaultCost,
	}
}

// WithCost overrides the bcrypt cost, used by tests to keep hashing fast
func (as *AuthService) WithCost(cost int) *AuthService {
	as.bcryptCost = cost
	return as
}

// Bootstrap makes sure hashed credentials exist. A legacy plaintext password is
// hashed in place; otherwise the given email/password seed an empty install.
func (as *AuthService) Bootstrap(email, password string) error {
	values, err := as.repo.GetSettingsMap()
	if err != nil {
		return err
	}

	storedEmail := values[models.SettingAdminEmail]
	legacy, hasLegacy := values[models.SettingLegacyAdminPassword]

	if values[models.SettingAdminPasswordHash] != "" {
		if hasLegacy {
			return as.repo.DeleteSetting(models.SettingLegacyAdminPassword)
		}
		return nil
	}

	if hasLegacy && legacy != "" {
		if storedEmail == "" {
			storedEmail = email
		}
		if storedEmail == "" {
			slog.Warn("legacy admin password found without an admin email, skipping migration")
			return nil
		}
		slog.Info("migrating legacy plaintext admin password to bcrypt")
		return as.storeCredentials(storedEmail, legacy)
	}

	if email == "" || password == "" {
		slog.Warn("no admin credentials configured; set ADMIN_EMAIL and ADMIN_PASSWORD or run `admin set-password`")
		return nil
	}

	slog.Info("seeding admin credentials", "email", email)
	return as.SetCredentials(email, password)
}

// SetCredentials replaces the admin email and password
func (as *AuthService) SetCredentials(email, password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}
	return as.storeCredentials(email, password)
}

func (as *AuthService) storeCredentials(email, password string) error {
	hash, err := as.hashPassword(password)
	if err != nil {
		return err
	}

	if err := as.repo.UpsertSettings(map[string]string{
		models.SettingAdminEmail:        normalizeEmail(email),
		models.SettingAdminPasswordHash: hash,
	}); err != nil {
		return err
	}

	return as.repo.DeleteSetting(models.SettingLegacyAdminPassword)
}

// Login checks the pair against the stored credentials and opens a session
func (as *AuthService) Login(email, password string) (*models.Session, error) {
	storedEmail, hash, err := as.credentials()
	if err != nil {
		return nil, err
	}

	// Always run the comparison so a wrong email costs as much as a wrong password
	passwordOK := checkPassword(password, hash)
	if normalizeEmail(email) != storedEmail || !passwordOK {
		return nil, ErrInvalidCredentials
	}

	return as.sessionStore.Create(storedEmail)
}

func (as *AuthService) Logout(sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return as.sessionStore.Delete(sessionID)
}

// Session returns the live session or ErrSessionNotFound
func (as *AuthService) Session(sessionID string) (*models.Session, error) {
	sess, err := as.sessionStore.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// ChangePassword verifies the current password, stores the new one and ends
// every existing session. The returned session replaces the caller's.
func (as *AuthService) ChangePassword(email, current, next string) (*models.Session, error) {
	storedEmail, hash, err := as.credentials()
	if err != nil {
		return nil, err
	}

	if normalizeEmail(email) != storedEmail || !checkPassword(current, hash) {
		return nil, ErrInvalidCredentials
	}

	if err := as.SetCredentials(storedEmail, next); err != nil {
		return nil, err
	}

	if err := as.sessionStore.DeleteAllFor(storedEmail); err != nil {
		return nil, err
	}

	return as.sessionStore.Create(storedEmail)
}

func (as *AuthService) credentials() (email, hash string, err error) {
	values, err := as.repo.GetSettingsMap()
	if err != nil {
		return "", "", err
	}

	email = values[models.SettingAdminEmail]
	hash = values[models.SettingAdminPasswordHash]
	if email == "" || hash == "" {
		return "", "", ErrAdminNotConfigured
	}
	return email, hash, nil
}

// Helper functions

func (as *AuthService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), as.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		return ErrWeakPassword
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
