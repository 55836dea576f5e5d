package store

import (
	"encoding/base64"
	"fmt"
	"regexp"

	"github.com/charmbracelet/log"
	"github.com/dhkim-dev/cinewish/internal/models"
)

// fallbackSalt is used when no API key is configured. Matches the stored
// value format of existing installs; do not change.
const fallbackSalt = "tmdb_fallback_salt"

const minPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether email has the shape local@domain.tld.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// CredentialStore holds registered accounts. Registration and login read and
// write the whole account list as one unit; there is exactly one writer.
//
// Emails match case-sensitively.
type CredentialStore struct {
	kv     KV
	salt   string
	logger *log.Logger
}

// NewCredentialStore creates a CredentialStore over the given backend.
// The salt feeds the password obfuscation; empty falls back to a fixed string.
func NewCredentialStore(kv KV, salt string, logger *log.Logger) *CredentialStore {
	if salt == "" {
		salt = fallbackSalt
	}
	return &CredentialStore{kv: kv, salt: salt, logger: logger}
}

// encodePassword applies the reversible obfuscation: base64 of the raw
// password joined with the salt. Not a hash, not a security control.
func (s *CredentialStore) encodePassword(raw string) string {
	return base64.StdEncoding.EncodeToString([]byte(raw + "::" + s.salt))
}

func (s *CredentialStore) loadUsers() []models.StoredUser {
	var users []models.StoredUser
	getJSON(s.kv, UsersKey, &users)
	return users
}

func (s *CredentialStore) saveUsers(users []models.StoredUser) {
	if err := setJSON(s.kv, UsersKey, users); err != nil && s.logger != nil {
		s.logger.Warn("failed to persist users", "error", err)
	}
}

// ValidateRegistration checks registration form input: email shape, password
// length, confirmation match and terms consent. Returns the first failure as
// a Result value.
func (s *CredentialStore) ValidateRegistration(email, password, confirm string, consent bool) models.Result {
	if !IsValidEmail(email) {
		return models.Result{OK: false, Message: "invalid email address"}
	}
	if len(password) < minPasswordLength {
		return models.Result{OK: false, Message: fmt.Sprintf("password must be at least %d characters", minPasswordLength)}
	}
	if password != confirm {
		return models.Result{OK: false, Message: "passwords do not match"}
	}
	if !consent {
		return models.Result{OK: false, Message: "terms must be accepted"}
	}
	return models.Result{OK: true, Message: "valid"}
}

// Register adds a new account. Fails when the email is already present;
// the stored record of an existing account is never altered.
func (s *CredentialStore) Register(email, rawPassword string) models.Result {
	users := s.loadUsers()

	for _, u := range users {
		if u.Email == email {
			return models.Result{OK: false, Message: "email already registered"}
		}
	}

	users = append(users, models.StoredUser{
		Email:           email,
		PasswordEncoded: s.encodePassword(rawPassword),
	})
	s.saveUsers(users)

	return models.Result{OK: true, Message: "registration successful"}
}

// Login checks email and password against the stored accounts. Unknown email
// and wrong password yield the same message so accounts can't be enumerated.
func (s *CredentialStore) Login(email, rawPassword string) models.Result {
	encoded := s.encodePassword(rawPassword)

	for _, u := range s.loadUsers() {
		if u.Email == email && u.PasswordEncoded == encoded {
			return models.Result{OK: true, Message: "login successful"}
		}
	}

	return models.Result{OK: false, Message: "invalid email or password"}
}
