package user

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User represents an account. Only the bcrypt hash of the password is ever
// persisted; a plaintext password field does not exist on the model.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"passwordHash,omitempty"`
	Name         string    `json:"name"`
	Role         string    `json:"role"` // "admin" or "member"
	CreatedAt    time.Time `json:"createdAt,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty"`
}

// Sanitized returns a copy safe to hand to callers: the hash is stripped.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}

// Session is the password-stripped projection of the logged-in user,
// persisted under the current-user singleton key. At most one session
// exists per store instance.
type Session struct {
	UserID    string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	StartedAt time.Time `json:"startedAt"`
}

// RegisterInput represents input for creating an account.
type RegisterInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
}

func (in *RegisterInput) Trim() {
	in.Username = strings.TrimSpace(in.Username)
	in.Name = strings.TrimSpace(in.Name)
	in.Role = strings.TrimSpace(in.Role)
}

// LoginInput represents a credentials pair.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HashPassword derives the bcrypt hash stored on a User.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// MustHashPassword is for seed fixtures, where the inputs are constants.
func MustHashPassword(plain string) string {
	hash, err := HashPassword(plain)
	if err != nil {
		panic(err)
	}
	return hash
}

func checkPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
