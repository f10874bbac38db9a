package gallery

import (
	"crypto/subtle"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Verifier checks an admin credential pair.
type Verifier interface {
	Verify(username, password string) bool
}

// StaticVerifier accepts exactly one fixed username/password pair. It is a
// placeholder gate, not a security boundary.
type StaticVerifier struct {
	Username string
	Password string
}

// Verify implements Verifier.
func (v StaticVerifier) Verify(username, password string) bool {
	if v.Username == "" || v.Password == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(v.Password)) == 1
	return userOK && passOK
}

// BcryptVerifier accepts one username whose password matches a bcrypt hash.
type BcryptVerifier struct {
	Username     string
	PasswordHash []byte
}

// Verify implements Verifier.
func (v BcryptVerifier) Verify(username, password string) bool {
	if v.Username == "" || len(v.PasswordHash) == 0 {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(username), []byte(v.Username)) != 1 {
		return false
	}
	return bcrypt.CompareHashAndPassword(v.PasswordHash, []byte(password)) == nil
}

// Gate grants access to the admin mutation surface. Grants last for the
// lifetime of the process: there is no expiry, revocation or lockout.
type Gate struct {
	verifier Verifier

	mu     sync.RWMutex
	grants map[string]struct{}
}

// NewGate creates a gate backed by verifier.
func NewGate(verifier Verifier) *Gate {
	return &Gate{
		verifier: verifier,
		grants:   make(map[string]struct{}),
	}
}

// Authenticate reports whether the credential pair is accepted.
func (g *Gate) Authenticate(username, password string) bool {
	return g.verifier.Verify(username, password)
}

// Login authenticates and, on success, issues a new capability grant.
func (g *Gate) Login(username, password string) (string, bool) {
	if !g.Authenticate(username, password) {
		return "", false
	}

	grant := uuid.New().String()
	g.mu.Lock()
	g.grants[grant] = struct{}{}
	g.mu.Unlock()
	return grant, true
}

// Granted reports whether grant was issued by this gate.
func (g *Gate) Granted(grant string) bool {
	if grant == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.grants[grant]
	return ok
}
