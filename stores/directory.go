package stores

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/ADITYAKUMARSINGH16/ai-judicial/models"
)

// Directory owns every principal for the lifetime of the process. Principals
// are immutable once registered; there is no update or delete.
type Directory struct {
	mu         sync.RWMutex
	principals []models.Principal
}

// NewDirectory initializes an empty principal directory
func NewDirectory() *Directory {
	return &Directory{}
}

// Register inserts a new principal. Names are unique ignoring case; the
// credential comparison elsewhere stays a plaintext placeholder, so nothing is
// hashed here.
func (d *Directory) Register(name string, role models.Role, credential string) (models.Principal, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.TrimSpace(credential) == "" {
		return models.Principal{}, fmt.Errorf("%w: name and password are required", models.ErrInvalidInput)
	}
	if _, ok := models.ParseRole(string(role)); !ok {
		return models.Principal{}, fmt.Errorf("%w: unknown role %q", models.ErrInvalidInput, role)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for _, p := range d.principals {
		if strings.EqualFold(p.Name, name) {
			return models.Principal{}, fmt.Errorf("%w: %s", models.ErrDuplicatePrincipal, p.Name)
		}
	}

	p := models.Principal{Name: name, Role: role, Password: credential}
	d.principals = append([]models.Principal{p}, d.principals...)
	zap.S().Debugw("registered principal", "name", p.Name, "role", p.Role)
	return p, nil
}

// Authenticate resolves a (name, credential) pair to a principal. The name
// match ignores case, the credential match is exact, and the returned
// principal never carries the credential. The error does not reveal which part
// failed to match.
func (d *Directory) Authenticate(name, credential string) (models.Principal, error) {
	name = strings.TrimSpace(name)

	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, p := range d.principals {
		if strings.EqualFold(p.Name, name) && p.Password == credential {
			return models.Principal{Name: p.Name, Role: p.Role}, nil
		}
	}
	return models.Principal{}, models.ErrInvalidCredentials
}

// Seed preloads principals at process start through the same invariants as
// Register.
func (d *Directory) Seed(seeds []models.Principal) error {
	for _, s := range seeds {
		if _, err := d.Register(s.Name, s.Role, s.Password); err != nil {
			return fmt.Errorf("seed principal %q: %w", s.Name, err)
		}
	}
	return nil
}

// Count returns the number of registered principals
func (d *Directory) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.principals)
}
