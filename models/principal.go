package models

import "strings"

// Role is the role a principal signed up with
type Role string

// Roles supported at signup
const (
	RoleJudge          Role = "Judge"
	RoleLawyer         Role = "Lawyer"
	RoleLegalAssistant Role = "Legal Assistant"
	RolePublic         Role = "Public"
)

// ParseRole resolves a role label from a signup form, ignoring case
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "judge":
		return RoleJudge, true
	case "lawyer":
		return RoleLawyer, true
	case "legal assistant", "legalassistant":
		return RoleLegalAssistant, true
	case "public":
		return RolePublic, true
	}
	return "", false
}

// Principal holds an account in the directory. Password is a plaintext
// placeholder comparison for the prototype and is never serialized.
type Principal struct {
	Name     string `json:"name"`
	Role     Role   `json:"role"`
	Password string `json:"-"`
}

// Descriptor returns the "role:name" label used by timeline and message entries
func (p Principal) Descriptor() string {
	if p.Name == "" {
		return "Anon"
	}
	return string(p.Role) + ":" + p.Name
}
