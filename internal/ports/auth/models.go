package auth

import "strings"

// Role distingue adotantes de organizações (ONGs).
type Role string

const (
	RoleAdopter      Role = "ADOPTER"
	RoleOrganization Role = "ORGANIZATION"
)

// ParseRole normaliza el rol; acepta los alias en portugués (ADOTANTE / ONG).
func ParseRole(s string) Role {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ADOPTER", "ADOTANTE":
		return RoleAdopter
	case "ORGANIZATION", "ONG":
		return RoleOrganization
	default:
		return ""
	}
}

// Claims representa la información extraída del token.
type Claims struct {
	UserID string
	Name   string
	Email  string
	Role   Role
}

func (c Claims) Is(role Role) bool {
	return strings.TrimSpace(c.UserID) != "" && c.Role == role
}
