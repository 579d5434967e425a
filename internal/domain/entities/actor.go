package entities

import "errors"

var ErrUnknownRole = errors.New("unknown role")

// Role is the actor classification attached to every orchestrated operation
// by the authentication collaborator.
//
// Kept as an exhaustive enum so that role-gated branches are written as
// switches over Role values instead of free-text comparisons.

type Role string

const (
	RoleUsuario    Role = "Usuário"
	RoleCliente    Role = "Cliente"
	RoleTecnico    Role = "Técnico"
	RoleSecretario Role = "Secretário"
	RoleGestor     Role = "Gestor"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUsuario, RoleCliente, RoleTecnico, RoleSecretario, RoleGestor:
		return Role(s), nil
	}
	return "", ErrUnknownRole
}

// IsStaff reports whether the role belongs to the service company (GTA) side.
func (r Role) IsStaff() bool {
	switch r {
	case RoleTecnico, RoleSecretario, RoleGestor:
		return true
	case RoleUsuario, RoleCliente:
		return false
	}
	return false
}

// Actor is the authenticated identity performing an operation.
type Actor struct {
	UserID string
	Level  Role
}
