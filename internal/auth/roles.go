package auth

import "fmt"

// Role es el nivel de autorización de un usuario. Cerrado a propósito:
// cualquier literal desconocido se rechaza en el borde.
type Role string

const (
	RoleAdministrador Role = "Administrador"
	RoleRecepcionista Role = "Recepcionista"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdministrador:
		return RoleAdministrador, nil
	case RoleRecepcionista:
		return RoleRecepcionista, nil
	default:
		return "", fmt.Errorf("rol desconocido: %q", s)
	}
}

func (r Role) String() string {
	return string(r)
}
