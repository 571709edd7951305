// Package policy concentra las reglas de autorización entre roles.
// Las reglas son predicados explícitos sobre (rol del actor, rol objetivo,
// rol solicitado); no hay jerarquía numérica ni dispatch polimórfico.
package policy

import (
	"github.com/tu-usuario/user-directory/internal/domain"
	"github.com/tu-usuario/user-directory/internal/domain/entity"
)

// Authorize verifica que role esté dentro de allowed.
func Authorize(role string, allowed ...string) error {
	for _, a := range allowed {
		if role == a {
			return nil
		}
	}
	return domain.ErrForbidden
}

// CanCreate: un admin no puede crear cuentas admin ni superadmin;
// solo superadmin asigna roles elevados al crear.
func CanCreate(actorRole, targetRole string) error {
	if actorRole == entity.RoleAdmin && (targetRole == entity.RoleAdmin || targetRole == entity.RoleSuperadmin) {
		return domain.ErrForbidden
	}
	return nil
}

// CanDelete: un admin no puede borrar cuentas cuyo rol actual sea admin o superadmin.
func CanDelete(actorRole, currentRole string) error {
	if actorRole == entity.RoleAdmin && (currentRole == entity.RoleAdmin || currentRole == entity.RoleSuperadmin) {
		return domain.ErrForbidden
	}
	return nil
}

// CanUpdate aplica la doble condición para modificaciones. requestedRole es ""
// cuando la petición no cambia el rol. Las dos comprobaciones se mantienen por
// separado a propósito: la primera mira el rol solicitado en la petición, la
// segunda el rol actual del registro objetivo.
func CanUpdate(actorRole, requestedRole, currentRole string) error {
	if actorRole == entity.RoleAdmin && (requestedRole == entity.RoleAdmin || requestedRole == entity.RoleUser) {
		return domain.ErrForbidden
	}
	if actorRole == entity.RoleAdmin && (currentRole == entity.RoleAdmin || currentRole == entity.RoleSuperadmin) {
		return domain.ErrForbidden
	}
	return nil
}
