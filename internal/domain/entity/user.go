package entity

// Roles válidos para User. Jerarquía para políticas: user < admin < superadmin.
const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

// ValidRole indica si s pertenece al conjunto cerrado de roles.
func ValidRole(s string) bool {
	return s == RoleUser || s == RoleAdmin || s == RoleSuperadmin
}

// User representa una cuenta del directorio de usuarios.
type User struct {
	ID           int64
	Username     string  // único en todo el directorio
	PasswordHash string  // bcrypt hash, nunca plano en dominio después de persistir
	Email        *string // opcional
	Role         string  // user, admin, superadmin
	Token        *string // token opaco vigente; se reemplaza en cada autenticación
}
