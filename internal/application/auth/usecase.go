package auth

import (
	"github.com/tu-usuario/user-directory/internal/domain"
	"github.com/tu-usuario/user-directory/internal/domain/repository"
	"github.com/tu-usuario/user-directory/pkg/secrets"
)

// AuthUseCase casos de uso de autenticación: emisión de tokens y resolución de rol.
type AuthUseCase struct {
	users repository.UserRepository
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository) *AuthUseCase {
	return &AuthUseCase{users: users}
}

// Authenticate verifica username/password y emite un token opaco nuevo que
// reemplaza al anterior (una sola sesión activa por usuario; si dos logins
// compiten gana la última escritura). Usuario inexistente y password
// incorrecta devuelven el mismo ErrForbidden para no filtrar cuál falló.
func (uc *AuthUseCase) Authenticate(username, password string) (string, error) {
	user, err := uc.users.GetByUsername(username)
	if err != nil {
		return "", err
	}
	if user == nil || !secrets.VerifyPassword(password, user.PasswordHash) {
		return "", domain.ErrForbidden
	}
	token, err := secrets.GenerateToken(secrets.TokenLength)
	if err != nil {
		return "", err
	}
	if err := uc.users.UpdateToken(user.Username, token); err != nil {
		return "", err
	}
	return token, nil
}

// ResolveRole resuelve un token presentado al rol de su usuario.
// Token vacío => ErrUnauthenticated; token que no resuelve => ErrForbidden.
func (uc *AuthUseCase) ResolveRole(token string) (string, error) {
	if token == "" {
		return "", domain.ErrUnauthenticated
	}
	user, err := uc.users.GetByToken(token)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrForbidden
	}
	return user.Role, nil
}
