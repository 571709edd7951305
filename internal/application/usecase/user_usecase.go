package usecase

import (
	"github.com/tu-usuario/user-directory/internal/application/dto"
	"github.com/tu-usuario/user-directory/internal/domain"
	"github.com/tu-usuario/user-directory/internal/domain/entity"
	"github.com/tu-usuario/user-directory/internal/domain/policy"
	"github.com/tu-usuario/user-directory/internal/domain/repository"
	"github.com/tu-usuario/user-directory/pkg/secrets"
)

// UserUseCase orquesta el CRUD de usuarios aplicando las políticas de roles.
type UserUseCase struct {
	users repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

// Register crea un usuario nuevo. El rol por defecto es "user"; un actor admin
// no puede asignar roles elevados (solo superadmin).
func (uc *UserUseCase) Register(actorRole string, in dto.RegisterRequest) error {
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	if err := policy.CanCreate(actorRole, role); err != nil {
		return err
	}
	hash, err := secrets.HashPassword(in.Password)
	if err != nil {
		return err
	}
	_, err = uc.users.Create(&entity.User{
		Username:     in.Username,
		PasswordHash: hash,
		Email:        in.Email,
		Role:         role,
	})
	return err
}

// List devuelve usuarios (sin password) con filtro, orden y paginación.
func (uc *UserUseCase) List(q dto.ListUsersQuery) ([]dto.UserResponse, error) {
	q.Defaults()
	users, err := uc.users.List(repository.ListParams{
		Limit:     q.Limit,
		Offset:    q.Offset,
		Role:      q.Role,
		OrderBy:   q.OrderBy,
		OrderDesc: q.OrderDesc,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// Get obtiene un usuario por username. ErrUserNotFound si no existe.
func (uc *UserUseCase) Get(username string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// Remove elimina un usuario. Un actor admin primero lee el rol actual del
// objetivo: no puede borrar cuentas admin ni superadmin.
func (uc *UserUseCase) Remove(actorRole, username string) error {
	if actorRole == entity.RoleAdmin {
		target, err := uc.users.GetByUsername(username)
		if err != nil {
			return err
		}
		if target == nil {
			return domain.ErrUserNotFound
		}
		if err := policy.CanDelete(actorRole, target.Role); err != nil {
			return err
		}
	}
	ok, err := uc.users.Delete(username)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrUserNotFound
	}
	return nil
}

// Edit modifica un usuario aplicando la política de update contra el rol
// solicitado y el rol actual del objetivo, hashea la password si viene, y
// devuelve el estado final releyendo por el username resultante.
func (uc *UserUseCase) Edit(actorRole string, in dto.UpdateUserRequest) (*dto.UpdateUserResponse, error) {
	target, err := uc.users.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, domain.ErrUserNotFound
	}

	requestedRole := ""
	if in.Role != nil {
		requestedRole = *in.Role
	}
	if err := policy.CanUpdate(actorRole, requestedRole, target.Role); err != nil {
		return nil, err
	}

	fields := repository.UpdateFields{
		NewUsername: in.NewUsername,
		Email:       in.Email,
		Role:        in.Role,
	}
	if in.Password != nil {
		hash, err := secrets.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		fields.PasswordHash = &hash
	}

	ok, err := uc.users.Update(in.Username, fields)
	if err != nil {
		return nil, err
	}
	if !ok {
		// borrado entre la lectura y la mutación
		return nil, domain.ErrUserNotFound
	}

	finalUsername := in.Username
	if in.NewUsername != nil {
		finalUsername = *in.NewUsername
	}
	updated, err := uc.users.GetByUsername(finalUsername)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrInternal
	}
	return &dto.UpdateUserResponse{
		Msg:         "User successfully updated!",
		Username:    in.Username,
		NewUsername: updated.Username,
		Email:       updated.Email,
		Role:        updated.Role,
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}
