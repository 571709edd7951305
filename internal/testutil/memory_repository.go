// Package testutil provee un UserRepository en memoria para los tests de
// casos de uso y handlers. Implementa el mismo contrato que el adaptador de
// PostgreSQL: unicidad de username, recorte de límite, orden con fallback a id.
package testutil

import (
	"sort"
	"sync"

	"github.com/tu-usuario/user-directory/internal/domain"
	"github.com/tu-usuario/user-directory/internal/domain/entity"
	"github.com/tu-usuario/user-directory/internal/domain/repository"
)

var _ repository.UserRepository = (*MemoryUserRepo)(nil)

// MemoryUserRepo repositorio de usuarios en memoria, seguro para uso concurrente.
type MemoryUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]*entity.User // key: username
}

// NewMemoryUserRepo construye el repositorio vacío.
func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{nextID: 1, users: make(map[string]*entity.User)}
}

// GetByUsername devuelve una copia del usuario o (nil, nil) si no existe.
func (r *MemoryUserRepo) GetByUsername(username string) (*entity.User, error) {
	if username == "" {
		return nil, domain.ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	return clone(u), nil
}

// GetByToken busca por el token vigente.
func (r *MemoryUserRepo) GetByToken(token string) (*entity.User, error) {
	if token == "" {
		return nil, domain.ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Token != nil && *u.Token == token {
			return clone(u), nil
		}
	}
	return nil, nil
}

// Create inserta respetando la unicidad de username.
func (r *MemoryUserRepo) Create(user *entity.User) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.Username]; ok {
		return 0, domain.ErrUsernameAlreadyExists
	}
	stored := clone(user)
	stored.ID = r.nextID
	r.nextID++
	r.users[stored.Username] = stored
	return stored.ID, nil
}

// UpdateToken reemplaza el token vigente (last-write-wins).
func (r *MemoryUserRepo) UpdateToken(username, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[username]; ok {
		t := token
		u.Token = &t
	}
	return nil
}

// Delete elimina por username; false si no existía.
func (r *MemoryUserRepo) Delete(username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[username]; !ok {
		return false, nil
	}
	delete(r.users, username)
	return true, nil
}

// Update aplica el changeset de forma atómica bajo el mutex.
func (r *MemoryUserRepo) Update(username string, fields repository.UpdateFields) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[username]
	if !ok {
		return false, nil
	}
	if fields.Empty() {
		return true, nil
	}
	if fields.NewUsername != nil && *fields.NewUsername != username {
		if _, exists := r.users[*fields.NewUsername]; exists {
			return false, domain.ErrUsernameAlreadyExists
		}
		delete(r.users, username)
		u.Username = *fields.NewUsername
		r.users[u.Username] = u
	}
	if fields.Email != nil {
		e := *fields.Email
		u.Email = &e
	}
	if fields.Role != nil {
		u.Role = *fields.Role
	}
	if fields.PasswordHash != nil {
		u.PasswordHash = *fields.PasswordHash
	}
	return true, nil
}

// List filtra, ordena y pagina igual que el adaptador de PostgreSQL.
func (r *MemoryUserRepo) List(params repository.ListParams) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var all []*entity.User
	for _, u := range r.users {
		if params.Role != "" && u.Role != params.Role {
			continue
		}
		c := clone(u)
		c.PasswordHash = "" // la columna password no se selecciona en listados
		all = append(all, c)
	}

	sort.Slice(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if params.OrderDesc {
			a, b = b, a
		}
		switch params.OrderBy {
		case "username":
			return a.Username < b.Username
		case "role":
			if a.Role != b.Role {
				return a.Role < b.Role
			}
			return a.ID < b.ID
		default:
			return a.ID < b.ID
		}
	})

	limit := params.Limit
	if limit <= 0 || limit > repository.MaxListLimit {
		limit = repository.MaxListLimit
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func clone(u *entity.User) *entity.User {
	c := *u
	if u.Email != nil {
		e := *u.Email
		c.Email = &e
	}
	if u.Token != nil {
		t := *u.Token
		c.Token = &t
	}
	return &c
}
