package repository

import "github.com/tu-usuario/user-directory/internal/domain/entity"

// MaxListLimit tope duro de registros por página en List.
const MaxListLimit = 100

// ListParams filtros, orden y paginación para List.
type ListParams struct {
	Limit     int    // se recorta a MaxListLimit
	Offset    int
	Role      string // vacío = sin filtro
	OrderBy   string // id, username o role; cualquier otro valor cae a id
	OrderDesc bool
}

// UpdateFields changeset parcial para Update; nil = campo sin tocar.
// PasswordHash llega ya hasheado: el repositorio nunca ve contraseñas en plano.
type UpdateFields struct {
	NewUsername  *string
	Email        *string
	Role         *string
	PasswordHash *string
}

// Empty indica si el changeset no toca ningún campo.
func (f UpdateFields) Empty() bool {
	return f.NewUsername == nil && f.Email == nil && f.Role == nil && f.PasswordHash == nil
}

// UserRepository define el puerto de persistencia para User (DIP).
// Las búsquedas devuelven (nil, nil) si el registro no existe; un argumento
// vacío es error del llamador y se señala con domain.ErrInvalidInput.
type UserRepository interface {
	GetByUsername(username string) (*entity.User, error)
	GetByToken(token string) (*entity.User, error)
	// Create persiste un usuario nuevo y devuelve el ID asignado.
	// Devuelve domain.ErrUsernameAlreadyExists si el username ya existe.
	Create(user *entity.User) (int64, error)
	// UpdateToken reemplaza el token vigente del usuario (last-write-wins).
	UpdateToken(username, token string) error
	// Delete elimina por username; false si no existía.
	Delete(username string) (bool, error)
	// Update aplica el changeset en una única transacción lógica: false si el
	// usuario no existe, domain.ErrUsernameAlreadyExists (con rollback) si
	// NewUsername colisiona, éxito sin mutación si el changeset está vacío.
	Update(username string, fields UpdateFields) (bool, error)
	// List devuelve usuarios según params; los registros salen sin hash de
	// password (la columna no se selecciona).
	List(params ListParams) ([]*entity.User, error)
}
