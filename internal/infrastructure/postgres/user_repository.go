package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/user-directory/internal/domain"
	"github.com/tu-usuario/user-directory/internal/domain/entity"
	"github.com/tu-usuario/user-directory/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// GetByUsername obtiene un usuario por username (sensible a mayúsculas).
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	if username == "" {
		return nil, fmt.Errorf("get user: username vacío: %w", domain.ErrInvalidInput)
	}
	return r.findOne(context.Background(), `username = $1`, username)
}

// GetByToken obtiene un usuario por su token de API vigente.
func (r *UserRepo) GetByToken(token string) (*entity.User, error) {
	if token == "" {
		return nil, fmt.Errorf("get user: token vacío: %w", domain.ErrInvalidInput)
	}
	return r.findOne(context.Background(), `token = $1`, token)
}

func (r *UserRepo) findOne(ctx context.Context, where string, arg any) (*entity.User, error) {
	query := `
		SELECT id, username, password, email, role, token
		FROM users WHERE ` + where
	var u entity.User
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.Role, &u.Token,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// Create persiste un nuevo usuario y devuelve el ID generado.
func (r *UserRepo) Create(user *entity.User) (int64, error) {
	query := `
		INSERT INTO users (username, password, email, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	var id int64
	err := r.pool.QueryRow(context.Background(), query,
		user.Username, user.PasswordHash, user.Email, user.Role,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrUsernameAlreadyExists
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return id, nil
}

// UpdateToken reemplaza el token vigente del usuario (el anterior queda invalidado).
func (r *UserRepo) UpdateToken(username, token string) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE users SET token = $2 WHERE username = $1`, username, token)
	if err != nil {
		return fmt.Errorf("update token: %w", err)
	}
	return nil
}

// Delete elimina un usuario por username. Devuelve false si no existía.
func (r *UserRepo) Delete(username string) (bool, error) {
	tag, err := r.pool.Exec(context.Background(),
		`DELETE FROM users WHERE username = $1`, username)
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Update aplica el changeset dentro de una transacción: la existencia se
// revalida en la misma tx que la mutación para evitar la carrera con un
// delete concurrente. Colisión de NewUsername => rollback y
// domain.ErrUsernameAlreadyExists.
func (r *UserRepo) Update(username string, fields repository.UpdateFields) (bool, error) {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id int64
	err = tx.QueryRow(ctx, `SELECT id FROM users WHERE username = $1 FOR UPDATE`, username).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("select user for update: %w", err)
	}

	set, args := buildUpdateSet(fields)
	if len(set) > 0 {
		args = append([]any{id}, args...)
		query := `UPDATE users SET ` + strings.Join(set, ", ") + ` WHERE id = $1`
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			if isUniqueViolation(err) {
				return false, domain.ErrUsernameAlreadyExists
			}
			return false, fmt.Errorf("update user: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit transaction: %w", err)
	}
	return true, nil
}

// buildUpdateSet arma las cláusulas SET a partir de los campos presentes.
// Los placeholders empiezan en $2 porque $1 es el id en el WHERE.
func buildUpdateSet(fields repository.UpdateFields) ([]string, []any) {
	var set []string
	var args []any
	add := func(col string, val any) {
		args = append(args, val)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)+1))
	}
	if fields.NewUsername != nil {
		add("username", *fields.NewUsername)
	}
	if fields.Email != nil {
		add("email", *fields.Email)
	}
	if fields.Role != nil {
		add("role", *fields.Role)
	}
	if fields.PasswordHash != nil {
		add("password", *fields.PasswordHash)
	}
	return set, args
}

// List devuelve usuarios con filtro por rol, orden y paginación.
// El hash de password no se selecciona.
func (r *UserRepo) List(params repository.ListParams) ([]*entity.User, error) {
	limit := clampLimit(params.Limit)
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	var sb strings.Builder
	sb.WriteString(`SELECT id, username, email, role FROM users`)
	var args []any
	if params.Role != "" {
		args = append(args, params.Role)
		sb.WriteString(` WHERE role = $1`)
	}
	sb.WriteString(` ORDER BY ` + orderColumn(params.OrderBy))
	if params.OrderDesc {
		sb.WriteString(` DESC`)
	}
	args = append(args, limit, offset)
	sb.WriteString(fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)-1, len(args)))

	rows, err := r.pool.Query(context.Background(), sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Role); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// clampLimit recorta el límite al tope del repositorio; cero o negativo usa el tope.
func clampLimit(limit int) int {
	if limit <= 0 || limit > repository.MaxListLimit {
		return repository.MaxListLimit
	}
	return limit
}

// orderColumn valida la columna de orden contra una lista blanca; cualquier
// valor desconocido cae a id (nunca se interpola entrada del usuario en el SQL).
func orderColumn(orderBy string) string {
	switch orderBy {
	case "username":
		return "username"
	case "role":
		return "role"
	default:
		return "id"
	}
}
