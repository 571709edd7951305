package dto

// AuthRequest entrada para autenticación por username + password.
type AuthRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse salida de autenticación: token opaco de API.
type AuthResponse struct {
	XAPIToken string `json:"x_api_token"`
}

// RegisterRequest entrada para crear un usuario (password en texto, se hashea en use case).
type RegisterRequest struct {
	Username string  `json:"username" validate:"required"`
	Password string  `json:"password" validate:"required"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Role     string  `json:"role" validate:"omitempty,oneof=user admin superadmin"`
}

// UpdateUserRequest entrada para modificar un usuario; nil = campo sin tocar.
type UpdateUserRequest struct {
	Username    string  `json:"username" validate:"required"`
	NewUsername *string `json:"new_username"`
	Password    *string `json:"password"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Role        *string `json:"role" validate:"omitempty,oneof=user admin superadmin"`
}

// UserResponse salida de un usuario (sin password ni token).
type UserResponse struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Email    *string `json:"email"`
	Role     string  `json:"role"`
}

// UpdateUserResponse salida de edit_user: confirmación más el estado final.
// Username es el previo; NewUsername el final (igual al previo si no hubo rename).
type UpdateUserResponse struct {
	Msg         string  `json:"msg"`
	Username    string  `json:"username"`
	NewUsername string  `json:"new_username"`
	Email       *string `json:"email"`
	Role        string  `json:"role"`
}

// ListUsersQuery parámetros de query para get_list.
type ListUsersQuery struct {
	Limit     int    `query:"limit"`
	Offset    int    `query:"offset"`
	Role      string `query:"role"`
	OrderBy   string `query:"order_by"`
	OrderDesc bool   `query:"order_desc"`
}

// Defaults aplica los valores por defecto del listado.
func (q *ListUsersQuery) Defaults() {
	if q.Limit <= 0 {
		q.Limit = 100
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	if q.OrderBy == "" {
		q.OrderBy = "id"
	}
}
