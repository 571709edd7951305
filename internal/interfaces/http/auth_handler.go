package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/user-directory/internal/application/auth"
	"github.com/tu-usuario/user-directory/internal/application/dto"
	"github.com/tu-usuario/user-directory/internal/domain"
)

// AuthHandler maneja la autenticación por username + password.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Authenticate godoc
// @Summary      Autenticar usuario
// @Description  Emite un x-api-token nuevo (invalida el anterior) a cambio de username + password.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AuthRequest  true  "username, password"
// @Success      200   {object}  dto.AuthResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth [post]
func (h *AuthHandler) Authenticate(c *fiber.Ctx) error {
	var in dto.AuthRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username y password son requeridos"})
	}
	token, err := h.uc.Authenticate(in.Username, in.Password)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el usuario no existe o la password es incorrecta"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error de base de datos"})
	}
	return c.JSON(dto.AuthResponse{XAPIToken: token})
}
