package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/user-directory/internal/application/auth"
	"github.com/tu-usuario/user-directory/internal/domain"
	"github.com/tu-usuario/user-directory/internal/domain/entity"
	"github.com/tu-usuario/user-directory/internal/testutil"
	"github.com/tu-usuario/user-directory/pkg/secrets"
)

// seedUser crea un usuario en el repo en memoria con la password ya hasheada.
func seedUser(t *testing.T, repo *testutil.MemoryUserRepo, username, password, role string) {
	t.Helper()
	hash, err := secrets.HashPassword(password)
	require.NoError(t, err)
	_, err = repo.Create(&entity.User{Username: username, PasswordHash: hash, Role: role})
	require.NoError(t, err)
}

func TestAuthenticate_EmiteTokenQueResuelveAlRol(t *testing.T) {
	repo := testutil.NewMemoryUserRepo()
	seedUser(t, repo, "alice", "pw1", entity.RoleUser)
	uc := auth.NewAuthUseCase(repo)

	token, err := uc.Authenticate("alice", "pw1")
	require.NoError(t, err)
	require.Len(t, token, secrets.TokenLength)

	role, err := uc.ResolveRole(token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, role, "el token emitido debe resolver al rol registrado")
}

func TestAuthenticate_PasswordIncorrecta(t *testing.T) {
	repo := testutil.NewMemoryUserRepo()
	seedUser(t, repo, "alice", "pw1", entity.RoleUser)
	uc := auth.NewAuthUseCase(repo)

	_, err := uc.Authenticate("alice", "pw2")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAuthenticate_UsuarioInexistente(t *testing.T) {
	repo := testutil.NewMemoryUserRepo()
	uc := auth.NewAuthUseCase(repo)

	_, err := uc.Authenticate("nadie", "pw1")
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"usuario inexistente y password incorrecta deben fallar igual")
}

// Un login nuevo reemplaza el token anterior: una sola sesión activa por usuario.
func TestAuthenticate_RotaElTokenAnterior(t *testing.T) {
	repo := testutil.NewMemoryUserRepo()
	seedUser(t, repo, "alice", "pw1", entity.RoleUser)
	uc := auth.NewAuthUseCase(repo)

	first, err := uc.Authenticate("alice", "pw1")
	require.NoError(t, err)
	second, err := uc.Authenticate("alice", "pw1")
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	_, err = uc.ResolveRole(first)
	assert.ErrorIs(t, err, domain.ErrForbidden, "el token anterior debe quedar invalidado")

	role, err := uc.ResolveRole(second)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, role)
}

func TestResolveRole_TokenVacio(t *testing.T) {
	uc := auth.NewAuthUseCase(testutil.NewMemoryUserRepo())

	_, err := uc.ResolveRole("")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestResolveRole_TokenDesconocido(t *testing.T) {
	uc := auth.NewAuthUseCase(testutil.NewMemoryUserRepo())

	_, err := uc.ResolveRole("token-que-no-existe-en-la-base-12")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
