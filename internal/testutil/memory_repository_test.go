package testutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/user-directory/internal/domain"
	"github.com/tu-usuario/user-directory/internal/domain/entity"
	"github.com/tu-usuario/user-directory/internal/testutil"
)

// Contrato del puerto: un argumento vacío en las búsquedas es error del
// llamador (ErrInvalidInput), señalado de forma distinta a "no encontrado"
// (que devuelve nil, nil sin error).
func TestGetByUsername_ArgumentoVacio(t *testing.T) {
	repo := testutil.NewMemoryUserRepo()

	u, err := repo.GetByUsername("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.NotErrorIs(t, err, domain.ErrUserNotFound)
	assert.Nil(t, u)
}

func TestGetByToken_ArgumentoVacio(t *testing.T) {
	repo := testutil.NewMemoryUserRepo()

	u, err := repo.GetByToken("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.NotErrorIs(t, err, domain.ErrUserNotFound)
	assert.Nil(t, u)
}

func TestGet_NoEncontradoNoEsError(t *testing.T) {
	repo := testutil.NewMemoryUserRepo()
	_, err := repo.Create(&entity.User{Username: "alice", PasswordHash: "hash", Role: entity.RoleUser})
	require.NoError(t, err)

	// username válido pero inexistente: nil sin error, nunca ErrInvalidInput
	u, err := repo.GetByUsername("nadie")
	require.NoError(t, err)
	assert.Nil(t, u)

	u, err = repo.GetByToken("token-valido-pero-desconocido-12")
	require.NoError(t, err)
	assert.Nil(t, u)
}
