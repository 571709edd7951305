package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/user-directory/internal/domain"
	"github.com/tu-usuario/user-directory/internal/domain/policy"
)

func TestAuthorize(t *testing.T) {
	assert.NoError(t, policy.Authorize("admin", "admin", "superadmin"))
	assert.ErrorIs(t, policy.Authorize("user", "admin", "superadmin"), domain.ErrForbidden)
	assert.ErrorIs(t, policy.Authorize("", "admin"), domain.ErrForbidden)
}

func TestCanCreate(t *testing.T) {
	cases := []struct {
		name       string
		actorRole  string
		targetRole string
		wantErr    bool
	}{
		{"superadmin crea superadmin", "superadmin", "superadmin", false},
		{"superadmin crea admin", "superadmin", "admin", false},
		{"superadmin crea user", "superadmin", "user", false},
		{"admin crea user", "admin", "user", false},
		{"admin no crea admin", "admin", "admin", true},
		{"admin no crea superadmin", "admin", "superadmin", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := policy.CanCreate(tc.actorRole, tc.targetRole)
			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrForbidden)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCanDelete(t *testing.T) {
	cases := []struct {
		name        string
		actorRole   string
		currentRole string
		wantErr     bool
	}{
		{"admin borra user", "admin", "user", false},
		{"admin no borra admin", "admin", "admin", true},
		{"admin no borra superadmin", "admin", "superadmin", true},
		{"superadmin borra admin", "superadmin", "admin", false},
		{"superadmin borra superadmin", "superadmin", "superadmin", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := policy.CanDelete(tc.actorRole, tc.currentRole)
			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrForbidden)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// La doble condición de update se conserva tal cual: la primera comprobación
// mira el rol solicitado en la petición, la segunda el rol actual del registro.
func TestCanUpdate_DobleCondicion(t *testing.T) {
	cases := []struct {
		name          string
		actorRole     string
		requestedRole string
		currentRole   string
		wantErr       bool
	}{
		{"admin edita user sin cambiar rol", "admin", "", "user", false},
		{"admin no asigna rol admin", "admin", "admin", "user", true},
		{"admin no asigna rol user", "admin", "user", "user", true},
		{"admin no toca cuenta admin", "admin", "", "admin", true},
		{"admin no toca cuenta superadmin", "admin", "", "superadmin", true},
		{"superadmin asigna cualquier rol", "superadmin", "admin", "user", false},
		{"superadmin toca cuentas admin", "superadmin", "user", "admin", false},
		{"superadmin toca cuentas superadmin", "superadmin", "", "superadmin", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := policy.CanUpdate(tc.actorRole, tc.requestedRole, tc.currentRole)
			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrForbidden)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
