// Package secrets agrupa el manejo de credenciales: hashing de contraseñas
// con bcrypt y generación de tokens opacos de API.
package secrets

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// tokenAlphabet alfabeto alfanumérico de 62 símbolos para tokens opacos.
const tokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// TokenLength longitud por defecto de los tokens de API.
const TokenLength = 32

// HashPassword hashea la contraseña con bcrypt (costo por defecto, sal incluida).
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword compara la contraseña en plano contra el hash almacenado.
// Un hash malformado cuenta como verificación fallida, nunca como pánico.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateToken genera un token opaco de length símbolos alfanuméricos usando
// crypto/rand con muestreo uniforme (rechazo del sesgo módulo). Con 62^32
// combinaciones la probabilidad de colisión es despreciable; no se verifica
// unicidad contra tokens existentes.
func GenerateToken(length int) (string, error) {
	if length <= 0 {
		length = TokenLength
	}
	out := make([]byte, 0, length)
	buf := make([]byte, length)
	// 248 es el múltiplo de 62 más alto por debajo de 256: los bytes por
	// encima se descartan para mantener la distribución uniforme.
	const max = 248
	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("generate token: %w", err)
		}
		for _, b := range buf {
			if b >= max {
				continue
			}
			out = append(out, tokenAlphabet[int(b)%len(tokenAlphabet)])
			if len(out) == length {
				break
			}
		}
	}
	return string(out), nil
}
