package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Cost factor de bcrypt usado para todas las cuentas.
const Cost = 10

// Hash devuelve el hash bcrypt del password en texto plano.
func Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Compare indica si plain corresponde al hash almacenado. Un hash corrupto cuenta como no coincidente.
func Compare(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
