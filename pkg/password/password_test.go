package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/haikalarif/BCR-API-chapter08/pkg/password"
)

// Dos hashes del mismo texto deben diferir (salt distinto por llamada)
// y ambos deben verificar contra el original.
func TestHash_SaltDistintoPorLlamada(t *testing.T) {
	h := password.NewHasher(bcrypt.MinCost)

	hash1, err := h.Hash("12345678")
	require.NoError(t, err)
	hash2, err := h.Hash("12345678")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2, "el salt debe ser distinto en cada llamada")
	assert.True(t, h.Compare("12345678", hash1))
	assert.True(t, h.Compare("12345678", hash2))
	assert.NotEqual(t, "12345678", hash1, "el hash nunca es igual al texto plano")
}

func TestCompare_PasswordIncorrecta_RetornaFalse(t *testing.T) {
	h := password.NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("12345678")
	require.NoError(t, err)

	assert.False(t, h.Compare("1234567", hash), "password distinta no debe verificar")
	assert.False(t, h.Compare("", hash))
	assert.False(t, h.Compare("12345678", "no-es-un-hash"), "hash malformado retorna false, no panic")
}

// Costos fuera del rango de bcrypt caen al costo por defecto.
func TestNewHasher_CostoInvalido_UsaDefault(t *testing.T) {
	h := password.NewHasher(99)

	hash, err := h.Hash("12345678")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
