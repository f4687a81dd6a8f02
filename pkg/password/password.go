package password

import "golang.org/x/crypto/bcrypt"

// Hasher hashea y verifica contraseñas con bcrypt. El costo es configurable
// para ajustar la resistencia a fuerza bruta; bcrypt genera un salt distinto
// en cada llamada, por lo que dos hashes del mismo texto nunca coinciden.
type Hasher struct {
	cost int
}

// NewHasher construye el hasher. Costos fuera de rango caen al costo por defecto de bcrypt.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash produce el hash salado de la contraseña en texto plano.
func (h *Hasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Compare devuelve true si plain reproduce el hash almacenado.
// Nunca retorna error por mismatch: solo false.
func (h *Hasher) Compare(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
