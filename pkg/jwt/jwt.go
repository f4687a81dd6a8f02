package jwt

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Se añade Role para que el middleware de autorización pueda tomar decisiones sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"user_id"`
	Role   string `json:"role"` // "CUSTOMER" | "ADMIN"
}

// Signer emite y valida tokens firmados con HS256. El secret es configuración
// de proceso: se carga una vez al inicio y es de solo lectura después.
type Signer struct {
	secret     string
	issuer     string
	expMinutes int // <= 0 emite tokens sin expiración
}

// NewSigner construye el emisor/validador de tokens.
func NewSigner(secret, issuer string, expMinutes int) *Signer {
	return &Signer{secret: secret, issuer: issuer, expMinutes: expMinutes}
}

// Issue genera un token JWT firmado con {subject: userID, role}.
func (s *Signer) Issue(userID int64, role string) (string, error) {
	if s.secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   s.issuer,
			Subject:  strconv.FormatInt(userID, 10),
			IssuedAt: jwt.NewNumericDate(now),
		},
		UserID: userID,
		Role:   role,
	}
	if s.expMinutes > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(time.Duration(s.expMinutes) * time.Minute))
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// Verify valida firma e integridad del token y devuelve sus claims.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func (s *Signer) Verify(tokenString string) (*Claims, error) {
	if s.secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
