package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identidad son los datos de autoridad que viajan en el token: con ellos el
// middleware arma la Autoridad del actor sin consultar la DB por petición.
type Identidad struct {
	UserID           string
	Rol              string // SOLICITANTE | ALMACEN | ADMIN | JEFA
	SedeID           string
	AutoridadCentral bool
}

// Claims incluye los claims estándar JWT más el perfil de autoridad.
type Claims struct {
	jwt.RegisteredClaims
	UserID           string `json:"user_id"`
	Rol              string `json:"rol"`
	SedeID           string `json:"sede_id"`
	AutoridadCentral bool   `json:"autoridad_central"`
}

// Generate genera un token JWT firmado con el perfil de autoridad del usuario.
func Generate(secret string, id Identidad, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:           id.UserID,
		Rol:              id.Rol,
		SedeID:           id.SedeID,
		AutoridadCentral: id.AutoridadCentral,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve la identidad contenida.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (Identidad, error) {
	if secret == "" {
		return Identidad{}, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Identidad{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Identidad{}, fmt.Errorf("claims inválidos")
	}
	return Identidad{
		UserID:           claims.UserID,
		Rol:              claims.Rol,
		SedeID:           claims.SedeID,
		AutoridadCentral: claims.AutoridadCentral,
	}, nil
}
