package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Leeway tolerancia de reloj: los PDA de planta sincronizan la hora de forma irregular.
const Leeway = 30 * time.Second

var (
	ErrEmptySecret     = errors.New("jwt: secret vacío")
	ErrMissingIdentity = errors.New("jwt: token sin user_id o saupj")
)

// Identity operador autenticado en el PDA. Saupj (planta) viaja en el token
// para que los lotes no dependan de la planta que declare el body.
type Identity struct {
	UserID string
	Saupj  string
	Role   string // "admin" | "manager" | "operator"; vacío si el usuario no tiene rol
}

// Claims claims registrados más la identidad. Subject repite UserID.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Saupj  string `json:"saupj"`
	Role   string `json:"role,omitempty"`
}

// Generate firma (HS256) un token para la identidad con vigencia de expMinutes.
func Generate(secret string, id Identity, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	if id.UserID == "" || id.Saupj == "" {
		return "", ErrMissingIdentity
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID: id.UserID,
		Saupj:  id.Saupj,
		Role:   id.Role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Parse valida firma, vencimiento y emisor (si issuer no es vacío) y devuelve la identidad.
// Un token válido sin user_id o saupj se rechaza: sin planta no hay a qué almacén imputar.
func Parse(secret, issuer, tokenString string) (Identity, error) {
	if secret == "" {
		return Identity{}, ErrEmptySecret
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(Leeway),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, opts...)
	if err != nil {
		return Identity{}, fmt.Errorf("jwt: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Identity{}, fmt.Errorf("jwt: claims inválidos")
	}
	if claims.UserID == "" || claims.Saupj == "" {
		return Identity{}, ErrMissingIdentity
	}
	return Identity{UserID: claims.UserID, Saupj: claims.Saupj, Role: claims.Role}, nil
}
