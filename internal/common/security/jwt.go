package security

import (
	"errors"
	"time"

	"quiz_admin_console/internal/platform/config"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
)

var TokenAuth *jwtauth.JWTAuth

func InitJWT() {
	TokenAuth = jwtauth.New("HS256", config.AppConfig.JWTKey, nil)
}

// GenerateSessionToken signs the cookie payload that references a server-side
// session. The upstream bearer token itself never enters the cookie.
func GenerateSessionToken(sessionID, userID, role string) (string, error) {
	claims := jwt.MapClaims{
		"sid":     sessionID,
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(config.AppConfig.SessionTTL).Unix(),
		"iat":     time.Now().Unix(),
	}
	_, tokenString, err := TokenAuth.Encode(claims)
	return tokenString, err
}

func GetSessionIDFromClaims(claims jwt.MapClaims) (string, error) {
	sid, ok := claims["sid"].(string)
	if !ok {
		return "", errors.New("sid claim is missing or not a string")
	}
	return sid, nil
}

func GetUserRoleFromClaims(claims jwt.MapClaims) (string, error) {
	role, ok := claims["role"].(string)
	if !ok {
		return "", errors.New("role claim is missing or not a string")
	}
	return role, nil
}
