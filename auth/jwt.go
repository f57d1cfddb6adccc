package auth

import (
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

// JWTManager 는 HS256 단일 시크릿 문자열로 서명된 JWT 를 검증한다.
// 토큰 발급은 별도의 계정 서비스 책임이며, 여기서는 rate limit 키 식별을
// 위한 검증(parse)만 수행한다.
type JWTManager struct {
	secret []byte
}

// NewJWTManagerFromEnv 는 환경변수에서 시크릿을 읽어 JWTManager 를 생성한다.
//
// - JWT_SECRET: HS256 서명 검증에 사용할 시크릿 문자열(필수)
func NewJWTManagerFromEnv() (*JWTManager, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return &JWTManager{secret: []byte(secret)}, nil
}

// Parse 는 토큰을 검증하고 sub 클레임(사용자 식별자)을 반환한다.
func (m *JWTManager) Parse(tokenString string) (string, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return "", fmt.Errorf("invalid token claims")
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", fmt.Errorf("token missing sub claim")
	}

	return sub, nil
}
