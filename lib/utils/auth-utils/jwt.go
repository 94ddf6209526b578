package authutils

import (
	"time"

	"github.com/dukeika/interview-portal-sub001/config"
	"github.com/dukeika/interview-portal-sub001/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

func GetToken(userID, name, companyID string, role models.UserRole) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"name":    name,
		"sub":     userID,
		"company": companyID,
		"role":    string(role),
		"exp":     time.Now().Add(time.Second * time.Duration(config.Conf.Auth.JWTExpireInSec)).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.Auth.JWTSecret))
}

func GetRefreshToken(userID string, role models.UserRole) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"sub":     userID,
		"role":    string(role),
		"refresh": true,
		"exp":     time.Now().Add(time.Second * time.Duration(config.Conf.Auth.JWTRefreshExpireInSec)).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.Auth.JWTSecret))
}

// ParseRefreshToken validates a refresh token and returns its subject and role.
func ParseRefreshToken(tokenString string) (userID string, role models.UserRole, err error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.Conf.Auth.JWTSecret), nil
	})
	if err != nil {
		return "", "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", errors.New("invalid refresh token")
	}
	if isRefresh, _ := claims["refresh"].(bool); !isRefresh {
		return "", "", errors.New("not a refresh token")
	}
	sub, _ := claims["sub"].(string)
	roleStr, _ := claims["role"].(string)
	if sub == "" {
		return "", "", errors.New("refresh token has no subject")
	}
	return sub, models.UserRole(roleStr), nil
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	return token.Claims.(jwt.MapClaims)
}
