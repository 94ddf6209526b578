package authutils

import (
	"testing"

	"github.com/dukeika/interview-portal-sub001/config"
	"github.com/dukeika/interview-portal-sub001/models"

	"github.com/stretchr/testify/require"
)

func initTestConfig() {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.JWTExpireInSec = 60
	config.Conf.Auth.JWTRefreshExpireInSec = 120
}

func TestRefreshToken(t *testing.T) {
	initTestConfig()

	t.Run(`roundtrip check`, func(t *testing.T) {
		token, err := GetRefreshToken("user-1", models.UserRoleCandidate)
		require.Nil(t, err)

		userID, role, err := ParseRefreshToken(token)
		require.Nil(t, err)
		require.Equal(t, "user-1", userID)
		require.Equal(t, models.UserRoleCandidate, role)
	})

	t.Run(`access token is rejected check`, func(t *testing.T) {
		token, err := GetToken("user-1", "Jane Doe", "company-1", models.UserRoleCompanyAdmin)
		require.Nil(t, err)

		_, _, err = ParseRefreshToken(token)
		require.NotNil(t, err)
	})

	t.Run(`tampered token check`, func(t *testing.T) {
		token, err := GetRefreshToken("user-1", models.UserRoleCandidate)
		require.Nil(t, err)

		_, _, err = ParseRefreshToken(token + "x")
		require.NotNil(t, err)
	})
}
