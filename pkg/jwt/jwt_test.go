package jwt_test

import (
	"testing"
	"time"

	"github.com/hugohenrick/notas-fiscais-api/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := jwt.GenerateToken("cliente-teste", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwt.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "cliente-teste", claims.ClientID)
}

func TestGenerateToken_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := jwt.GenerateToken("cliente-teste", time.Hour)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := jwt.GenerateToken("cliente-teste", -time.Minute)
	require.NoError(t, err)

	_, err = jwt.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := jwt.GenerateToken("cliente-teste", time.Hour)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "outro-segredo")

	_, err = jwt.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
