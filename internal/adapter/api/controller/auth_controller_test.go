package controller_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/notas-fiscais-api/internal/adapter/api/controller"
	"github.com/hugohenrick/notas-fiscais-api/internal/adapter/api/dto"
	"github.com/hugohenrick/notas-fiscais-api/internal/adapter/api/route"
	"github.com/hugohenrick/notas-fiscais-api/pkg/jwt"
	"github.com/hugohenrick/notas-fiscais-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "segredo-de-teste")
	t.Setenv("API_CLIENT_ID", "cliente-teste")

	hash, err := bcrypt.GenerateFromPassword([]byte("senha-teste"), bcrypt.MinCost)
	require.NoError(t, err)
	t.Setenv("API_CLIENT_SECRET_HASH", string(hash))

	gin.SetMode(gin.TestMode)

	router := gin.New()
	api := router.Group("/api/v1")
	route.RegisterAuthRoutes(api, controller.NewAuthController(logger.NewLogger()))
	return router
}

func TestAuthRoutes_Token(t *testing.T) {
	router := setupAuthRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/auth/token", "",
		dto.TokenRequest{ClientID: "cliente-teste", ClientSecret: "senha-teste"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.NotEmpty(t, resp.AccessToken)

	// O token emitido precisa passar na mesma validação usada pelo middleware
	claims, err := jwt.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "cliente-teste", claims.ClientID)
}

func TestAuthRoutes_Token_InvalidCredentials(t *testing.T) {
	router := setupAuthRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/auth/token", "",
		dto.TokenRequest{ClientID: "cliente-teste", ClientSecret: "senha-errada"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(router, http.MethodPost, "/api/v1/auth/token", "",
		dto.TokenRequest{ClientID: "outro-cliente", ClientSecret: "senha-teste"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRoutes_Token_MissingFields(t *testing.T) {
	router := setupAuthRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/auth/token", "",
		dto.TokenRequest{ClientID: "cliente-teste"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
