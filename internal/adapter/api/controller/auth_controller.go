package controller

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/notas-fiscais-api/internal/adapter/api/dto"
	"github.com/hugohenrick/notas-fiscais-api/pkg/jwt"
	"github.com/hugohenrick/notas-fiscais-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 24 * time.Hour

// AuthController gerencia a emissão de tokens de acesso à API
type AuthController struct {
	logger logger.Logger
}

// NewAuthController cria uma nova instância de AuthController
func NewAuthController(logger logger.Logger) *AuthController {
	return &AuthController{
		logger: logger,
	}
}

// Token emite um token de acesso para um cliente da API
// @Summary Emitir token de acesso
// @Description Valida as credenciais do cliente e emite um token JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.TokenRequest true "Credenciais do cliente"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/token [post]
func (c *AuthController) Token(ctx *gin.Context) {
	var req dto.TokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	clientID := os.Getenv("API_CLIENT_ID")
	secretHash := os.Getenv("API_CLIENT_SECRET_HASH")
	if clientID == "" || secretHash == "" {
		c.logger.Error("credenciais de cliente da API não configuradas")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "autenticação não configurada", ""))
		return
	}

	if req.ClientID != clientID ||
		bcrypt.CompareHashAndPassword([]byte(secretHash), []byte(req.ClientSecret)) != nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "credenciais inválidas", ""))
		return
	}

	token, err := jwt.GenerateToken(req.ClientID, tokenDuration)
	if err != nil {
		c.logger.Error("erro ao gerar token", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar token", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(tokenDuration.Seconds()),
	})
}
