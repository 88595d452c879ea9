package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/notas-fiscais-api/internal/adapter/api/dto"
	invoicedomain "github.com/hugohenrick/notas-fiscais-api/internal/domain/invoice"
	"github.com/hugohenrick/notas-fiscais-api/pkg/logger"
)

// InvoiceController gerencia as requisições relacionadas a notas fiscais
type InvoiceController struct {
	service *invoicedomain.Service
	logger  logger.Logger
}

// NewInvoiceController cria uma nova instância de InvoiceController
func NewInvoiceController(service *invoicedomain.Service, logger logger.Logger) *InvoiceController {
	return &InvoiceController{
		service: service,
		logger:  logger,
	}
}

// List retorna todas as notas fiscais
// @Summary Listar notas fiscais
// @Description Retorna todas as notas fiscais, da emissão mais recente para a mais antiga
// @Tags invoices
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.InvoiceResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notas-fiscais [get]
func (c *InvoiceController) List(ctx *gin.Context) {
	invoices, err := c.service.GetAll(ctx)
	if err != nil {
		c.logger.Error("erro ao listar notas fiscais", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar notas fiscais", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceListResponse(invoices))
}

// Get retorna uma nota fiscal pelo ID
// @Summary Buscar nota fiscal
// @Description Retorna os dados de uma nota fiscal pelo ID, com seus itens
// @Tags invoices
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da nota fiscal"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notas-fiscais/{id} [get]
func (c *InvoiceController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	n, err := c.service.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, invoicedomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "nota fiscal não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar nota fiscal", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar nota fiscal", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceResponse(n))
}

// GetByAccessKey retorna uma nota fiscal pela chave de acesso
// @Summary Buscar nota fiscal por chave de acesso
// @Description Retorna os dados de uma nota fiscal pela chave de acesso de 44 caracteres
// @Tags invoices
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param chave path string true "Chave de acesso"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notas-fiscais/chave/{chave} [get]
func (c *InvoiceController) GetByAccessKey(ctx *gin.Context) {
	accessKey := ctx.Param("chave")

	n, err := c.service.GetByAccessKey(ctx, accessKey)
	if err != nil {
		if errors.Is(err, invoicedomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "nota fiscal não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar nota fiscal por chave", "access_key", accessKey, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar nota fiscal", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceResponse(n))
}

// ListByPeriod retorna as notas fiscais emitidas em um período
// @Summary Listar notas fiscais por período
// @Description Retorna as notas com data de emissão dentro do período informado, limites inclusivos
// @Tags invoices
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param inicio query string true "Início do período (RFC3339 ou AAAA-MM-DD)"
// @Param fim query string true "Fim do período (RFC3339 ou AAAA-MM-DD)"
// @Success 200 {array} dto.InvoiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notas-fiscais/periodo [get]
func (c *InvoiceController) ListByPeriod(ctx *gin.Context) {
	start, end, err := parsePeriod(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "período inválido", err.Error()))
		return
	}

	invoices, err := c.service.ListByPeriod(ctx, start, end)
	if err != nil {
		c.logger.Error("erro ao listar notas por período", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar notas por período", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceListResponse(invoices))
}

// GetPeriodTotal retorna o valor total autorizado de um período
// @Summary Total autorizado do período
// @Description Soma o valor total das notas autorizadas do tipo de operação informado emitidas no período
// @Tags invoices
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param tipo path string true "Tipo de operação (inbound ou outbound)"
// @Param inicio query string true "Início do período (RFC3339 ou AAAA-MM-DD)"
// @Param fim query string true "Fim do período (RFC3339 ou AAAA-MM-DD)"
// @Success 200 {object} dto.PeriodTotalResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notas-fiscais/total/{tipo} [get]
func (c *InvoiceController) GetPeriodTotal(ctx *gin.Context) {
	operationType, err := invoicedomain.ParseOperationType(ctx.Param("tipo"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "tipo de operação inválido", err.Error()))
		return
	}

	start, end, err := parsePeriod(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "período inválido", err.Error()))
		return
	}

	total, err := c.service.TotalByPeriod(ctx, start, end, operationType)
	if err != nil {
		c.logger.Error("erro ao calcular total do período", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao calcular total do período", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.PeriodTotalResponse{
		Start:         start,
		End:           end,
		OperationType: operationType,
		Total:         total,
	})
}

// Create registra uma nova nota fiscal
// @Summary Criar nota fiscal
// @Description Registra uma nova nota fiscal com seus itens, com status pendente
// @Tags invoices
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param invoice body dto.InvoiceRequest true "Dados da nota fiscal"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notas-fiscais [post]
func (c *InvoiceController) Create(ctx *gin.Context) {
	var req dto.InvoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	n, err := dto.ToInvoice(&req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar nota fiscal", err.Error()))
		return
	}

	created, err := c.service.Create(ctx, n)
	if err != nil {
		if errors.Is(err, invoicedomain.ErrDuplicateAccessKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "nota fiscal com esta chave de acesso já existe", ""))
			return
		}
		c.logger.Error("erro ao salvar nota fiscal", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar nota fiscal", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToInvoiceResponse(created))
}

// Update atualiza uma nota fiscal existente
// @Summary Atualizar nota fiscal
// @Description Sobrescreve os campos editáveis da nota e substitui todos os seus itens
// @Tags invoices
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da nota fiscal"
// @Param invoice body dto.InvoiceRequest true "Dados da nota fiscal"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notas-fiscais/{id} [put]
func (c *InvoiceController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.InvoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	n, err := dto.ToInvoice(&req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar nota fiscal", err.Error()))
		return
	}
	n.ID = id

	updated, err := c.service.Update(ctx, n)
	if err != nil {
		if errors.Is(err, invoicedomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "nota fiscal não encontrada", ""))
			return
		}
		c.logger.Error("erro ao atualizar nota fiscal", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar nota fiscal", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceResponse(updated))
}

// Delete remove uma nota fiscal
// @Summary Excluir nota fiscal
// @Description Remove a nota fiscal e todos os seus itens
// @Tags invoices
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da nota fiscal"
// @Success 204 "Nota removida"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notas-fiscais/{id} [delete]
func (c *InvoiceController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	deleted, err := c.service.Delete(ctx, id)
	if err != nil {
		c.logger.Error("erro ao excluir nota fiscal", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao excluir nota fiscal", err.Error()))
		return
	}
	if !deleted {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "nota fiscal não encontrada", ""))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Authorize autoriza uma nota fiscal
// @Summary Autorizar nota fiscal
// @Description Marca a nota como autorizada, registrando o protocolo da SEFAZ
// @Tags invoices
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da nota fiscal"
// @Param authorization body dto.AuthorizationRequest true "Protocolo de autorização"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notas-fiscais/{id}/autorizar [post]
func (c *InvoiceController) Authorize(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.AuthorizationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	authorized, err := c.service.Authorize(ctx, id, req.Protocol)
	if err != nil {
		c.logger.Error("erro ao autorizar nota fiscal", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao autorizar nota fiscal", err.Error()))
		return
	}
	if !authorized {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "nota fiscal não encontrada", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("nota fiscal autorizada com sucesso", nil))
}

// Cancel cancela uma nota fiscal
// @Summary Cancelar nota fiscal
// @Description Marca a nota como cancelada, registrando o motivo
// @Tags invoices
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da nota fiscal"
// @Param cancellation body dto.CancellationRequest true "Motivo do cancelamento"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notas-fiscais/{id}/cancelar [post]
func (c *InvoiceController) Cancel(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.CancellationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	cancelled, err := c.service.Cancel(ctx, id, req.Reason)
	if err != nil {
		c.logger.Error("erro ao cancelar nota fiscal", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao cancelar nota fiscal", err.Error()))
		return
	}
	if !cancelled {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "nota fiscal não encontrada", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("nota fiscal cancelada com sucesso", nil))
}

// parsePeriod lê os parâmetros inicio e fim da query string.
// Aceita RFC3339 ou apenas a data (AAAA-MM-DD).
func parsePeriod(ctx *gin.Context) (time.Time, time.Time, error) {
	start, err := parseDate(ctx.Query("inicio"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	end, err := parseDate(ctx.Query("fim"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	return start, end, nil
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
