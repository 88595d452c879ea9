package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/notas-fiscais-api/internal/adapter/api/controller"
	"github.com/hugohenrick/notas-fiscais-api/pkg/middleware"
)

// RegisterInvoiceRoutes registra as rotas do módulo de notas fiscais
func RegisterInvoiceRoutes(r *gin.RouterGroup, invoiceController *controller.InvoiceController) {
	invoices := r.Group("/notas-fiscais")
	invoices.Use(middleware.AuthMiddleware())
	{
		invoices.GET("", invoiceController.List)
		invoices.POST("", invoiceController.Create)
		invoices.GET("/periodo", invoiceController.ListByPeriod)
		invoices.GET("/total/:tipo", invoiceController.GetPeriodTotal)
		invoices.GET("/chave/:chave", invoiceController.GetByAccessKey)
		invoices.GET("/:id", invoiceController.Get)
		invoices.PUT("/:id", invoiceController.Update)
		invoices.DELETE("/:id", invoiceController.Delete)
		invoices.POST("/:id/autorizar", invoiceController.Authorize)
		invoices.POST("/:id/cancelar", invoiceController.Cancel)
	}
}
