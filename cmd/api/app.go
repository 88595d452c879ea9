package main

import (
	"context"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/hugohenrick/notas-fiscais-api/docs"
	"github.com/hugohenrick/notas-fiscais-api/internal/adapter/api/controller"
	"github.com/hugohenrick/notas-fiscais-api/internal/adapter/api/route"
	"github.com/hugohenrick/notas-fiscais-api/internal/adapter/repository"
	"github.com/hugohenrick/notas-fiscais-api/internal/domain/invoice"
	"github.com/hugohenrick/notas-fiscais-api/internal/infrastructure/database"
	"github.com/hugohenrick/notas-fiscais-api/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App representa a aplicação e suas dependências
type App struct {
	router            *gin.Engine
	db                *pgxpool.Pool
	logger            logger.Logger
	invoiceService    *invoice.Service
	invoiceController *controller.InvoiceController
	authController    *controller.AuthController
}

// NewApp cria uma nova instância do aplicativo
func NewApp() (*App, error) {
	log := logger.NewLogger()

	// Configurar banco de dados
	config := database.NewPostgresConfigFromEnv()
	db, err := database.NewPostgresPool(context.Background(), config)
	if err != nil {
		return nil, err
	}

	// Criar repositório e serviço
	invoiceRepo := repository.NewInvoiceRepository(db)
	invoiceService := invoice.NewService(invoiceRepo, log)

	// Criar controllers
	invoiceController := controller.NewInvoiceController(invoiceService, log)
	authController := controller.NewAuthController(log)

	// Configurar router
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	app := &App{
		router:            router,
		db:                db,
		logger:            log,
		invoiceService:    invoiceService,
		invoiceController: invoiceController,
		authController:    authController,
	}

	app.setupRoutes("/api/v1")

	return app, nil
}

// setupRoutes configura as rotas da aplicação
func (a *App) setupRoutes(basePath string) {
	api := a.router.Group(basePath)

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	route.RegisterAuthRoutes(api, a.authController)
	route.RegisterInvoiceRoutes(api, a.invoiceController)

	// Documentação Swagger
	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	a.logger.Info("servidor iniciado", "port", port)
	return a.router.Run(":" + port)
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
