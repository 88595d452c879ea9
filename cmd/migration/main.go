package main

import (
	"log"
	"os"

	"github.com/hugohenrick/notas-fiscais-api/internal/infrastructure/database"
	"github.com/joho/godotenv"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "migrations"
	}

	config := database.NewPostgresConfigFromEnv()

	if err := database.RunMigrations(migrationsPath, config); err != nil {
		log.Fatalf("Erro ao aplicar migrações: %v", err)
	}

	log.Println("Migrações aplicadas com sucesso")
}
