package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/lojaconnect/pesquisa-api/internal/infrastructure/database"
	"github.com/lojaconnect/pesquisa-api/internal/infrastructure/gemini"
	"github.com/lojaconnect/pesquisa-api/internal/interfaces/http/middleware"
	"github.com/lojaconnect/pesquisa-api/internal/interfaces/http/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

// contextWindowLimitDefault é o tamanho padrão da janela de respostas
// usada para fundamentar o assistente
const contextWindowLimitDefault = 200

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system environment variables")
	}

	// Initialize database
	db, err := database.SetupDatabase()
	if err != nil {
		log.Fatalf("❌ Error setting up database: %v", err)
	}
	log.Println("✅ Conectado ao PostgreSQL")

	// Cliente do serviço de geração, compartilhado por todas as requisições
	geminiModel := os.Getenv("GEMINI_MODEL")
	if geminiModel == "" {
		geminiModel = "gemini-2.0-flash"
	}
	gerador := gemini.NewClient(os.Getenv("GEMINI_API_KEY"), geminiModel)

	// Tamanho da janela de contexto do assistente
	limiteJanela := contextWindowLimitDefault
	if limiteStr := os.Getenv("CONTEXT_WINDOW_LIMIT"); limiteStr != "" {
		if limite, err := strconv.Atoi(limiteStr); err == nil && limite > 0 {
			limiteJanela = limite
		}
	}

	app := fiber.New(fiber.Config{
		BodyLimit:    1 * 1024 * 1024, // 1MB
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	})

	// Setup middleware
	middleware.SetupMiddlewares(app)

	// Setup routes
	routes.SetupRoutes(app, db, gerador, limiteJanela)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server is running on port %s", port)
	log.Fatal(app.Listen(":" + port))
}
