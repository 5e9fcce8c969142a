package routes

import (
	"github.com/lojaconnect/pesquisa-api/internal/application/usecases"
	"github.com/lojaconnect/pesquisa-api/internal/domain/repositories"
	"github.com/lojaconnect/pesquisa-api/internal/interfaces/http/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"gorm.io/gorm"
)

// SetupRoutes monta a cadeia repositório → caso de uso → handler e
// registra as rotas. O banco e o gerador são criados uma única vez na
// inicialização e compartilhados por todas as requisições.
func SetupRoutes(app *fiber.App, db *gorm.DB, gerador usecases.GeradorTexto, limiteJanela int) {
	// Add performance middleware
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Add ETag support for efficient caching
	app.Use(etag.New())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Repositories
	respostaRepo := repositories.NewRespostaRepository(db)

	// Use Cases
	respostaUseCase := usecases.NewRespostaUseCase(respostaRepo)
	analiseUseCase := usecases.NewAnaliseUseCase(respostaRepo, gerador, limiteJanela)

	// Handlers
	respostaHandler := handlers.NewRespostaHandler(respostaUseCase)
	analiseHandler := handlers.NewAnaliseHandler(analiseUseCase)

	// Rotas de respostas
	app.Get("/responses", respostaHandler.GetRespostas)
	app.Post("/responses", respostaHandler.CreateResposta)

	// Rota do assistente de análise
	app.Post("/analysis", analiseHandler.PostAnalise)
}
