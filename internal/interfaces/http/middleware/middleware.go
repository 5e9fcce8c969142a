package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// SetupMiddlewares configura os middlewares globais da aplicação
func SetupMiddlewares(app *fiber.App) {
	// O formulário de pesquisa é servido de qualquer origem
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST",
		AllowHeaders: "Content-Type",
	}))

	app.Use(PerformanceLogger())
}
