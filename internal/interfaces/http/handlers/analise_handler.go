package handlers

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lojaconnect/pesquisa-api/internal/infrastructure/gemini"
)

// AnaliseUseCase é o contrato consumido pelo handler de análise
type AnaliseUseCase interface {
	Responder(ctx context.Context, pergunta string) (string, error)
}

// AnaliseHandler lida com as perguntas do gestor sobre as respostas coletadas
type AnaliseHandler struct {
	analiseUseCase AnaliseUseCase
}

// NewAnaliseHandler cria uma nova instância de AnaliseHandler
func NewAnaliseHandler(analiseUseCase AnaliseUseCase) *AnaliseHandler {
	return &AnaliseHandler{
		analiseUseCase: analiseUseCase,
	}
}

// PostAnalise responde uma pergunta em linguagem natural sobre as
// pesquisas. Estouro de cota do serviço de geração vira 429 para o
// chamador poder recuar; qualquer outra falha vira 500 com detalhe.
func (h *AnaliseHandler) PostAnalise(c *fiber.Ctx) error {
	var body struct {
		Question string `json:"question"`
	}

	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Corpo da requisição inválido"})
	}

	if strings.TrimSpace(body.Question) == "" {
		return c.Status(400).JSON(fiber.Map{"error": "O campo 'question' é obrigatório"})
	}

	resposta, err := h.analiseUseCase.Responder(c.UserContext(), body.Question)
	if err != nil {
		if errors.Is(err, gemini.ErrRateLimited) {
			return c.Status(429).JSON(fiber.Map{
				"error":   "Muitas requisições ao assistente. Tente novamente em instantes.",
				"details": err.Error(),
			})
		}

		log.Printf("❌ Erro na análise: %v", err)
		return c.Status(500).JSON(fiber.Map{
			"error":   "Não foi possível analisar as respostas agora.",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"answer": resposta})
}
