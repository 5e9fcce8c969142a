package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/lojaconnect/pesquisa-api/internal/application/usecases"
	"github.com/lojaconnect/pesquisa-api/internal/domain/entities"
)

// RespostaUseCase é o contrato consumido pelo handler de respostas
type RespostaUseCase interface {
	CriarResposta(nova entities.NovaResposta) error
	ListarRespostas(filtro entities.FiltroResposta) ([]entities.Resposta, error)
}

// RespostaHandler lida com a submissão e a listagem de respostas de pesquisa
type RespostaHandler struct {
	respostaUseCase RespostaUseCase
}

// NewRespostaHandler cria uma nova instância de RespostaHandler
func NewRespostaHandler(respostaUseCase RespostaUseCase) *RespostaHandler {
	return &RespostaHandler{
		respostaUseCase: respostaUseCase,
	}
}

// CreateResposta registra uma nova resposta de pesquisa. Todos os
// campos do corpo são opcionais; ausentes viram NULL no banco.
func (h *RespostaHandler) CreateResposta(c *fiber.Ctx) error {
	var nova entities.NovaResposta
	if err := c.BodyParser(&nova); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Corpo da requisição inválido"})
	}

	if err := h.respostaUseCase.CriarResposta(nova); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Ocorreu um erro interno ao salvar a resposta."})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Resposta salva com sucesso!"})
}

// GetRespostas retorna as respostas com filtros opcionais por
// motivo_contato, atendimento (nota exata) e intervalo de datas
// (data_inicio e data_fim no formato YYYY-MM-DD), sempre da mais
// recente para a mais antiga.
func (h *RespostaHandler) GetRespostas(c *fiber.Ctx) error {
	filtro := entities.FiltroResposta{
		MotivoContato: c.Query("motivo_contato"),
	}

	if atendimentoStr := c.Query("atendimento"); atendimentoStr != "" {
		atendimento, err := strconv.Atoi(atendimentoStr)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Parâmetro 'atendimento' inválido"})
		}
		filtro.Atendimento = &atendimento
	}

	if inicioStr := c.Query("data_inicio"); inicioStr != "" {
		inicio, err := usecases.ParseData(inicioStr)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Parâmetro 'data_inicio' inválido, use YYYY-MM-DD"})
		}
		filtro.DataInicio = &inicio
	}

	if fimStr := c.Query("data_fim"); fimStr != "" {
		fim, err := usecases.ParseData(fimStr)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Parâmetro 'data_fim' inválido, use YYYY-MM-DD"})
		}
		filtro.DataFim = &fim
	}

	respostas, err := h.respostaUseCase.ListarRespostas(filtro)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao buscar as respostas."})
	}

	return c.JSON(respostas)
}
