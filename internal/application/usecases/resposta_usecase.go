package usecases

import (
	"time"

	"github.com/lojaconnect/pesquisa-api/internal/domain/entities"
	"github.com/lojaconnect/pesquisa-api/internal/domain/repositories"
	"github.com/lojaconnect/pesquisa-api/internal/utils"
)

// RespostaUseCase implementa os casos de uso de submissão e listagem de respostas
type RespostaUseCase struct {
	respostaRepo *repositories.RespostaRepository
}

// NewRespostaUseCase cria uma nova instância de RespostaUseCase
func NewRespostaUseCase(respostaRepo *repositories.RespostaRepository) *RespostaUseCase {
	return &RespostaUseCase{
		respostaRepo: respostaRepo,
	}
}

// CriarResposta mapeia o corpo de submissão para a entidade persistida e
// grava a resposta. Campos ausentes ficam nulos; não há validação de
// conteúdo. A coluna suporte_tempo_espera é sempre gravada como NULL.
func (u *RespostaUseCase) CriarResposta(nova entities.NovaResposta) error {
	resposta := entities.Resposta{
		Nome:          nova.Nome,
		Email:         nova.Email,
		Telefone:      nova.Telefone,
		MotivoContato: nova.MotivoContato,
		Sugestao:      nova.Sugestao,

		Atendimento:           nova.RatingGeral,
		ComentarioAtendimento: nova.MotivoGeral,
		AtendimentoCaixa:      nova.RatingCaixa,
		ComentarioCaixa:       nova.MotivoCaixa,
		Entrega:               nova.RatingEntrega,
		ComentarioEntrega:     nova.MotivoEntrega,

		SuporteClareza:                  nova.SuporteRatingClareza,
		ComentarioSuporteClareza:        nova.SuporteMotivoClareza,
		SuporteResolucao:                nova.SuporteRatingResolucao,
		ComentarioSuporteResolucao:      nova.SuporteMotivoResolucao,
		SuporteTempoResolucao:           nova.SuporteRatingTempoResolucao,
		ComentarioSuporteTempoResolucao: nova.SuporteMotivoTempoResolucao,
	}

	return u.respostaRepo.CreateResposta(&resposta)
}

// ListarRespostas retorna as respostas que atendem ao filtro, da mais
// recente para a mais antiga
func (u *RespostaUseCase) ListarRespostas(filtro entities.FiltroResposta) ([]entities.Resposta, error) {
	return u.respostaRepo.GetRespostas(filtro)
}

// ParseData converte uma string de data no formato YYYY-MM-DD para
// time.Time no fuso de Brasília
func ParseData(dataStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dataStr, utils.GetBrasilLocation())
}
