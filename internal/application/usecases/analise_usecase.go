package usecases

import (
	"context"
	"log"

	"github.com/lojaconnect/pesquisa-api/internal/application/prompt"
	"github.com/lojaconnect/pesquisa-api/internal/domain/entities"
)

// JanelaFetcher busca o recorte mais recente das respostas
type JanelaFetcher interface {
	GetJanelaContexto(limite int) (entities.JanelaContexto, error)
}

// GeradorTexto envia um prompt ao serviço de geração e retorna o texto
// produzido
type GeradorTexto interface {
	GerarResposta(ctx context.Context, texto string) (string, error)
}

// AnaliseUseCase implementa o fluxo de análise: saudação, busca da
// janela de contexto, composição do prompt e despacho ao serviço de
// geração. Não guarda estado por requisição.
type AnaliseUseCase struct {
	janelaFetcher JanelaFetcher
	gerador       GeradorTexto
	limiteJanela  int
}

// NewAnaliseUseCase cria uma nova instância de AnaliseUseCase
func NewAnaliseUseCase(janelaFetcher JanelaFetcher, gerador GeradorTexto, limiteJanela int) *AnaliseUseCase {
	return &AnaliseUseCase{
		janelaFetcher: janelaFetcher,
		gerador:       gerador,
		limiteJanela:  limiteJanela,
	}
}

// Responder processa uma pergunta do gestor. Cumprimentos são
// respondidos na hora, sem tocar no banco nem no serviço de geração.
// Falha na busca da janela não derruba a requisição: a análise segue
// com janela vazia para que perguntas sem dados ainda sejam atendidas.
func (u *AnaliseUseCase) Responder(ctx context.Context, pergunta string) (string, error) {
	if EhSaudacao(pergunta) {
		return MensagemSaudacao, nil
	}

	janela, err := u.janelaFetcher.GetJanelaContexto(u.limiteJanela)
	if err != nil {
		log.Printf("⚠️ Falha ao buscar janela de contexto, seguindo sem dados: %v", err)
		janela = entities.JanelaContexto{}
	}

	texto := prompt.Compor(janela, pergunta)

	return u.gerador.GerarResposta(ctx, texto)
}
