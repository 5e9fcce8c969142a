package entities

import (
	"time"
)

// Resposta representa uma resposta de pesquisa de satisfação.
// Todos os campos de conteúdo são opcionais; uma resposta nunca é
// alterada ou removida depois de criada.
type Resposta struct {
	ID          string    `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	DataCriacao time.Time `json:"data_criacao" gorm:"column:data_criacao"`

	// Dados do respondente (texto livre, sem validação)
	Nome     *string `json:"nome" gorm:"column:nome"`
	Email    *string `json:"email" gorm:"column:email"`
	Telefone *string `json:"telefone" gorm:"column:telefone"`

	// Classificação do contato: compra_pf, compra_pj ou suporte
	MotivoContato *string `json:"motivo_contato" gorm:"column:motivo_contato"`

	// Pilares de avaliação (1 a 5), cada um com seu comentário
	Atendimento           *int    `json:"atendimento" gorm:"column:atendimento"`
	ComentarioAtendimento *string `json:"comentario_atendimento" gorm:"column:comentario_atendimento"`
	AtendimentoCaixa      *int    `json:"atendimento_caixa" gorm:"column:atendimento_caixa"`
	ComentarioCaixa       *string `json:"comentario_caixa" gorm:"column:comentario_caixa"`
	Entrega               *int    `json:"entrega" gorm:"column:entrega"`
	ComentarioEntrega     *string `json:"comentario_entrega" gorm:"column:comentario_entrega"`

	// Subavaliações de suporte
	SuporteClareza                  *int    `json:"suporte_clareza" gorm:"column:suporte_clareza"`
	ComentarioSuporteClareza        *string `json:"comentario_suporte_clareza" gorm:"column:comentario_suporte_clareza"`
	SuporteResolucao                *int    `json:"suporte_resolucao" gorm:"column:suporte_resolucao"`
	ComentarioSuporteResolucao      *string `json:"comentario_suporte_resolucao" gorm:"column:comentario_suporte_resolucao"`
	SuporteTempoResolucao           *int    `json:"suporte_tempo_resolucao" gorm:"column:suporte_tempo_resolucao"`
	ComentarioSuporteTempoResolucao *string `json:"comentario_suporte_tempo_resolucao" gorm:"column:comentario_suporte_tempo_resolucao"`

	// Coluna mantida por compatibilidade de schema; sempre gravada como NULL
	SuporteTempoEspera *int `json:"suporte_tempo_espera" gorm:"column:suporte_tempo_espera"`

	Sugestao *string `json:"sugestao" gorm:"column:sugestao"`
}

// TableName define o nome da tabela no banco
func (Resposta) TableName() string {
	return "respostas"
}

// NovaResposta é o corpo de submissão de uma resposta, com os nomes de
// campo usados pelo formulário. Todos os campos são opcionais.
type NovaResposta struct {
	Nome          *string `json:"nome"`
	Email         *string `json:"email"`
	Telefone      *string `json:"telefone"`
	MotivoContato *string `json:"motivo_contato"`
	Sugestao      *string `json:"sugestao"`

	RatingGeral   *int    `json:"rating_geral"`
	MotivoGeral   *string `json:"motivo_geral"`
	RatingCaixa   *int    `json:"rating_caixa"`
	MotivoCaixa   *string `json:"motivo_caixa"`
	RatingEntrega *int    `json:"rating_entrega"`
	MotivoEntrega *string `json:"motivo_entrega"`

	SuporteRatingClareza        *int    `json:"suporte_rating_clareza"`
	SuporteMotivoClareza        *string `json:"suporte_motivo_clareza"`
	SuporteRatingResolucao      *int    `json:"suporte_rating_resolucao"`
	SuporteMotivoResolucao      *string `json:"suporte_motivo_resolucao"`
	SuporteRatingTempoResolucao *int    `json:"suporte_rating_tempo_resolucao"`
	SuporteMotivoTempoResolucao *string `json:"suporte_motivo_tempo_resolucao"`
}

// JanelaContexto é o recorte mais recente das respostas usado para
// fundamentar a análise do assistente. Os limites de data vêm da
// própria janela, não do banco inteiro.
type JanelaContexto struct {
	Respostas   []Resposta
	Total       int
	MaisRecente *time.Time
	MaisAntiga  *time.Time
}
