package entities

import "time"

// FiltroResposta é a combinação opcional de filtros da listagem de
// respostas. É montado por requisição e nunca persistido.
type FiltroResposta struct {
	MotivoContato string
	Atendimento   *int
	DataInicio    *time.Time
	DataFim       *time.Time
}
