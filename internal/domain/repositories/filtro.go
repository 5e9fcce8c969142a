package repositories

import (
	"time"

	"github.com/lojaconnect/pesquisa-api/internal/domain/entities"
	"github.com/lojaconnect/pesquisa-api/internal/utils"
)

// Condicao é um par (cláusula, valor) de um filtro de listagem. O valor
// é sempre vinculado por placeholder, nunca interpolado na cláusula.
type Condicao struct {
	Clausula string
	Valor    interface{}
}

// CondicoesDoFiltro converte um FiltroResposta nas condições SQL
// correspondentes, em ordem fixa: motivo_contato, atendimento,
// data_inicio, data_fim. Filtros ausentes não geram condição.
//
// As datas são normalizadas para os limites do dia no fuso de Brasília:
// data_inicio vira 00:00:00 e data_fim vira 23:59:59, ambas comparadas
// contra data_criacao de forma inclusiva.
func CondicoesDoFiltro(filtro entities.FiltroResposta) []Condicao {
	var condicoes []Condicao

	if filtro.MotivoContato != "" {
		condicoes = append(condicoes, Condicao{
			Clausula: "motivo_contato = ?",
			Valor:    filtro.MotivoContato,
		})
	}

	if filtro.Atendimento != nil {
		condicoes = append(condicoes, Condicao{
			Clausula: "atendimento = ?",
			Valor:    *filtro.Atendimento,
		})
	}

	if filtro.DataInicio != nil {
		inicio := inicioDoDia(*filtro.DataInicio)
		condicoes = append(condicoes, Condicao{
			Clausula: "data_criacao >= ?",
			Valor:    inicio,
		})
	}

	if filtro.DataFim != nil {
		fim := fimDoDia(*filtro.DataFim)
		condicoes = append(condicoes, Condicao{
			Clausula: "data_criacao <= ?",
			Valor:    fim,
		})
	}

	return condicoes
}

// inicioDoDia retorna o primeiro instante do dia (00:00:00)
func inicioDoDia(t time.Time) time.Time {
	loc := utils.GetBrasilLocation()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// fimDoDia retorna o último instante do dia (23:59:59)
func fimDoDia(t time.Time) time.Time {
	loc := utils.GetBrasilLocation()
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, loc)
}
