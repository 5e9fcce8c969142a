package prompt

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "embed"

	"github.com/lojaconnect/pesquisa-api/internal/domain/entities"
)

// A especificação de comportamento do analista é um artefato versionado
// junto do código: evolui sem mexer no pipeline.
//
//go:embed especificacao.txt
var especificacao string

// Especificacao retorna o texto fixo de comportamento do analista
func Especificacao() string {
	return especificacao
}

// Compor monta o payload textual enviado ao serviço de geração, em
// quatro partes fixas: especificação de comportamento, metadados da
// janela, respostas serializadas e a pergunta literal do usuário.
// É uma função pura: mesmas entradas, mesmo payload, byte a byte.
func Compor(janela entities.JanelaContexto, pergunta string) string {
	var sb strings.Builder

	sb.WriteString(especificacao)
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Total de respostas na janela: %d\n", janela.Total))
	sb.WriteString(fmt.Sprintf("Resposta mais recente: %s\n", formatarData(janela.MaisRecente)))
	sb.WriteString(fmt.Sprintf("Resposta mais antiga: %s\n", formatarData(janela.MaisAntiga)))
	sb.WriteString("\n")

	sb.WriteString("Dados das respostas (JSON):\n")
	sb.WriteString(serializarRespostas(janela.Respostas))
	sb.WriteString("\n\n")

	sb.WriteString("Pergunta do gestor: ")
	sb.WriteString(pergunta)
	sb.WriteString("\n\n")
	sb.WriteString("Lembrete: use tabela markdown para listagens e calcule estatísticas quando a pergunta pedir.")

	return sb.String()
}

func serializarRespostas(respostas []entities.Resposta) string {
	if len(respostas) == 0 {
		return "[]"
	}

	dados, err := json.Marshal(respostas)
	if err != nil {
		// Entidade só tem tipos serializáveis; na prática não acontece
		return "[]"
	}

	return string(dados)
}

func formatarData(t *time.Time) string {
	if t == nil {
		return "sem dados"
	}
	return t.Format("2006-01-02 15:04:05")
}
