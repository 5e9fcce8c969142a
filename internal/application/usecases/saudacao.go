package usecases

import "strings"

// saudacoes são os cumprimentos reconhecidos antes de qualquer acesso a
// dados ou chamada externa. A comparação usa o texto normalizado.
var saudacoes = []string{
	"oi",
	"ola",
	"olá",
	"oie",
	"hello",
	"hi",
	"hey",
	"bom dia",
	"boa tarde",
	"boa noite",
	"e ai",
	"e aí",
	"tudo bem",
}

// MensagemSaudacao é a resposta fixa para cumprimentos. Nunca cita dados.
const MensagemSaudacao = "Olá! Sou o assistente de análise das pesquisas de satisfação. " +
	"Pode me perguntar sobre as respostas coletadas: médias por pilar, avaliações críticas, " +
	"comentários de um período, o que precisar."

// EhSaudacao verifica se a pergunta é apenas um cumprimento. O texto é
// normalizado (minúsculas, espaços e pontuação final removidos) e
// comparado com a lista de saudações por igualdade ou por prefixo
// seguido de espaço.
func EhSaudacao(pergunta string) bool {
	texto := strings.ToLower(strings.TrimSpace(pergunta))
	texto = strings.TrimRight(texto, "!?.")
	texto = strings.TrimSpace(texto)

	for _, saudacao := range saudacoes {
		if texto == saudacao || strings.HasPrefix(texto, saudacao+" ") {
			return true
		}
	}

	return false
}
