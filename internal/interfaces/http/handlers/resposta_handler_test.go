package handlers

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lojaconnect/pesquisa-api/internal/domain/entities"
)

type respostaFake struct {
	criadas   []entities.NovaResposta
	filtros   []entities.FiltroResposta
	respostas []entities.Resposta
	errCriar  error
	errListar error
}

func (f *respostaFake) CriarResposta(nova entities.NovaResposta) error {
	f.criadas = append(f.criadas, nova)
	return f.errCriar
}

func (f *respostaFake) ListarRespostas(filtro entities.FiltroResposta) ([]entities.Resposta, error) {
	f.filtros = append(f.filtros, filtro)
	return f.respostas, f.errListar
}

func appRespostas(fake *respostaFake) *fiber.App {
	app := fiber.New()
	h := NewRespostaHandler(fake)
	app.Get("/responses", h.GetRespostas)
	app.Post("/responses", h.CreateResposta)
	return app
}

func TestCreateResposta_CamposMinimos(t *testing.T) {
	fake := &respostaFake{}
	app := appRespostas(fake)

	req := httptest.NewRequest("POST", "/responses", strings.NewReader(`{"motivo_contato":"suporte","rating_geral":2}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 201 {
		t.Fatalf("esperava 201, obteve %d", resp.StatusCode)
	}
	if len(fake.criadas) != 1 {
		t.Fatalf("esperava 1 submissão, obteve %d", len(fake.criadas))
	}

	nova := fake.criadas[0]
	if nova.MotivoContato == nil || *nova.MotivoContato != "suporte" {
		t.Errorf("motivo_contato inesperado: %v", nova.MotivoContato)
	}
	if nova.RatingGeral == nil || *nova.RatingGeral != 2 {
		t.Errorf("rating_geral inesperado: %v", nova.RatingGeral)
	}
	// Todos os demais campos devem seguir ausentes (gravados como NULL)
	if nova.Nome != nil || nova.Email != nil || nova.Telefone != nil ||
		nova.Sugestao != nil || nova.RatingCaixa != nil || nova.RatingEntrega != nil ||
		nova.SuporteRatingClareza != nil {
		t.Errorf("campos ausentes deveriam ficar nulos: %+v", nova)
	}
}

func TestCreateResposta_FalhaNoBanco(t *testing.T) {
	fake := &respostaFake{errCriar: errors.New("conexão perdida")}
	app := appRespostas(fake)

	req := httptest.NewRequest("POST", "/responses", strings.NewReader(`{"nome":"Ana"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 500 {
		t.Fatalf("esperava 500, obteve %d", resp.StatusCode)
	}

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	mensagem, _ := body["error"].(string)
	if strings.Contains(mensagem, "conexão perdida") {
		t.Error("mensagem de erro não deveria vazar detalhe interno")
	}
}

func TestGetRespostas_FiltrosSaoRepassados(t *testing.T) {
	fake := &respostaFake{}
	app := appRespostas(fake)

	req := httptest.NewRequest("GET", "/responses?motivo_contato=suporte&atendimento=3&data_inicio=2026-01-09&data_fim=2026-01-09", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Fatalf("esperava 200, obteve %d", resp.StatusCode)
	}
	if len(fake.filtros) != 1 {
		t.Fatalf("esperava 1 listagem, obteve %d", len(fake.filtros))
	}

	filtro := fake.filtros[0]
	if filtro.MotivoContato != "suporte" {
		t.Errorf("motivo_contato inesperado: %q", filtro.MotivoContato)
	}
	if filtro.Atendimento == nil || *filtro.Atendimento != 3 {
		t.Errorf("atendimento inesperado: %v", filtro.Atendimento)
	}
	if filtro.DataInicio == nil || filtro.DataFim == nil {
		t.Fatal("datas deveriam ter sido repassadas")
	}
	if filtro.DataInicio.Format("2006-01-02") != "2026-01-09" {
		t.Errorf("data_inicio inesperada: %s", filtro.DataInicio)
	}
}

func TestGetRespostas_SemFiltros(t *testing.T) {
	fake := &respostaFake{respostas: []entities.Resposta{{ID: "r1", DataCriacao: time.Now()}}}
	app := appRespostas(fake)

	req := httptest.NewRequest("GET", "/responses", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Fatalf("esperava 200, obteve %d", resp.StatusCode)
	}

	filtro := fake.filtros[0]
	if filtro.MotivoContato != "" || filtro.Atendimento != nil || filtro.DataInicio != nil || filtro.DataFim != nil {
		t.Errorf("sem parâmetros de query, o filtro deveria estar vazio: %+v", filtro)
	}
}

func TestGetRespostas_AtendimentoNaoNumerico(t *testing.T) {
	fake := &respostaFake{}
	app := appRespostas(fake)

	req := httptest.NewRequest("GET", "/responses?atendimento=otimo", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 400 {
		t.Fatalf("esperava 400 para atendimento não numérico, obteve %d", resp.StatusCode)
	}
	if len(fake.filtros) != 0 {
		t.Error("valor inválido não deveria chegar ao caso de uso")
	}
}

func TestGetRespostas_DataInvalida(t *testing.T) {
	fake := &respostaFake{}
	app := appRespostas(fake)

	for _, query := range []string{"data_inicio=09-01-2026", "data_fim=ontem"} {
		req := httptest.NewRequest("GET", "/responses?"+query, nil)
		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()

		if resp.StatusCode != 400 {
			t.Errorf("%s: esperava 400, obteve %d", query, resp.StatusCode)
		}
	}
}

func TestGetRespostas_FalhaNoBanco(t *testing.T) {
	fake := &respostaFake{errListar: errors.New("SELECT * FROM respostas falhou")}
	app := appRespostas(fake)

	req := httptest.NewRequest("GET", "/responses", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 500 {
		t.Fatalf("esperava 500, obteve %d", resp.StatusCode)
	}

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	mensagem, _ := body["error"].(string)
	if strings.Contains(mensagem, "SELECT") {
		t.Error("resposta de erro não deveria vazar o texto da consulta")
	}
}
