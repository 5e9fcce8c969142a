package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// ErrRateLimited indica que o serviço de geração recusou a chamada por
// excesso de requisições. O chamador decide se e quando tentar de novo;
// o cliente nunca repete a chamada sozinho.
var ErrRateLimited = errors.New("limite de requisições do serviço de geração atingido")

// Client é o cliente do serviço de geração de texto (Gemini). É criado
// uma vez na inicialização e compartilhado por todas as requisições.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient cria um novo cliente Gemini
func NewClient(apiKey, model string) *Client {
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetBaseURL troca o endpoint da API. Usado nos testes.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

type request struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type response struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Status  string `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

// GerarResposta envia o prompt ao Gemini e retorna o texto gerado, sem
// streaming e sem retentativas. Estouro de cota vira ErrRateLimited;
// qualquer outra falha vira um erro genérico com detalhe para log.
func (c *Client) GerarResposta(ctx context.Context, texto string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY não configurada")
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	reqBody := request{
		Contents: []content{
			{Parts: []part{{Text: texto}}},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("erro ao montar requisição: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("erro ao criar requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro ao chamar o serviço de geração: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("erro ao ler resposta do serviço de geração: %w", err)
	}

	var result response
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("erro ao decodificar resposta do serviço de geração: %w", err)
	}

	if result.Error != nil {
		if resp.StatusCode == http.StatusTooManyRequests || result.Error.Status == "RESOURCE_EXHAUSTED" {
			return "", fmt.Errorf("%w: %s", ErrRateLimited, result.Error.Message)
		}
		return "", fmt.Errorf("erro do serviço de geração (%d): %s", result.Error.Code, result.Error.Message)
	}

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusTooManyRequests {
			return "", fmt.Errorf("%w: status %d", ErrRateLimited, resp.StatusCode)
		}
		return "", fmt.Errorf("serviço de geração retornou status %d", resp.StatusCode)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("serviço de geração não retornou conteúdo")
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}
