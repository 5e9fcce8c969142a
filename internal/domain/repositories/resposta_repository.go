package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/lojaconnect/pesquisa-api/internal/domain/entities"
	"github.com/lojaconnect/pesquisa-api/internal/utils"
	"gorm.io/gorm"
)

// RespostaRepository implementa o acesso a dados das respostas de pesquisa
type RespostaRepository struct {
	db *gorm.DB
}

// NewRespostaRepository cria uma nova instância de RespostaRepository
func NewRespostaRepository(db *gorm.DB) *RespostaRepository {
	return &RespostaRepository{
		db: db,
	}
}

// CreateResposta insere uma nova resposta. O id e a data de criação são
// atribuídos aqui; o restante dos campos é gravado como veio, inclusive
// os nulos.
func (r *RespostaRepository) CreateResposta(resposta *entities.Resposta) error {
	resposta.ID = uuid.NewString()
	resposta.DataCriacao = utils.AgoraBrasil()

	if err := r.db.Create(resposta).Error; err != nil {
		return fmt.Errorf("erro ao salvar resposta: %w", err)
	}

	return nil
}

// GetRespostas retorna as respostas que atendem ao filtro, sempre da
// mais recente para a mais antiga. Cada filtro presente vira exatamente
// uma condição parametrizada; filtros ausentes não entram na consulta.
func (r *RespostaRepository) GetRespostas(filtro entities.FiltroResposta) ([]entities.Resposta, error) {
	respostas := []entities.Resposta{}

	query := r.db.Model(&entities.Resposta{})
	for _, condicao := range CondicoesDoFiltro(filtro) {
		query = query.Where(condicao.Clausula, condicao.Valor)
	}

	if err := query.Order("data_criacao DESC").Find(&respostas).Error; err != nil {
		return nil, fmt.Errorf("erro ao buscar respostas: %w", err)
	}

	return respostas, nil
}

// GetJanelaContexto retorna as respostas mais recentes, limitadas a
// `limite`, junto com o total retornado e os limites de data da própria
// janela (não do banco inteiro).
func (r *RespostaRepository) GetJanelaContexto(limite int) (entities.JanelaContexto, error) {
	respostas := []entities.Resposta{}

	err := r.db.Model(&entities.Resposta{}).
		Order("data_criacao DESC").
		Limit(limite).
		Find(&respostas).Error
	if err != nil {
		return entities.JanelaContexto{}, fmt.Errorf("erro ao buscar janela de contexto: %w", err)
	}

	janela := entities.JanelaContexto{
		Respostas: respostas,
		Total:     len(respostas),
	}

	if len(respostas) > 0 {
		// Ordenação descendente: primeira é a mais recente
		maisRecente := respostas[0].DataCriacao
		maisAntiga := respostas[len(respostas)-1].DataCriacao
		janela.MaisRecente = &maisRecente
		janela.MaisAntiga = &maisAntiga
	}

	return janela, nil
}
