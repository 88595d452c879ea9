package invoice

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound é retornado quando a nota fiscal não existe
	ErrNotFound = errors.New("nota fiscal não encontrada")
	// ErrDuplicateAccessKey é retornado quando já existe nota com a mesma chave de acesso
	ErrDuplicateAccessKey = errors.New("nota fiscal com esta chave de acesso já existe")
)

// Repository define a interface para operações de repositório de notas fiscais.
// Todas as leituras retornam a nota com seus itens carregados.
type Repository interface {
	// Create insere uma nova nota com seus itens
	Create(ctx context.Context, n *Invoice) error

	// FindByID busca uma nota pelo ID
	FindByID(ctx context.Context, id string) (*Invoice, error)

	// FindByAccessKey busca uma nota pela chave de acesso
	FindByAccessKey(ctx context.Context, accessKey string) (*Invoice, error)

	// FindAll lista todas as notas, da emissão mais recente para a mais antiga
	FindAll(ctx context.Context) ([]*Invoice, error)

	// FindByPeriod lista as notas emitidas no período (limites inclusivos),
	// da emissão mais recente para a mais antiga
	FindByPeriod(ctx context.Context, start, end time.Time) ([]*Invoice, error)

	// ExistsByAccessKey verifica se já existe nota com a chave de acesso
	ExistsByAccessKey(ctx context.Context, accessKey string) (bool, error)

	// SumAuthorizedByPeriod soma o valor total das notas autorizadas do tipo
	// de operação informado emitidas no período; zero quando nenhuma casa
	SumAuthorizedByPeriod(ctx context.Context, start, end time.Time, operationType OperationType) (decimal.Decimal, error)

	// Update sobrescreve os dados de uma nota existente e substitui seus itens
	Update(ctx context.Context, n *Invoice) error

	// Delete remove uma nota e seus itens
	Delete(ctx context.Context, id string) error
}
