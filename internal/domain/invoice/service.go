package invoice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/notas-fiscais-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// Service concentra o ciclo de vida das notas fiscais: criação com validação
// de chave única, atualização, exclusão, autorização, cancelamento e os
// relatórios por período. Todo o estado durável fica no Repository injetado;
// o serviço em si não guarda estado e pode ser usado concorrentemente.
type Service struct {
	repo   Repository
	logger logger.Logger
}

// NewService cria uma nova instância de Service
func NewService(repo Repository, logger logger.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetAll retorna todas as notas fiscais, da mais recente para a mais antiga
func (s *Service) GetAll(ctx context.Context) ([]*Invoice, error) {
	return s.repo.FindAll(ctx)
}

// GetByID busca uma nota fiscal pelo ID
func (s *Service) GetByID(ctx context.Context, id string) (*Invoice, error) {
	return s.repo.FindByID(ctx, id)
}

// GetByAccessKey busca uma nota fiscal pela chave de acesso
func (s *Service) GetByAccessKey(ctx context.Context, accessKey string) (*Invoice, error) {
	return s.repo.FindByAccessKey(ctx, accessKey)
}

// Create registra uma nova nota fiscal após validar a unicidade da chave de
// acesso. A verificação prévia e a inserção não são atômicas: sob
// concorrência, duas criações com a mesma chave podem passar pela
// verificação, e nesse caso o índice único do banco é quem barra a segunda —
// o repositório traduz essa violação para ErrDuplicateAccessKey.
func (s *Service) Create(ctx context.Context, n *Invoice) (*Invoice, error) {
	if n.AccessKey == "" {
		return nil, ErrEmptyAccessKey
	}

	exists, err := s.repo.ExistsByAccessKey(ctx, n.AccessKey)
	if err != nil {
		return nil, fmt.Errorf("erro ao verificar chave de acesso: %w", err)
	}
	if exists {
		return nil, ErrDuplicateAccessKey
	}

	if err := s.repo.Create(ctx, n); err != nil {
		s.logger.Error("erro ao criar nota fiscal", "access_key", n.AccessKey, "error", err)
		return nil, err
	}

	s.logger.Info("nota fiscal criada", "id", n.ID, "number", n.Number, "access_key", n.AccessKey)
	return n, nil
}

// Update sobrescreve os campos editáveis de uma nota existente e substitui
// todos os seus itens pelos informados. Retorna ErrNotFound quando a nota
// não existe. Notas em estado terminal não são rejeitadas aqui; cabe ao
// chamador decidir se edita uma nota já autorizada ou cancelada.
func (s *Service) Update(ctx context.Context, updated *Invoice) (*Invoice, error) {
	existing, err := s.repo.FindByID(ctx, updated.ID)
	if err != nil {
		return nil, err
	}

	existing.ApplyUpdate(updated)

	if err := s.repo.Update(ctx, existing); err != nil {
		s.logger.Error("erro ao atualizar nota fiscal", "id", existing.ID, "error", err)
		return nil, err
	}

	s.logger.Info("nota fiscal atualizada", "id", existing.ID, "number", existing.Number)
	return existing, nil
}

// Delete remove uma nota fiscal e seus itens. Retorna false quando a nota
// não existe; erros de armazenamento são propagados.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		s.logger.Error("erro ao remover nota fiscal", "id", id, "error", err)
		return false, err
	}

	s.logger.Info("nota fiscal removida", "id", id)
	return true, nil
}

// Authorize marca a nota como autorizada, registrando o protocolo e a data.
// Retorna false quando a nota não existe. A autorização é incondicional:
// notas já autorizadas ou canceladas têm o protocolo sobrescrito.
func (s *Service) Authorize(ctx context.Context, id, protocol string) (bool, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	n.Authorize(protocol)

	if err := s.repo.Update(ctx, n); err != nil {
		s.logger.Error("erro ao autorizar nota fiscal", "id", id, "error", err)
		return false, err
	}

	s.logger.Info("nota fiscal autorizada", "id", id, "protocol", protocol)
	return true, nil
}

// Cancel marca a nota como cancelada, registrando o motivo e a data.
// Retorna false quando a nota não existe; não há guarda contra cancelar
// duas vezes.
func (s *Service) Cancel(ctx context.Context, id, reason string) (bool, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	n.Cancel(reason)

	if err := s.repo.Update(ctx, n); err != nil {
		s.logger.Error("erro ao cancelar nota fiscal", "id", id, "error", err)
		return false, err
	}

	s.logger.Info("nota fiscal cancelada", "id", id, "reason", reason)
	return true, nil
}

// ListByPeriod lista as notas emitidas no período informado, limites
// inclusivos, da mais recente para a mais antiga
func (s *Service) ListByPeriod(ctx context.Context, start, end time.Time) ([]*Invoice, error) {
	return s.repo.FindByPeriod(ctx, start, end)
}

// TotalByPeriod soma o valor total das notas autorizadas do tipo de operação
// informado emitidas no período. Notas pendentes ou canceladas ficam de
// fora; quando nenhuma nota casa com o filtro o resultado é zero.
func (s *Service) TotalByPeriod(ctx context.Context, start, end time.Time, operationType OperationType) (decimal.Decimal, error) {
	return s.repo.SumAuthorizedByPeriod(ctx, start, end, operationType)
}
