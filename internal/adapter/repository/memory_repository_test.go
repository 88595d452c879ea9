package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/hugohenrick/notas-fiscais-api/internal/adapter/repository"
	"github.com/hugohenrick/notas-fiscais-api/internal/domain/invoice"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildInvoice(t *testing.T, key int, issueDate time.Time, operationType invoice.OperationType, total string) *invoice.Invoice {
	t.Helper()

	n, err := invoice.NewInvoice(
		fmt.Sprintf("%044d", key),
		"1", "1",
		issueDate, issueDate,
		"12345678000199", "Emitente LTDA",
		"98765432000188", "Destinatário SA",
		operationType,
	)
	require.NoError(t, err)
	require.NoError(t, n.SetAmounts(
		decimal.RequireFromString(total),
		decimal.Zero, decimal.Zero, decimal.Zero,
		decimal.Zero, decimal.Zero, decimal.Zero,
	))
	return n
}

func TestMemoryRepository_Create_DuplicateAccessKey(t *testing.T) {
	repo := repository.NewMemoryInvoiceRepository()
	ctx := context.Background()
	issueDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, buildInvoice(t, 1, issueDate, invoice.OperationOutbound, "100.00")))

	// A chave única barra a segunda inserção mesmo sem verificação prévia,
	// como o índice único do banco faria sob concorrência
	err := repo.Create(ctx, buildInvoice(t, 1, issueDate, invoice.OperationOutbound, "50.00"))
	assert.ErrorIs(t, err, invoice.ErrDuplicateAccessKey)
}

func TestMemoryRepository_FindByID_NotFound(t *testing.T) {
	repo := repository.NewMemoryInvoiceRepository()

	_, err := repo.FindByID(context.Background(), "inexistente")
	assert.ErrorIs(t, err, invoice.ErrNotFound)
}

func TestMemoryRepository_ExistsByAccessKey(t *testing.T) {
	repo := repository.NewMemoryInvoiceRepository()
	ctx := context.Background()
	issueDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, buildInvoice(t, 1, issueDate, invoice.OperationOutbound, "100.00")))

	exists, err := repo.ExistsByAccessKey(ctx, fmt.Sprintf("%044d", 1))
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByAccessKey(ctx, fmt.Sprintf("%044d", 2))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemoryRepository_FindByPeriod_InclusiveBounds(t *testing.T) {
	repo := repository.NewMemoryInvoiceRepository()
	ctx := context.Background()

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, buildInvoice(t, 1, start, invoice.OperationOutbound, "10.00")))
	require.NoError(t, repo.Create(ctx, buildInvoice(t, 2, end, invoice.OperationOutbound, "20.00")))
	require.NoError(t, repo.Create(ctx, buildInvoice(t, 3, end.AddDate(0, 0, 1), invoice.OperationOutbound, "30.00")))

	result, err := repo.FindByPeriod(ctx, start, end)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, fmt.Sprintf("%044d", 2), result[0].AccessKey)
	assert.Equal(t, fmt.Sprintf("%044d", 1), result[1].AccessKey)
}

func TestMemoryRepository_SumAuthorizedByPeriod(t *testing.T) {
	repo := repository.NewMemoryInvoiceRepository()
	ctx := context.Background()
	issueDate := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	authorized := buildInvoice(t, 1, issueDate, invoice.OperationOutbound, "100.00")
	authorized.Authorize("PROT1")
	require.NoError(t, repo.Create(ctx, authorized))

	cancelled := buildInvoice(t, 2, issueDate, invoice.OperationOutbound, "70.00")
	cancelled.Cancel("erro de digitação")
	require.NoError(t, repo.Create(ctx, cancelled))

	pending := buildInvoice(t, 3, issueDate, invoice.OperationOutbound, "50.00")
	require.NoError(t, repo.Create(ctx, pending))

	inbound := buildInvoice(t, 4, issueDate, invoice.OperationInbound, "30.00")
	inbound.Authorize("PROT2")
	require.NoError(t, repo.Create(ctx, inbound))

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	total, err := repo.SumAuthorizedByPeriod(ctx, start, end, invoice.OperationOutbound)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("100.00")), "total = %s", total)
}

func TestMemoryRepository_Delete(t *testing.T) {
	repo := repository.NewMemoryInvoiceRepository()
	ctx := context.Background()
	issueDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	n := buildInvoice(t, 1, issueDate, invoice.OperationOutbound, "100.00")
	require.NoError(t, repo.Create(ctx, n))

	require.NoError(t, repo.Delete(ctx, n.ID))

	_, err := repo.FindByID(ctx, n.ID)
	assert.ErrorIs(t, err, invoice.ErrNotFound)

	err = repo.Delete(ctx, n.ID)
	assert.ErrorIs(t, err, invoice.ErrNotFound)
}

func TestMemoryRepository_IsolatesReturnedCopies(t *testing.T) {
	repo := repository.NewMemoryInvoiceRepository()
	ctx := context.Background()
	issueDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	n := buildInvoice(t, 1, issueDate, invoice.OperationOutbound, "100.00")
	require.NoError(t, repo.Create(ctx, n))

	found, err := repo.FindByID(ctx, n.ID)
	require.NoError(t, err)

	// Mutação na cópia devolvida não pode vazar para o estado do repositório
	found.Authorize("PROT1")

	again, err := repo.FindByID(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, invoice.StatusPending, again.Status)
	assert.Nil(t, again.AuthorizationProtocol)
}
