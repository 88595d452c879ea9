package invoice_test

import (
	"context"
	"testing"
	"time"

	"github.com/hugohenrick/notas-fiscais-api/internal/adapter/repository"
	"github.com/hugohenrick/notas-fiscais-api/internal/domain/invoice"
	"github.com/hugohenrick/notas-fiscais-api/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (*invoice.Service, *repository.MemoryInvoiceRepository) {
	repo := repository.NewMemoryInvoiceRepository()
	return invoice.NewService(repo, logger.NewLogger()), repo
}

func mustCreate(t *testing.T, svc *invoice.Service, n *invoice.Invoice) *invoice.Invoice {
	t.Helper()
	created, err := svc.Create(context.Background(), n)
	require.NoError(t, err)
	return created
}

func TestService_Create(t *testing.T) {
	svc, _ := newTestService()
	issueDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	n := newTestInvoice(t, testAccessKey(1), issueDate, invoice.OperationOutbound, "100.00")
	created := mustCreate(t, svc, n)

	assert.Equal(t, invoice.StatusPending, created.Status)

	found, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, testAccessKey(1), found.AccessKey)
}

func TestService_Create_DuplicateAccessKey(t *testing.T) {
	svc, _ := newTestService()
	issueDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mustCreate(t, svc, newTestInvoice(t, testAccessKey(1), issueDate, invoice.OperationOutbound, "100.00"))

	_, err := svc.Create(context.Background(), newTestInvoice(t, testAccessKey(1), issueDate, invoice.OperationOutbound, "50.00"))
	assert.ErrorIs(t, err, invoice.ErrDuplicateAccessKey)
}

func TestService_GetByAccessKey(t *testing.T) {
	svc, _ := newTestService()
	issueDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	created := mustCreate(t, svc, newTestInvoice(t, testAccessKey(1), issueDate, invoice.OperationOutbound, "100.00"))

	found, err := svc.GetByAccessKey(context.Background(), testAccessKey(1))
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.GetByAccessKey(context.Background(), testAccessKey(99))
	assert.ErrorIs(t, err, invoice.ErrNotFound)
}

func TestService_GetAll_OrderedByIssueDateDesc(t *testing.T) {
	svc, _ := newTestService()

	older := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	mustCreate(t, svc, newTestInvoice(t, testAccessKey(1), older, invoice.OperationOutbound, "100.00"))
	mustCreate(t, svc, newTestInvoice(t, testAccessKey(2), newer, invoice.OperationOutbound, "50.00"))

	all, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, testAccessKey(2), all[0].AccessKey)
	assert.Equal(t, testAccessKey(1), all[1].AccessKey)
}

func TestService_Update_ReplacesItems(t *testing.T) {
	svc, _ := newTestService()
	issueDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	n := newTestInvoice(t, testAccessKey(1), issueDate, invoice.OperationOutbound, "100.00")
	require.NoError(t, n.AddItem("P001", "Produto 1", "12345678", "5102", "UN",
		decimal.RequireFromString("2"), decimal.RequireFromString("25.00"),
		decimal.RequireFromString("50.00"), decimal.Zero))
	require.NoError(t, n.AddItem("P002", "Produto 2", "87654321", "5102", "UN",
		decimal.RequireFromString("1"), decimal.RequireFromString("50.00"),
		decimal.RequireFromString("50.00"), decimal.Zero))
	created := mustCreate(t, svc, n)

	updated := newTestInvoice(t, testAccessKey(1), issueDate, invoice.OperationOutbound, "75.00")
	require.NoError(t, updated.AddItem("P003", "Produto 3", "11112222", "5102", "CX",
		decimal.RequireFromString("3"), decimal.RequireFromString("25.00"),
		decimal.RequireFromString("75.00"), decimal.Zero))
	updated.ID = created.ID

	result, err := svc.Update(context.Background(), updated)
	require.NoError(t, err)

	// Os itens antigos desaparecem por completo; só o novo permanece
	require.Len(t, result.Items, 1)
	assert.Equal(t, "P003", result.Items[0].ProductCode)
	assert.Equal(t, 1, result.Items[0].ItemNumber)
	assert.Equal(t, created.ID, result.Items[0].InvoiceID)
	assert.True(t, result.TotalValue.Equal(decimal.RequireFromString("75.00")))

	found, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, found.Items, 1)
	assert.Equal(t, "P003", found.Items[0].ProductCode)
}

func TestService_Update_NotFound(t *testing.T) {
	svc, _ := newTestService()
	issueDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	updated := newTestInvoice(t, testAccessKey(1), issueDate, invoice.OperationOutbound, "100.00")
	updated.ID = "inexistente"

	_, err := svc.Update(context.Background(), updated)
	assert.ErrorIs(t, err, invoice.ErrNotFound)
}

func TestService_Delete(t *testing.T) {
	svc, _ := newTestService()
	issueDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	created := mustCreate(t, svc, newTestInvoice(t, testAccessKey(1), issueDate, invoice.OperationOutbound, "100.00"))

	deleted, err := svc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = svc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, invoice.ErrNotFound)
}

func TestService_Delete_NotFound(t *testing.T) {
	svc, _ := newTestService()

	deleted, err := svc.Delete(context.Background(), "inexistente")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestService_Authorize(t *testing.T) {
	svc, _ := newTestService()
	issueDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	created := mustCreate(t, svc, newTestInvoice(t, testAccessKey(1), issueDate, invoice.OperationOutbound, "100.00"))
	previousUpdatedAt := created.UpdatedAt
	time.Sleep(5 * time.Millisecond)

	ok, err := svc.Authorize(context.Background(), created.ID, "P1")
	require.NoError(t, err)
	assert.True(t, ok)

	found, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, invoice.StatusAuthorized, found.Status)
	require.NotNil(t, found.AuthorizationProtocol)
	assert.Equal(t, "P1", *found.AuthorizationProtocol)
	require.NotNil(t, found.AuthorizationDate)
	assert.True(t, found.UpdatedAt.After(previousUpdatedAt))
}

func TestService_Authorize_NotFound(t *testing.T) {
	svc, _ := newTestService()

	ok, err := svc.Authorize(context.Background(), "inexistente", "P1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestService_Cancel(t *testing.T) {
	svc, _ := newTestService()
	issueDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	created := mustCreate(t, svc, newTestInvoice(t, testAccessKey(1), issueDate, invoice.OperationOutbound, "100.00"))

	ok, err := svc.Cancel(context.Background(), created.ID, "erro de digitação")
	require.NoError(t, err)
	assert.True(t, ok)

	found, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, invoice.StatusCancelled, found.Status)
	require.NotNil(t, found.CancellationReason)
	assert.Equal(t, "erro de digitação", *found.CancellationReason)
	require.NotNil(t, found.CancellationDate)
}

func TestService_Cancel_NotFound(t *testing.T) {
	svc, _ := newTestService()

	ok, err := svc.Cancel(context.Background(), "inexistente", "erro de digitação")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestService_ListByPeriod(t *testing.T) {
	svc, _ := newTestService()

	inside := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	onStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	outside := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	mustCreate(t, svc, newTestInvoice(t, testAccessKey(1), inside, invoice.OperationOutbound, "100.00"))
	mustCreate(t, svc, newTestInvoice(t, testAccessKey(2), onStart, invoice.OperationOutbound, "50.00"))
	mustCreate(t, svc, newTestInvoice(t, testAccessKey(3), outside, invoice.OperationOutbound, "30.00"))

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)

	result, err := svc.ListByPeriod(context.Background(), start, end)
	require.NoError(t, err)
	require.Len(t, result, 2)

	// Ordem decrescente por data de emissão, limites inclusivos
	assert.Equal(t, testAccessKey(1), result[0].AccessKey)
	assert.Equal(t, testAccessKey(2), result[1].AccessKey)
}

func TestService_TotalByPeriod(t *testing.T) {
	svc, _ := newTestService()

	a := mustCreate(t, svc, newTestInvoice(t, testAccessKey(1),
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), invoice.OperationOutbound, "100.00"))
	mustCreate(t, svc, newTestInvoice(t, testAccessKey(2),
		time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), invoice.OperationOutbound, "50.00"))

	ok, err := svc.Authorize(context.Background(), a.ID, "PROT1")
	require.NoError(t, err)
	require.True(t, ok)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)

	// Só a nota autorizada entra na soma; a pendente fica de fora
	total, err := svc.TotalByPeriod(context.Background(), start, end, invoice.OperationOutbound)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("100.00")), "total = %s", total)
}

func TestService_TotalByPeriod_FiltersOperationType(t *testing.T) {
	svc, _ := newTestService()

	a := mustCreate(t, svc, newTestInvoice(t, testAccessKey(1),
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), invoice.OperationOutbound, "100.00"))
	b := mustCreate(t, svc, newTestInvoice(t, testAccessKey(2),
		time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), invoice.OperationInbound, "40.00"))

	for _, id := range []string{a.ID, b.ID} {
		ok, err := svc.Authorize(context.Background(), id, "PROT")
		require.NoError(t, err)
		require.True(t, ok)
	}

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)

	total, err := svc.TotalByPeriod(context.Background(), start, end, invoice.OperationInbound)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("40.00")), "total = %s", total)
}

func TestService_TotalByPeriod_Empty(t *testing.T) {
	svc, _ := newTestService()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	total, err := svc.TotalByPeriod(context.Background(), start, end, invoice.OperationOutbound)
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}
