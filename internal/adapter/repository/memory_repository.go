package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/hugohenrick/notas-fiscais-api/internal/domain/invoice"
	"github.com/shopspring/decimal"
)

// MemoryInvoiceRepository é uma implementação de invoice.Repository em
// memória, com as mesmas garantias do banco: chave de acesso única e
// exclusão dos itens junto com a nota. Usada em testes e em execução local
// sem banco.
type MemoryInvoiceRepository struct {
	mu       sync.RWMutex
	invoices map[string]*invoice.Invoice
}

// NewMemoryInvoiceRepository cria uma nova instância de MemoryInvoiceRepository
func NewMemoryInvoiceRepository() *MemoryInvoiceRepository {
	return &MemoryInvoiceRepository{
		invoices: make(map[string]*invoice.Invoice),
	}
}

// Create implementa invoice.Repository.Create
func (r *MemoryInvoiceRepository) Create(_ context.Context, n *invoice.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.invoices {
		if existing.AccessKey == n.AccessKey {
			return invoice.ErrDuplicateAccessKey
		}
	}

	r.invoices[n.ID] = clone(n)
	return nil
}

// FindByID implementa invoice.Repository.FindByID
func (r *MemoryInvoiceRepository) FindByID(_ context.Context, id string) (*invoice.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.invoices[id]
	if !ok {
		return nil, invoice.ErrNotFound
	}
	return clone(n), nil
}

// FindByAccessKey implementa invoice.Repository.FindByAccessKey
func (r *MemoryInvoiceRepository) FindByAccessKey(_ context.Context, accessKey string) (*invoice.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, n := range r.invoices {
		if n.AccessKey == accessKey {
			return clone(n), nil
		}
	}
	return nil, invoice.ErrNotFound
}

// FindAll implementa invoice.Repository.FindAll
func (r *MemoryInvoiceRepository) FindAll(_ context.Context) ([]*invoice.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*invoice.Invoice, 0, len(r.invoices))
	for _, n := range r.invoices {
		result = append(result, clone(n))
	}
	sortByIssueDateDesc(result)
	return result, nil
}

// FindByPeriod implementa invoice.Repository.FindByPeriod
func (r *MemoryInvoiceRepository) FindByPeriod(_ context.Context, start, end time.Time) ([]*invoice.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*invoice.Invoice, 0)
	for _, n := range r.invoices {
		if inPeriod(n.IssueDate, start, end) {
			result = append(result, clone(n))
		}
	}
	sortByIssueDateDesc(result)
	return result, nil
}

// ExistsByAccessKey implementa invoice.Repository.ExistsByAccessKey
func (r *MemoryInvoiceRepository) ExistsByAccessKey(_ context.Context, accessKey string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, n := range r.invoices {
		if n.AccessKey == accessKey {
			return true, nil
		}
	}
	return false, nil
}

// SumAuthorizedByPeriod implementa invoice.Repository.SumAuthorizedByPeriod
func (r *MemoryInvoiceRepository) SumAuthorizedByPeriod(_ context.Context, start, end time.Time, operationType invoice.OperationType) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := decimal.Zero
	for _, n := range r.invoices {
		if n.Status == invoice.StatusAuthorized &&
			n.OperationType == operationType &&
			inPeriod(n.IssueDate, start, end) {
			total = total.Add(n.TotalValue)
		}
	}
	return total, nil
}

// Update implementa invoice.Repository.Update
func (r *MemoryInvoiceRepository) Update(_ context.Context, n *invoice.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.invoices[n.ID]; !ok {
		return invoice.ErrNotFound
	}

	r.invoices[n.ID] = clone(n)
	return nil
}

// Delete implementa invoice.Repository.Delete
func (r *MemoryInvoiceRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.invoices[id]; !ok {
		return invoice.ErrNotFound
	}

	delete(r.invoices, id)
	return nil
}

// clone copia a nota e seus itens para isolar o estado interno do repositório
func clone(n *invoice.Invoice) *invoice.Invoice {
	copied := *n
	copied.Items = make([]invoice.Item, len(n.Items))
	copy(copied.Items, n.Items)
	if n.AuthorizationProtocol != nil {
		protocol := *n.AuthorizationProtocol
		copied.AuthorizationProtocol = &protocol
	}
	if n.AuthorizationDate != nil {
		date := *n.AuthorizationDate
		copied.AuthorizationDate = &date
	}
	if n.CancellationReason != nil {
		reason := *n.CancellationReason
		copied.CancellationReason = &reason
	}
	if n.CancellationDate != nil {
		date := *n.CancellationDate
		copied.CancellationDate = &date
	}
	return &copied
}

// inPeriod verifica se a data está no período, limites inclusivos
func inPeriod(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

func sortByIssueDateDesc(invoices []*invoice.Invoice) {
	sort.Slice(invoices, func(i, j int) bool {
		return invoices[i].IssueDate.After(invoices[j].IssueDate)
	})
}
