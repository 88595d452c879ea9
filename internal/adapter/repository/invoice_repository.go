package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hugohenrick/notas-fiscais-api/internal/domain/invoice"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const invoiceColumns = `
	id, access_key, number, series, issue_date, entry_exit_date,
	issuer_tax_id, issuer_name, recipient_tax_id, recipient_name,
	total_value, icms_value, ipi_value, freight_value, insurance_value,
	discount_value, other_expenses_value, operation_nature, operation_type,
	status, authorization_protocol, authorization_date, cancellation_reason,
	cancellation_date, xml_content, created_at, updated_at`

const itemColumns = `
	id, invoice_id, item_number, product_code, product_description,
	ncm, cfop, unit_of_measure, quantity, unit_value, total_value, discount`

// InvoiceRepository implementa a interface invoice.Repository sobre PostgreSQL
type InvoiceRepository struct {
	db *pgxpool.Pool
}

// NewInvoiceRepository cria uma nova instância de InvoiceRepository
func NewInvoiceRepository(db *pgxpool.Pool) invoice.Repository {
	return &InvoiceRepository{
		db: db,
	}
}

// Create implementa invoice.Repository.Create. A nota e seus itens são
// inseridos na mesma transação; a violação do índice único da chave de
// acesso é traduzida para invoice.ErrDuplicateAccessKey.
func (r *InvoiceRepository) Create(ctx context.Context, n *invoice.Invoice) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO invoices (`+invoiceColumns+`
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27
		)`,
		n.ID, n.AccessKey, n.Number, n.Series, n.IssueDate, n.EntryExitDate,
		n.IssuerTaxID, n.IssuerName, n.RecipientTaxID, n.RecipientName,
		n.TotalValue, n.ICMSValue, n.IPIValue, n.FreightValue, n.InsuranceValue,
		n.DiscountValue, n.OtherExpensesValue, n.OperationNature, n.OperationType,
		n.Status, n.AuthorizationProtocol, n.AuthorizationDate, n.CancellationReason,
		n.CancellationDate, n.XMLContent, n.CreatedAt, n.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return invoice.ErrDuplicateAccessKey
		}
		return fmt.Errorf("erro ao criar nota fiscal: %w", err)
	}

	if err := r.insertItems(ctx, tx, n); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao confirmar transação: %w", err)
	}

	return nil
}

// FindByID implementa invoice.Repository.FindByID
func (r *InvoiceRepository) FindByID(ctx context.Context, id string) (*invoice.Invoice, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)

	n, err := scanInvoice(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, invoice.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar nota fiscal: %w", err)
	}

	if err := r.loadItems(ctx, n); err != nil {
		return nil, err
	}

	return n, nil
}

// FindByAccessKey implementa invoice.Repository.FindByAccessKey
func (r *InvoiceRepository) FindByAccessKey(ctx context.Context, accessKey string) (*invoice.Invoice, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE access_key = $1`, accessKey)

	n, err := scanInvoice(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, invoice.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar nota fiscal: %w", err)
	}

	if err := r.loadItems(ctx, n); err != nil {
		return nil, err
	}

	return n, nil
}

// FindAll implementa invoice.Repository.FindAll
func (r *InvoiceRepository) FindAll(ctx context.Context) ([]*invoice.Invoice, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+invoiceColumns+` FROM invoices ORDER BY issue_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar notas fiscais: %w", err)
	}
	defer rows.Close()

	return r.scanInvoiceRows(ctx, rows)
}

// FindByPeriod implementa invoice.Repository.FindByPeriod
func (r *InvoiceRepository) FindByPeriod(ctx context.Context, start, end time.Time) ([]*invoice.Invoice, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+invoiceColumns+` FROM invoices
		WHERE issue_date >= $1 AND issue_date <= $2
		ORDER BY issue_date DESC`,
		start, end)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar notas por período: %w", err)
	}
	defer rows.Close()

	return r.scanInvoiceRows(ctx, rows)
}

// ExistsByAccessKey implementa invoice.Repository.ExistsByAccessKey
func (r *InvoiceRepository) ExistsByAccessKey(ctx context.Context, accessKey string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM invoices WHERE access_key = $1)",
		accessKey).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("erro ao verificar chave de acesso: %w", err)
	}

	return exists, nil
}

// SumAuthorizedByPeriod implementa invoice.Repository.SumAuthorizedByPeriod.
// A soma é feita pelo banco sobre a coluna numeric, sem passar por float.
func (r *InvoiceRepository) SumAuthorizedByPeriod(ctx context.Context, start, end time.Time, operationType invoice.OperationType) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_value), 0) FROM invoices
		WHERE issue_date >= $1 AND issue_date <= $2
		AND operation_type = $3 AND status = $4`,
		start, end, operationType, invoice.StatusAuthorized).Scan(&total)

	if err != nil {
		return decimal.Zero, fmt.Errorf("erro ao calcular total do período: %w", err)
	}

	return total, nil
}

// Update implementa invoice.Repository.Update. Os itens antigos são
// descartados e os da nota informada inseridos no lugar, na mesma transação.
func (r *InvoiceRepository) Update(ctx context.Context, n *invoice.Invoice) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx,
		`UPDATE invoices SET
			number = $1, series = $2, issue_date = $3, entry_exit_date = $4,
			issuer_tax_id = $5, issuer_name = $6, recipient_tax_id = $7,
			recipient_name = $8, total_value = $9, icms_value = $10,
			ipi_value = $11, freight_value = $12, insurance_value = $13,
			discount_value = $14, other_expenses_value = $15,
			operation_nature = $16, operation_type = $17, status = $18,
			authorization_protocol = $19, authorization_date = $20,
			cancellation_reason = $21, cancellation_date = $22,
			xml_content = $23, updated_at = $24
		WHERE id = $25`,
		n.Number, n.Series, n.IssueDate, n.EntryExitDate,
		n.IssuerTaxID, n.IssuerName, n.RecipientTaxID, n.RecipientName,
		n.TotalValue, n.ICMSValue, n.IPIValue, n.FreightValue, n.InsuranceValue,
		n.DiscountValue, n.OtherExpensesValue, n.OperationNature, n.OperationType,
		n.Status, n.AuthorizationProtocol, n.AuthorizationDate,
		n.CancellationReason, n.CancellationDate, n.XMLContent, n.UpdatedAt,
		n.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar nota fiscal: %w", err)
	}

	if result.RowsAffected() == 0 {
		return invoice.ErrNotFound
	}

	_, err = tx.Exec(ctx, "DELETE FROM invoice_items WHERE invoice_id = $1", n.ID)
	if err != nil {
		return fmt.Errorf("erro ao remover itens da nota: %w", err)
	}

	if err := r.insertItems(ctx, tx, n); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao confirmar transação: %w", err)
	}

	return nil
}

// Delete implementa invoice.Repository.Delete. Os itens são removidos em
// cascata pela foreign key.
func (r *InvoiceRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM invoices WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir nota fiscal: %w", err)
	}

	if result.RowsAffected() == 0 {
		return invoice.ErrNotFound
	}

	return nil
}

// insertItems insere os itens da nota dentro da transação informada
func (r *InvoiceRepository) insertItems(ctx context.Context, tx pgx.Tx, n *invoice.Invoice) error {
	for _, item := range n.Items {
		_, err := tx.Exec(ctx,
			`INSERT INTO invoice_items (`+itemColumns+`
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			item.ID, n.ID, item.ItemNumber, item.ProductCode,
			item.ProductDescription, item.NCM, item.CFOP, item.UnitOfMeasure,
			item.Quantity, item.UnitValue, item.TotalValue, item.Discount)

		if err != nil {
			return fmt.Errorf("erro ao inserir item da nota: %w", err)
		}
	}

	return nil
}

// loadItems carrega os itens da nota, ordenados pela posição
func (r *InvoiceRepository) loadItems(ctx context.Context, n *invoice.Invoice) error {
	rows, err := r.db.Query(ctx,
		`SELECT `+itemColumns+` FROM invoice_items
		WHERE invoice_id = $1 ORDER BY item_number ASC`,
		n.ID)
	if err != nil {
		return fmt.Errorf("erro ao buscar itens da nota: %w", err)
	}
	defer rows.Close()

	items := make([]invoice.Item, 0)
	for rows.Next() {
		var item invoice.Item
		err := rows.Scan(
			&item.ID, &item.InvoiceID, &item.ItemNumber, &item.ProductCode,
			&item.ProductDescription, &item.NCM, &item.CFOP, &item.UnitOfMeasure,
			&item.Quantity, &item.UnitValue, &item.TotalValue, &item.Discount)
		if err != nil {
			return fmt.Errorf("erro ao ler item da nota: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("erro ao ler itens da nota: %w", err)
	}

	n.Items = items
	return nil
}

// scanInvoice lê uma nota de uma linha de resultado, sem os itens
func scanInvoice(row pgx.Row) (*invoice.Invoice, error) {
	var n invoice.Invoice
	err := row.Scan(
		&n.ID, &n.AccessKey, &n.Number, &n.Series, &n.IssueDate, &n.EntryExitDate,
		&n.IssuerTaxID, &n.IssuerName, &n.RecipientTaxID, &n.RecipientName,
		&n.TotalValue, &n.ICMSValue, &n.IPIValue, &n.FreightValue, &n.InsuranceValue,
		&n.DiscountValue, &n.OtherExpensesValue, &n.OperationNature, &n.OperationType,
		&n.Status, &n.AuthorizationProtocol, &n.AuthorizationDate,
		&n.CancellationReason, &n.CancellationDate, &n.XMLContent,
		&n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// scanInvoiceRows processa resultados de consultas que retornam múltiplas
// notas, carregando os itens de cada uma
func (r *InvoiceRepository) scanInvoiceRows(ctx context.Context, rows pgx.Rows) ([]*invoice.Invoice, error) {
	invoices := make([]*invoice.Invoice, 0)

	for rows.Next() {
		n, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler nota fiscal: %w", err)
		}
		invoices = append(invoices, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	for _, n := range invoices {
		if err := r.loadItems(ctx, n); err != nil {
			return nil, err
		}
	}

	return invoices, nil
}
