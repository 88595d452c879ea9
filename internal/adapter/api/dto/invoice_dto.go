package dto

import (
	"time"

	"github.com/hugohenrick/notas-fiscais-api/internal/domain/invoice"
	"github.com/shopspring/decimal"
)

// InvoiceItemRequest representa a requisição de item de nota fiscal
type InvoiceItemRequest struct {
	ProductCode        string          `json:"product_code" binding:"required"`
	ProductDescription string          `json:"product_description" binding:"required"`
	NCM                string          `json:"ncm" binding:"required"`
	CFOP               string          `json:"cfop" binding:"required"`
	UnitOfMeasure      string          `json:"unit_of_measure" binding:"required"`
	Quantity           decimal.Decimal `json:"quantity"`
	UnitValue          decimal.Decimal `json:"unit_value"`
	TotalValue         decimal.Decimal `json:"total_value"`
	Discount           decimal.Decimal `json:"discount"`
}

// InvoiceRequest representa a requisição de criação ou atualização de nota fiscal
type InvoiceRequest struct {
	AccessKey          string                `json:"access_key" binding:"required,len=44"`
	Number             string                `json:"number" binding:"required"`
	Series             string                `json:"series" binding:"required"`
	IssueDate          time.Time             `json:"issue_date" binding:"required"`
	EntryExitDate      time.Time             `json:"entry_exit_date"`
	IssuerTaxID        string                `json:"issuer_tax_id" binding:"required"`
	IssuerName         string                `json:"issuer_name" binding:"required"`
	RecipientTaxID     string                `json:"recipient_tax_id" binding:"required"`
	RecipientName      string                `json:"recipient_name" binding:"required"`
	TotalValue         decimal.Decimal       `json:"total_value"`
	ICMSValue          decimal.Decimal       `json:"icms_value"`
	IPIValue           decimal.Decimal       `json:"ipi_value"`
	FreightValue       decimal.Decimal       `json:"freight_value"`
	InsuranceValue     decimal.Decimal       `json:"insurance_value"`
	DiscountValue      decimal.Decimal       `json:"discount_value"`
	OtherExpensesValue decimal.Decimal       `json:"other_expenses_value"`
	OperationNature    string                `json:"operation_nature"`
	OperationType      invoice.OperationType `json:"operation_type" binding:"required"`
	XMLContent         string                `json:"xml_content"`
	Items              []InvoiceItemRequest  `json:"items"`
}

// AuthorizationRequest representa a requisição de autorização de nota fiscal
type AuthorizationRequest struct {
	Protocol string `json:"protocol" binding:"required"`
}

// CancellationRequest representa a requisição de cancelamento de nota fiscal
type CancellationRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// InvoiceItemResponse representa a resposta de item de nota fiscal
type InvoiceItemResponse struct {
	ID                 string          `json:"id"`
	InvoiceID          string          `json:"invoice_id"`
	ItemNumber         int             `json:"item_number"`
	ProductCode        string          `json:"product_code"`
	ProductDescription string          `json:"product_description"`
	NCM                string          `json:"ncm"`
	CFOP               string          `json:"cfop"`
	UnitOfMeasure      string          `json:"unit_of_measure"`
	Quantity           decimal.Decimal `json:"quantity"`
	UnitValue          decimal.Decimal `json:"unit_value"`
	TotalValue         decimal.Decimal `json:"total_value"`
	Discount           decimal.Decimal `json:"discount"`
}

// InvoiceResponse representa a resposta de nota fiscal
type InvoiceResponse struct {
	ID                    string                `json:"id"`
	AccessKey             string                `json:"access_key"`
	Number                string                `json:"number"`
	Series                string                `json:"series"`
	IssueDate             time.Time             `json:"issue_date"`
	EntryExitDate         time.Time             `json:"entry_exit_date"`
	IssuerTaxID           string                `json:"issuer_tax_id"`
	IssuerName            string                `json:"issuer_name"`
	RecipientTaxID        string                `json:"recipient_tax_id"`
	RecipientName         string                `json:"recipient_name"`
	TotalValue            decimal.Decimal       `json:"total_value"`
	ICMSValue             decimal.Decimal       `json:"icms_value"`
	IPIValue              decimal.Decimal       `json:"ipi_value"`
	FreightValue          decimal.Decimal       `json:"freight_value"`
	InsuranceValue        decimal.Decimal       `json:"insurance_value"`
	DiscountValue         decimal.Decimal       `json:"discount_value"`
	OtherExpensesValue    decimal.Decimal       `json:"other_expenses_value"`
	OperationNature       string                `json:"operation_nature"`
	OperationType         invoice.OperationType `json:"operation_type"`
	Status                invoice.Status        `json:"status"`
	AuthorizationProtocol *string               `json:"authorization_protocol,omitempty"`
	AuthorizationDate     *time.Time            `json:"authorization_date,omitempty"`
	CancellationReason    *string               `json:"cancellation_reason,omitempty"`
	CancellationDate      *time.Time            `json:"cancellation_date,omitempty"`
	XMLContent            string                `json:"xml_content,omitempty"`
	CreatedAt             time.Time             `json:"created_at"`
	UpdatedAt             time.Time             `json:"updated_at"`
	Items                 []InvoiceItemResponse `json:"items"`
}

// PeriodTotalResponse representa a resposta do total de um período
type PeriodTotalResponse struct {
	Start         time.Time             `json:"start"`
	End           time.Time             `json:"end"`
	OperationType invoice.OperationType `json:"operation_type"`
	Total         decimal.Decimal       `json:"total"`
}

// ToInvoice converte a requisição em uma nota fiscal do domínio
func ToInvoice(req *InvoiceRequest) (*invoice.Invoice, error) {
	n, err := invoice.NewInvoice(
		req.AccessKey,
		req.Number,
		req.Series,
		req.IssueDate,
		req.EntryExitDate,
		req.IssuerTaxID,
		req.IssuerName,
		req.RecipientTaxID,
		req.RecipientName,
		req.OperationType,
	)
	if err != nil {
		return nil, err
	}

	if err := n.SetAmounts(
		req.TotalValue,
		req.ICMSValue,
		req.IPIValue,
		req.FreightValue,
		req.InsuranceValue,
		req.DiscountValue,
		req.OtherExpensesValue,
	); err != nil {
		return nil, err
	}

	n.OperationNature = req.OperationNature
	n.XMLContent = req.XMLContent

	for _, item := range req.Items {
		if err := n.AddItem(
			item.ProductCode,
			item.ProductDescription,
			item.NCM,
			item.CFOP,
			item.UnitOfMeasure,
			item.Quantity,
			item.UnitValue,
			item.TotalValue,
			item.Discount,
		); err != nil {
			return nil, err
		}
	}

	return n, nil
}

// ToInvoiceResponse converte uma nota fiscal do domínio para DTO
func ToInvoiceResponse(n *invoice.Invoice) *InvoiceResponse {
	items := make([]InvoiceItemResponse, len(n.Items))
	for i, item := range n.Items {
		items[i] = InvoiceItemResponse{
			ID:                 item.ID,
			InvoiceID:          item.InvoiceID,
			ItemNumber:         item.ItemNumber,
			ProductCode:        item.ProductCode,
			ProductDescription: item.ProductDescription,
			NCM:                item.NCM,
			CFOP:               item.CFOP,
			UnitOfMeasure:      item.UnitOfMeasure,
			Quantity:           item.Quantity,
			UnitValue:          item.UnitValue,
			TotalValue:         item.TotalValue,
			Discount:           item.Discount,
		}
	}

	return &InvoiceResponse{
		ID:                    n.ID,
		AccessKey:             n.AccessKey,
		Number:                n.Number,
		Series:                n.Series,
		IssueDate:             n.IssueDate,
		EntryExitDate:         n.EntryExitDate,
		IssuerTaxID:           n.IssuerTaxID,
		IssuerName:            n.IssuerName,
		RecipientTaxID:        n.RecipientTaxID,
		RecipientName:         n.RecipientName,
		TotalValue:            n.TotalValue,
		ICMSValue:             n.ICMSValue,
		IPIValue:              n.IPIValue,
		FreightValue:          n.FreightValue,
		InsuranceValue:        n.InsuranceValue,
		DiscountValue:         n.DiscountValue,
		OtherExpensesValue:    n.OtherExpensesValue,
		OperationNature:       n.OperationNature,
		OperationType:         n.OperationType,
		Status:                n.Status,
		AuthorizationProtocol: n.AuthorizationProtocol,
		AuthorizationDate:     n.AuthorizationDate,
		CancellationReason:    n.CancellationReason,
		CancellationDate:      n.CancellationDate,
		XMLContent:            n.XMLContent,
		CreatedAt:             n.CreatedAt,
		UpdatedAt:             n.UpdatedAt,
		Items:                 items,
	}
}

// ToInvoiceListResponse converte uma lista de notas fiscais para DTO
func ToInvoiceListResponse(invoices []*invoice.Invoice) []InvoiceResponse {
	responses := make([]InvoiceResponse, len(invoices))
	for i, n := range invoices {
		responses[i] = *ToInvoiceResponse(n)
	}
	return responses
}
