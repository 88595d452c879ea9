package invoice

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyAccessKey       = errors.New("chave de acesso não pode ser vazia")
	ErrInvalidAccessKey     = errors.New("chave de acesso deve ter 44 caracteres")
	ErrEmptyNumber          = errors.New("número da nota não pode ser vazio")
	ErrEmptySeries          = errors.New("série da nota não pode ser vazia")
	ErrEmptyIssuerTaxID     = errors.New("CNPJ do emitente não pode ser vazio")
	ErrEmptyIssuerName      = errors.New("nome do emitente não pode ser vazio")
	ErrEmptyRecipientTaxID  = errors.New("CNPJ do destinatário não pode ser vazio")
	ErrEmptyRecipientName   = errors.New("nome do destinatário não pode ser vazio")
	ErrInvalidOperationType = errors.New("tipo de operação inválido")
	ErrNegativeAmount       = errors.New("valor monetário não pode ser negativo")
	ErrEmptyProductCode     = errors.New("código do produto não pode ser vazio")
	ErrEmptyProductName     = errors.New("descrição do produto não pode ser vazia")
	ErrEmptyNCM             = errors.New("NCM do item não pode ser vazio")
	ErrEmptyCFOP            = errors.New("CFOP do item não pode ser vazio")
	ErrEmptyUnit            = errors.New("unidade de medida não pode ser vazia")
)

// Status representa o estado da nota fiscal
type Status string

const (
	StatusPending    Status = "pending"    // Pendente de autorização
	StatusAuthorized Status = "authorized" // Autorizada pela SEFAZ
	StatusCancelled  Status = "cancelled"  // Cancelada
)

// OperationType define o tipo de operação da nota
type OperationType string

const (
	OperationInbound  OperationType = "inbound"  // Entrada
	OperationOutbound OperationType = "outbound" // Saída
)

// ParseOperationType converte uma string em OperationType
func ParseOperationType(s string) (OperationType, error) {
	switch OperationType(s) {
	case OperationInbound, OperationOutbound:
		return OperationType(s), nil
	}
	return "", ErrInvalidOperationType
}

// Item representa um item de uma nota fiscal
type Item struct {
	ID                 string          `json:"id"`
	InvoiceID          string          `json:"invoice_id"`          // ID da nota fiscal
	ItemNumber         int             `json:"item_number"`         // Posição do item na nota
	ProductCode        string          `json:"product_code"`        // Código do produto
	ProductDescription string          `json:"product_description"` // Descrição do produto
	NCM                string          `json:"ncm"`                 // Classificação fiscal
	CFOP               string          `json:"cfop"`                // Código fiscal da operação
	UnitOfMeasure      string          `json:"unit_of_measure"`     // Unidade de medida
	Quantity           decimal.Decimal `json:"quantity"`            // Quantidade
	UnitValue          decimal.Decimal `json:"unit_value"`          // Valor unitário
	TotalValue         decimal.Decimal `json:"total_value"`         // Valor total do item
	Discount           decimal.Decimal `json:"discount"`            // Desconto
}

// Invoice representa uma nota fiscal eletrônica
type Invoice struct {
	ID                    string          `json:"id"`
	AccessKey             string          `json:"access_key"`             // Chave de acesso (44 dígitos)
	Number                string          `json:"number"`                 // Número da nota
	Series                string          `json:"series"`                 // Série
	IssueDate             time.Time       `json:"issue_date"`             // Data de emissão
	EntryExitDate         time.Time       `json:"entry_exit_date"`        // Data de entrada/saída
	IssuerTaxID           string          `json:"issuer_tax_id"`          // CNPJ do emitente
	IssuerName            string          `json:"issuer_name"`            // Razão social do emitente
	RecipientTaxID        string          `json:"recipient_tax_id"`       // CNPJ do destinatário
	RecipientName         string          `json:"recipient_name"`         // Razão social do destinatário
	TotalValue            decimal.Decimal `json:"total_value"`            // Valor total da nota
	ICMSValue             decimal.Decimal `json:"icms_value"`             // Valor do ICMS
	IPIValue              decimal.Decimal `json:"ipi_value"`              // Valor do IPI
	FreightValue          decimal.Decimal `json:"freight_value"`          // Valor do frete
	InsuranceValue        decimal.Decimal `json:"insurance_value"`        // Valor do seguro
	DiscountValue         decimal.Decimal `json:"discount_value"`         // Valor do desconto
	OtherExpensesValue    decimal.Decimal `json:"other_expenses_value"`   // Outras despesas
	OperationNature       string          `json:"operation_nature"`       // Natureza da operação
	OperationType         OperationType   `json:"operation_type"`         // Entrada ou saída
	Status                Status          `json:"status"`                 // Pendente, autorizada ou cancelada
	AuthorizationProtocol *string         `json:"authorization_protocol"` // Protocolo de autorização da SEFAZ
	AuthorizationDate     *time.Time      `json:"authorization_date"`     // Data de autorização
	CancellationReason    *string         `json:"cancellation_reason"`    // Motivo do cancelamento
	CancellationDate      *time.Time      `json:"cancellation_date"`      // Data do cancelamento
	XMLContent            string          `json:"xml_content"`            // XML da nota, armazenado como recebido
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
	Items                 []Item          `json:"items"` // Itens da nota
}

// NewInvoice cria uma nova nota fiscal com status pendente
func NewInvoice(
	accessKey string,
	number string,
	series string,
	issueDate time.Time,
	entryExitDate time.Time,
	issuerTaxID string,
	issuerName string,
	recipientTaxID string,
	recipientName string,
	operationType OperationType,
) (*Invoice, error) {
	if accessKey == "" {
		return nil, ErrEmptyAccessKey
	}
	if len(accessKey) != 44 {
		return nil, ErrInvalidAccessKey
	}
	if number == "" {
		return nil, ErrEmptyNumber
	}
	if series == "" {
		return nil, ErrEmptySeries
	}
	if issuerTaxID == "" {
		return nil, ErrEmptyIssuerTaxID
	}
	if issuerName == "" {
		return nil, ErrEmptyIssuerName
	}
	if recipientTaxID == "" {
		return nil, ErrEmptyRecipientTaxID
	}
	if recipientName == "" {
		return nil, ErrEmptyRecipientName
	}
	if operationType != OperationInbound && operationType != OperationOutbound {
		return nil, ErrInvalidOperationType
	}

	now := time.Now()
	return &Invoice{
		ID:             uuid.New().String(),
		AccessKey:      accessKey,
		Number:         number,
		Series:         series,
		IssueDate:      issueDate,
		EntryExitDate:  entryExitDate,
		IssuerTaxID:    issuerTaxID,
		IssuerName:     issuerName,
		RecipientTaxID: recipientTaxID,
		RecipientName:  recipientName,
		OperationType:  operationType,
		Status:         StatusPending,
		Items:          make([]Item, 0),
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// SetAmounts define os valores monetários da nota
func (n *Invoice) SetAmounts(total, icms, ipi, freight, insurance, discount, otherExpenses decimal.Decimal) error {
	for _, v := range []decimal.Decimal{total, icms, ipi, freight, insurance, discount, otherExpenses} {
		if v.IsNegative() {
			return ErrNegativeAmount
		}
	}

	n.TotalValue = total
	n.ICMSValue = icms
	n.IPIValue = ipi
	n.FreightValue = freight
	n.InsuranceValue = insurance
	n.DiscountValue = discount
	n.OtherExpensesValue = otherExpenses
	n.UpdatedAt = time.Now()
	return nil
}

// AddItem adiciona um item à nota, numerando-o na sequência
func (n *Invoice) AddItem(
	productCode string,
	productDescription string,
	ncm string,
	cfop string,
	unitOfMeasure string,
	quantity decimal.Decimal,
	unitValue decimal.Decimal,
	totalValue decimal.Decimal,
	discount decimal.Decimal,
) error {
	if productCode == "" {
		return ErrEmptyProductCode
	}
	if productDescription == "" {
		return ErrEmptyProductName
	}
	if ncm == "" {
		return ErrEmptyNCM
	}
	if cfop == "" {
		return ErrEmptyCFOP
	}
	if unitOfMeasure == "" {
		return ErrEmptyUnit
	}
	for _, v := range []decimal.Decimal{quantity, unitValue, totalValue, discount} {
		if v.IsNegative() {
			return ErrNegativeAmount
		}
	}

	n.Items = append(n.Items, Item{
		ID:                 uuid.New().String(),
		InvoiceID:          n.ID,
		ItemNumber:         len(n.Items) + 1,
		ProductCode:        productCode,
		ProductDescription: productDescription,
		NCM:                ncm,
		CFOP:               cfop,
		UnitOfMeasure:      unitOfMeasure,
		Quantity:           quantity,
		UnitValue:          unitValue,
		TotalValue:         totalValue,
		Discount:           discount,
	})
	n.UpdatedAt = time.Now()
	return nil
}

// ReplaceItems descarta todos os itens atuais e atribui os novos à nota
func (n *Invoice) ReplaceItems(items []Item) {
	n.Items = make([]Item, 0, len(items))
	for i, item := range items {
		item.InvoiceID = n.ID
		item.ItemNumber = i + 1
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		n.Items = append(n.Items, item)
	}
	n.UpdatedAt = time.Now()
}

// ApplyUpdate sobrescreve os campos editáveis da nota com os valores de outra.
// A chave de acesso, o ID e a data de criação são preservados; os itens são
// substituídos por completo. Não há verificação de estado terminal: atualizar
// uma nota já autorizada ou cancelada sobrescreve seus campos fiscais.
func (n *Invoice) ApplyUpdate(updated *Invoice) {
	n.Number = updated.Number
	n.Series = updated.Series
	n.IssueDate = updated.IssueDate
	n.EntryExitDate = updated.EntryExitDate
	n.IssuerTaxID = updated.IssuerTaxID
	n.IssuerName = updated.IssuerName
	n.RecipientTaxID = updated.RecipientTaxID
	n.RecipientName = updated.RecipientName
	n.TotalValue = updated.TotalValue
	n.ICMSValue = updated.ICMSValue
	n.IPIValue = updated.IPIValue
	n.FreightValue = updated.FreightValue
	n.InsuranceValue = updated.InsuranceValue
	n.DiscountValue = updated.DiscountValue
	n.OtherExpensesValue = updated.OtherExpensesValue
	n.OperationNature = updated.OperationNature
	n.OperationType = updated.OperationType
	n.XMLContent = updated.XMLContent
	n.ReplaceItems(updated.Items)
	n.UpdatedAt = time.Now()
}

// Authorize marca a nota como autorizada e registra o protocolo da SEFAZ.
// Não rejeita notas já autorizadas ou canceladas; uma nova autorização
// sobrescreve o protocolo anterior.
func (n *Invoice) Authorize(protocol string) {
	now := time.Now()
	n.Status = StatusAuthorized
	n.AuthorizationProtocol = &protocol
	n.AuthorizationDate = &now
	n.UpdatedAt = now
}

// Cancel marca a nota como cancelada e registra o motivo.
// Assim como Authorize, não há guarda contra cancelar uma nota já
// autorizada ou cancelada.
func (n *Invoice) Cancel(reason string) {
	now := time.Now()
	n.Status = StatusCancelled
	n.CancellationReason = &reason
	n.CancellationDate = &now
	n.UpdatedAt = now
}
