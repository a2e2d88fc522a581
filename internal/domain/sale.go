package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRecord é um item de venda espelhado do legado. Nunca é alterado depois de gravado.
type SaleRecord struct {
	ID             string          `json:"id"`
	SaleCode       string          `json:"sale_code"`
	ItemSequence   string          `json:"item_sequence"`
	StoreCode      string          `json:"store_code"`
	EmployeeCode   string          `json:"employee_code"`
	ProductRefCode string          `json:"product_ref_code"`
	OriginCode     string          `json:"origin_code"`
	OperationCode  string          `json:"operation_code"`
	SaleDate       time.Time       `json:"sale_date"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	TotalPrice     decimal.Decimal `json:"total_price"`
	CreatedAt      time.Time       `json:"created_at"`
}

// SaleKey é a chave natural de um item de venda
type SaleKey struct {
	SaleCode       string
	ProductRefCode string
	ItemSequence   string
}

func (s *SaleRecord) Key() SaleKey {
	return SaleKey{
		SaleCode:       s.SaleCode,
		ProductRefCode: s.ProductRefCode,
		ItemSequence:   s.ItemSequence,
	}
}

// Product é o cadastro de produto; a primeira sincronização que o grava prevalece
type Product struct {
	ID             string    `json:"id"`
	ProductRefCode string    `json:"product_ref_code"`
	ProductCode    string    `json:"product_code"`
	Section        string    `json:"section"`
	Group          string    `json:"group"`
	Subgroup       string    `json:"subgroup"`
	Brand          string    `json:"brand"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
}
