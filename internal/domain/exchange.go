package domain

import "time"

// ExchangeRecord é um documento de troca/devolução do legado.
// Pode ser reescrito em uma nova sincronização, pois as observações são corrigidas no legado.
type ExchangeRecord struct {
	ID             string    `json:"id"`
	DocumentCode   string    `json:"document_code"`
	StoreCode      string    `json:"store_code"`
	OperationCode  string    `json:"operation_code"`
	OriginCode     string    `json:"origin_code"`
	EmployeeCode   string    `json:"employee_code"`
	DocumentNumber string    `json:"document_number"`
	NfeKey         *string   `json:"nfe_key"`
	IssueDate      time.Time `json:"issue_date"`
	Observation    string    `json:"observation"`
	NewSaleNumber  *string   `json:"new_sale_number"`
	NewSaleNfeKey  *string   `json:"new_sale_nfe_key"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ExchangeKey é a chave natural de um documento de troca
type ExchangeKey struct {
	DocumentCode string
	StoreCode    string
}

func (e *ExchangeRecord) Key() ExchangeKey {
	return ExchangeKey{
		DocumentCode: e.DocumentCode,
		StoreCode:    e.StoreCode,
	}
}

type ExchangeFilters struct {
	StoreCode string
	StartDate time.Time
	EndDate   time.Time
}
