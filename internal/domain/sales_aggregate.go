package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// YearMonthLayout é o formato da chave mensal (ex: 2025-01)
const YearMonthLayout = "2006-01"

// DailySalesAggregate consolida as vendas de uma loja em um dia
type DailySalesAggregate struct {
	ID        string          `json:"id"`
	StoreID   string          `json:"store_id"`
	StoreCode string          `json:"store_code"`
	StoreName string          `json:"store_name"`
	Date      time.Time       `json:"date"`
	PDV       decimal.Decimal `json:"pdv"`
	DANFE     decimal.Decimal `json:"danfe"`
	Exchange  decimal.Decimal `json:"exchange"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ComputeTotal aplica total = danfe + pdv - troca
func (d *DailySalesAggregate) ComputeTotal() {
	d.Total = d.DANFE.Add(d.PDV).Sub(d.Exchange)
}

// MonthlySalesAggregate é sempre a soma dos totais diários do mês
type MonthlySalesAggregate struct {
	ID        string          `json:"id"`
	StoreID   string          `json:"store_id"`
	StoreCode string          `json:"store_code"`
	StoreName string          `json:"store_name"`
	YearMonth string          `json:"year_month"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// YearlySalesAggregate é sempre a soma dos totais mensais do ano
type YearlySalesAggregate struct {
	ID        string          `json:"id"`
	StoreID   string          `json:"store_id"`
	StoreCode string          `json:"store_code"`
	StoreName string          `json:"store_name"`
	Year      int             `json:"year"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ConsistencyMismatch descreve uma loja/ano em que as três camadas não fecham
type ConsistencyMismatch struct {
	StoreID      string          `json:"store_id"`
	StoreCode    string          `json:"store_code"`
	StoreName    string          `json:"store_name"`
	Year         int             `json:"year"`
	DailyTotal   decimal.Decimal `json:"daily_total"`
	MonthlyTotal decimal.Decimal `json:"monthly_total"`
	YearlyTotal  decimal.Decimal `json:"yearly_total"`
}

type SalesReportFilters struct {
	StoreCode string
	StartDate time.Time
	EndDate   time.Time
	StartYear int
	EndYear   int
}
