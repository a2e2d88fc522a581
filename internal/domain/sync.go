package domain

import "time"

type SyncDomain string

const (
	SyncDomainSales         SyncDomain = "sales"
	SyncDomainExchanges     SyncDomain = "exchanges"
	SyncDomainCollaborators SyncDomain = "collaborators"
	SyncDomainStores        SyncDomain = "stores"
)

var syncDomains = map[string]SyncDomain{
	string(SyncDomainSales):         SyncDomainSales,
	string(SyncDomainExchanges):     SyncDomainExchanges,
	string(SyncDomainCollaborators): SyncDomainCollaborators,
	string(SyncDomainStores):        SyncDomainStores,
}

func ParseSyncDomain(value string) (SyncDomain, bool) {
	domain, ok := syncDomains[value]
	return domain, ok
}

// SyncRunResult é o relatório de uma execução de sincronização. Não é persistido.
type SyncRunResult struct {
	Domain          SyncDomain `json:"domain"`
	Created         int        `json:"created"`
	Updated         int        `json:"updated"`
	Skipped         int        `json:"skipped"`
	ProcessedAt     time.Time  `json:"processed_at"`
	PeriodStart     time.Time  `json:"period_start"`
	PeriodEnd       time.Time  `json:"period_end"`
	StoresProcessed int        `json:"stores_processed"`
}

// Period é um intervalo de datas fechado nas duas pontas
type Period struct {
	Start time.Time
	End   time.Time
}

// DateOnly descarta horário e fuso, mantendo apenas a data civil
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func NewPeriod(start, end time.Time) Period {
	return Period{Start: DateOnly(start), End: DateOnly(end)}
}

// Days retorna a quantidade de dias do período, contando as duas pontas
func (p Period) Days() int {
	if p.End.Before(p.Start) {
		return 0
	}
	return int(p.End.Sub(p.Start).Hours()/24) + 1
}

func (p Period) Contains(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(p.Start) && !d.After(p.End)
}

// Months lista os meses (yyyy-mm) tocados pelo período
func (p Period) Months() []string {
	months := make([]string, 0)
	cursor := time.Date(p.Start.Year(), p.Start.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cursor.After(p.End) {
		months = append(months, cursor.Format(YearMonthLayout))
		cursor = cursor.AddDate(0, 1, 0)
	}
	return months
}

// Years lista os anos tocados pelo período
func (p Period) Years() []int {
	years := make([]int, 0)
	for year := p.Start.Year(); year <= p.End.Year(); year++ {
		years = append(years, year)
	}
	return years
}

// MonthPeriod retorna o primeiro e o último dia do mês yyyy-mm
func MonthPeriod(yearMonth string) (Period, error) {
	first, err := time.Parse(YearMonthLayout, yearMonth)
	if err != nil {
		return Period{}, err
	}
	return Period{Start: first, End: first.AddDate(0, 1, -1)}, nil
}

func YearPeriod(year int) Period {
	return Period{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}
