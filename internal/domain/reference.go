package domain

import "github.com/vfg2006/sales-sync-api/pkg/utils"

// Categorias semânticas dos códigos de origem.
// PDV, DANFE e troca são mutuamente exclusivas.
const (
	OriginCategoryPDV      = "pdv"
	OriginCategoryDANFE    = "danfe"
	OriginCategoryExchange = "exchange"
)

// Categorias semânticas dos códigos de operação
const (
	OperationCategorySell     = "sell"
	OperationCategoryExchange = "exchange"
)

// ReferenceCode é uma linha das tabelas de referência de origem e operação
type ReferenceCode struct {
	Code        string `json:"code"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// Normalize deixa o código no formato canônico usado na comparação com os registros do legado
func (r *ReferenceCode) Normalize() {
	r.Code = utils.CanonicalNumericCode(r.Code)
}

func ReferenceCodes(refs []*ReferenceCode) []string {
	codes := make([]string, 0, len(refs))
	for _, ref := range refs {
		codes = append(codes, ref.Code)
	}
	return codes
}

// CategoryByCode indexa os códigos pela sua categoria
func CategoryByCode(refs []*ReferenceCode) map[string]string {
	categories := make(map[string]string, len(refs))
	for _, ref := range refs {
		categories[ref.Code] = ref.Category
	}
	return categories
}
