package legacydomain

// SaleItem é um item de venda como devolvido pela API de integração do legado
type SaleItem struct {
	SaleCode       Text `json:"codigo_venda"`
	ItemSequence   Text `json:"sequencia_item"`
	StoreCode      Text `json:"codigo_loja"`
	EmployeeCode   Text `json:"codigo_vendedor"`
	ProductRefCode Text `json:"referencia_produto"`
	OriginCode     Text `json:"codigo_origem"`
	OperationCode  Text `json:"codigo_operacao"`
	SaleDate       Text `json:"data_venda"`
	Quantity       Text `json:"quantidade"`
	UnitPrice      Text `json:"valor_unitario"`
	TotalPrice     Text `json:"valor_total"`
}

// Normalize deixa os campos de chave na representação canônica
func (s *SaleItem) Normalize() {
	s.SaleCode = Text(NormalizeCode(s.SaleCode.String(), 0))
	s.ItemSequence = Text(NormalizeSequence(s.ItemSequence.String()))
	s.StoreCode = Text(NormalizeCode(s.StoreCode.String(), StoreCodeWidth))
	s.EmployeeCode = Text(NormalizeCode(s.EmployeeCode.String(), 0))
	s.ProductRefCode = Text(NormalizeCode(s.ProductRefCode.String(), 0))
	s.OriginCode = Text(NormalizeReferenceCode(s.OriginCode.String()))
	s.OperationCode = Text(NormalizeReferenceCode(s.OperationCode.String()))
}

// Product é o cadastro de produto do legado
type Product struct {
	ProductRefCode Text `json:"referencia"`
	ProductCode    Text `json:"codigo"`
	Section        Text `json:"secao"`
	Group          Text `json:"grupo"`
	Subgroup       Text `json:"subgrupo"`
	Brand          Text `json:"marca"`
	Description    Text `json:"descricao"`
}

func (p *Product) Normalize() {
	p.ProductRefCode = Text(NormalizeCode(p.ProductRefCode.String(), 0))
	p.ProductCode = Text(NormalizeCode(p.ProductCode.String(), 0))
}
