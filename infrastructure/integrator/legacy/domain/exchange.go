package legacydomain

// ExchangeDocument é um documento de troca/devolução do legado
type ExchangeDocument struct {
	DocumentCode   Text `json:"codigo_documento"`
	StoreCode      Text `json:"codigo_loja"`
	OperationCode  Text `json:"codigo_operacao"`
	OriginCode     Text `json:"codigo_origem"`
	EmployeeCode   Text `json:"codigo_vendedor"`
	DocumentNumber Text `json:"numero_documento"`
	NfeKey         Text `json:"chave_nfe"`
	IssueDate      Text `json:"data_emissao"`
	Observation    Text `json:"observacao"`
}

func (e *ExchangeDocument) Normalize() {
	e.DocumentCode = Text(NormalizeCode(e.DocumentCode.String(), 0))
	e.StoreCode = Text(NormalizeCode(e.StoreCode.String(), StoreCodeWidth))
	e.OperationCode = Text(NormalizeReferenceCode(e.OperationCode.String()))
	e.OriginCode = Text(NormalizeReferenceCode(e.OriginCode.String()))
	e.EmployeeCode = Text(NormalizeCode(e.EmployeeCode.String(), 0))
	e.DocumentNumber = Text(NormalizeCode(e.DocumentNumber.String(), 0))
	e.NfeKey = Text(NormalizeCode(e.NfeKey.String(), 0))
}
