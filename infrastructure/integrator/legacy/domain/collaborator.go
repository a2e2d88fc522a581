package legacydomain

// Collaborator é um funcionário de loja no legado
type Collaborator struct {
	EmployeeCode    Text `json:"codigo_funcionario"`
	StoreCode       Text `json:"codigo_loja"`
	Name            Text `json:"nome"`
	JobPositionCode Text `json:"codigo_cargo"`
	Document        Text `json:"cpf"`
	Active          Text `json:"ativo"`
	AdmissionDate   Text `json:"data_admissao"`
}

func (c *Collaborator) Normalize() {
	c.EmployeeCode = Text(NormalizeCode(c.EmployeeCode.String(), 0))
	c.StoreCode = Text(NormalizeCode(c.StoreCode.String(), StoreCodeWidth))
	c.JobPositionCode = Text(NormalizeCode(c.JobPositionCode.String(), 0))
}

// Store é uma loja cadastrada no legado
type Store struct {
	Code   Text `json:"codigo"`
	Name   Text `json:"nome"`
	Active Text `json:"ativa"`
}

func (s *Store) Normalize() {
	s.Code = Text(NormalizeCode(s.Code.String(), StoreCodeWidth))
}
