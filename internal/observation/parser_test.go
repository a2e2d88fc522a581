package observation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		newSaleNumber *string
		newSaleNfeKey *string
	}{
		{
			name:          "Número da nota descarta a sequência antes da barra",
			text:          "DEVOLUCAO NOTA(S) FISCAL(IS): 1/000054118",
			newSaleNumber: stringPtr("000054118"),
		},
		{
			name:          "Cancelamento/estorno também identifica a nota",
			text:          "CANCELAMENTO/ESTORNO DEVOLUCAO NOTA(S) FISCAL(IS): 2/000000731",
			newSaleNumber: stringPtr("000000731"),
		},
		{
			name:          "Correspondência sem diferenciar maiúsculas",
			text:          "devolucao nota(s) fiscal(is): 3/123",
			newSaleNumber: stringPtr("123"),
		},
		{
			name:          "Chave NFE isolada",
			text:          "[REFERENTE A TROCA: CHAVE: 42250112345678000190650010000541181000541180]",
			newSaleNfeKey: stringPtr("42250112345678000190650010000541181000541180"),
		},
		{
			name:          "Número e chave no mesmo texto",
			text:          "DEVOLUCAO NOTA(S) FISCAL(IS): 1/000054118 [referente a troca: chave: 4225]",
			newSaleNumber: stringPtr("000054118"),
			newSaleNfeKey: stringPtr("4225"),
		},
		{
			name: "Devolução sem troca ignora o texto",
			text: "[REFERENTE A DEVOLUÇÃO: C.O.O: 113 ECF: 001]",
		},
		{
			name: "Devolução sem troca prevalece sobre os demais padrões",
			text: "DEVOLUCAO NOTA(S) FISCAL(IS): 1/000054118 [REFERENTE A DEVOLUÇÃO: C.O.O: 113 ECF: 001] [REFERENTE A TROCA: CHAVE: 4225]",
		},
		{
			name: "Devolução sem troca sem acentuação",
			text: "[referente a devolucao: c.o.o: 9 ecf: 002] DEVOLUCAO NOTA(S) FISCAL(IS): 1/55",
		},
		{
			name: "Texto livre sem padrão",
			text: "cliente trocou o tamanho da armação",
		},
		{
			name: "Texto vazio",
			text: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Parse(tt.text)

			assert.Equal(t, tt.newSaleNumber, result.NewSaleNumber)
			assert.Equal(t, tt.newSaleNfeKey, result.NewSaleNfeKey)
		})
	}
}

func TestParse_IsDeterministic(t *testing.T) {
	text := "DEVOLUCAO NOTA(S) FISCAL(IS): 1/000054118 [REFERENTE A TROCA: CHAVE: 4225]"

	first := Parse(text)
	second := Parse(text)

	assert.Equal(t, first, second)
}
