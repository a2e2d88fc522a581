// Package observation extrai o vínculo de revenda do texto livre das trocas do legado
package observation

import "regexp"

// Linkage aponta a venda nova gerada a partir de uma troca. Campos não encontrados ficam nil.
type Linkage struct {
	NewSaleNumber *string
	NewSaleNfeKey *string
}

type rule struct {
	name    string
	pattern *regexp.Regexp
	// apply recebe os grupos capturados e devolve true quando a avaliação deve parar
	apply func(match []string, result *Linkage) bool
}

// A ordem da lista é a precedência: a regra de devolução simples descarta qualquer outro vínculo
var rules = []rule{
	{
		name:    "devolucao-sem-troca",
		pattern: regexp.MustCompile(`(?i)\[\s*REFERENTE\s+A\s+DEVOLU[CÇ][AÃ]O\s*:\s*C\.?\s*O\.?\s*O\.?\s*:`),
		apply: func(_ []string, result *Linkage) bool {
			*result = Linkage{}
			return true
		},
	},
	{
		name:    "numero-nota",
		pattern: regexp.MustCompile(`(?i)(?:CANCELAMENTO\s*/\s*ESTORNO\s+)?DEVOLU[CÇ][AÃ]O\s+NOTA\(S\)\s+FISCAL\(IS\)\s*:\s*(?:\d+\s*/\s*)?(\d+)`),
		apply: func(match []string, result *Linkage) bool {
			result.NewSaleNumber = stringPtr(match[1])
			return false
		},
	},
	{
		name:    "chave-nfe",
		pattern: regexp.MustCompile(`(?i)\[\s*REFERENTE\s+A\s+TROCA\s*:\s*CHAVE\s*:\s*(\d+)\s*\]`),
		apply: func(match []string, result *Linkage) bool {
			result.NewSaleNfeKey = stringPtr(match[1])
			return false
		},
	},
}

// Parse aplica as regras em ordem. Texto sem correspondência resulta em vínculo vazio, nunca em erro.
func Parse(text string) Linkage {
	var result Linkage
	if text == "" {
		return result
	}

	for _, r := range rules {
		match := r.pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		if r.apply(match, &result) {
			break
		}
	}

	return result
}

func stringPtr(s string) *string {
	return &s
}
