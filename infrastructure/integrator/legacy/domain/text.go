package legacydomain

import (
	"bytes"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-sync-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Text aceita string, número ou null no JSON do legado e guarda o valor como texto.
// Valores numéricos e datas permanecem como texto até o mapeamento de cada registro.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}

	*t = Text(data)
	return nil
}

func (t Text) String() string {
	return strings.TrimSpace(string(t))
}

// StoreCodeWidth é a largura canônica dos códigos de loja (ex: 000001)
const StoreCodeWidth = 6

// NormalizeCode remove espaços e, para códigos numéricos com largura definida,
// ajusta os zeros à esquerda para a largura canônica
func NormalizeCode(value string, width int) string {
	code := strings.TrimSpace(value)
	if width <= 0 || !isDigits(code) {
		return code
	}

	code = strings.TrimLeft(code, "0")
	if len(code) >= width {
		return code
	}
	return strings.Repeat("0", width-len(code)) + code
}

// NormalizeSequence remove zeros à esquerda de sequências numéricas ("001" e "1" são o mesmo item)
func NormalizeSequence(value string) string {
	return utils.CanonicalNumericCode(value)
}

// NormalizeReferenceCode deixa códigos de origem e operação no mesmo formato das tabelas de referência
func NormalizeReferenceCode(value string) string {
	return utils.CanonicalNumericCode(value)
}

func isDigits(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
