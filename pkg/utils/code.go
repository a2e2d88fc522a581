package utils

import "strings"

// CanonicalNumericCode remove espaços e zeros à esquerda de códigos só com dígitos ("001" e "1"
// são o mesmo código). Códigos alfanuméricos só perdem os espaços.
func CanonicalNumericCode(value string) string {
	code := strings.TrimSpace(value)
	if !isDigits(code) {
		return code
	}

	code = strings.TrimLeft(code, "0")
	if code == "" {
		return "0"
	}
	return code
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
