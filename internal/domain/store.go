// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// Store é uma loja conhecida localmente; Code é a chave natural vinda do legado
type Store struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func StoreCodes(stores []*Store) []string {
	codes := make([]string, 0, len(stores))
	for _, store := range stores {
		codes = append(codes, store.Code)
	}
	return codes
}

func StoreIDs(stores []*Store) []string {
	ids := make([]string, 0, len(stores))
	for _, store := range stores {
		ids = append(ids, store.ID)
	}
	return ids
}
