package repository

import (
	"fmt"

	"github.com/lib/pq"
)

// batchSize limita as linhas por INSERT para ficar abaixo do limite de parâmetros do Postgres
const batchSize = 1000

func chunk[T any](items []T, size int) [][]T {
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}
	return chunks
}

func execError(err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("erro ao executar a query: %w", err)
}

func nullString(value *string) interface{} {
	if value == nil {
		return nil
	}
	return *value
}
