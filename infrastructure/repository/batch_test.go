package repository

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestChunk(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		size  int
		want  [][]int
	}{
		{name: "Lista vazia", items: nil, size: 2, want: [][]int{}},
		{name: "Divisão exata", items: []int{1, 2, 3, 4}, size: 2, want: [][]int{{1, 2}, {3, 4}}},
		{name: "Último lote parcial", items: []int{1, 2, 3}, size: 2, want: [][]int{{1, 2}, {3}}},
		{name: "Lote maior que a lista", items: []int{1}, size: batchSize, want: [][]int{{1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, chunk(tt.items, tt.size))
		})
	}
}

func TestExecError(t *testing.T) {
	pqErr := &pq.Error{Code: "23505", Message: "duplicate key"}

	err := execError(pqErr)
	assert.Contains(t, err.Error(), "código: 23505")
	assert.ErrorIs(t, err, pqErr)

	err = execError(errors.New("conexão perdida"))
	assert.Contains(t, err.Error(), "erro ao executar a query")
}

func TestNullString(t *testing.T) {
	value := "35250112345678000199550010000000011000000010"

	assert.Nil(t, nullString(nil))
	assert.Equal(t, value, nullString(&value))
}
