package synchronizing

// Classification é o resultado da comparação de um lote com as chaves já gravadas
type Classification[R any] struct {
	New        []R // chave ausente no banco
	Existing   []R // chave já gravada
	Duplicated []R // chave repetida dentro do próprio lote; a primeira ocorrência prevalece
}

// Skipped conta os registros que não seguem para gravação em domínios somente de inserção
func (c Classification[R]) Skipped() int {
	return len(c.Existing) + len(c.Duplicated)
}

// UniqueKeys retorna as chaves distintas do lote, na ordem em que aparecem,
// para a consulta de existência em uma única ida ao banco
func UniqueKeys[K comparable, R any](batch []R, keyOf func(R) K) []K {
	seen := make(map[K]struct{}, len(batch))
	keys := make([]K, 0, len(batch))
	for _, record := range batch {
		key := keyOf(record)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	return keys
}

// Classify separa o lote em novos, existentes e duplicados usando apenas a chave natural
func Classify[K comparable, R any](batch []R, keyOf func(R) K, existing map[K]struct{}) Classification[R] {
	result := Classification[R]{
		New:        make([]R, 0, len(batch)),
		Existing:   make([]R, 0),
		Duplicated: make([]R, 0),
	}

	seen := make(map[K]struct{}, len(batch))
	for _, record := range batch {
		key := keyOf(record)
		if _, ok := seen[key]; ok {
			result.Duplicated = append(result.Duplicated, record)
			continue
		}
		seen[key] = struct{}{}

		if _, ok := existing[key]; ok {
			result.Existing = append(result.Existing, record)
			continue
		}
		result.New = append(result.New, record)
	}

	return result
}
