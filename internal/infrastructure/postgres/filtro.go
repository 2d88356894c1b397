package postgres

import (
	"fmt"
	"strings"
)

// Filtro acumula cláusulas de busca combinadas com AND explícito, no lugar
// da montagem condicional de WHERE espalhada pelos repositórios. Cada
// cláusula numera seu placeholder na ordem de inserção.
type Filtro struct {
	clausulas []string
	args      []any
}

// Igual adiciona comparação exata (enums, chaves).
func (f *Filtro) Igual(coluna string, valor any) *Filtro {
	f.clausulas = append(f.clausulas, fmt.Sprintf("%s = $%d", coluna, len(f.args)+1))
	f.args = append(f.args, valor)
	return f
}

// Contem adiciona busca por substring sem distinção de caixa.
func (f *Filtro) Contem(coluna, termo string) *Filtro {
	f.clausulas = append(f.clausulas, fmt.Sprintf("%s ILIKE $%d", coluna, len(f.args)+1))
	f.args = append(f.args, "%"+termo+"%")
	return f
}

// ContemItem adiciona pertencimento a uma lista separada por vírgula
// gravada como texto (ex.: usernames de pós-venda).
func (f *Filtro) ContemItem(coluna, item string) *Filtro {
	f.clausulas = append(f.clausulas, fmt.Sprintf("$%d = ANY(string_to_array(%s, ','))", len(f.args)+1, coluna))
	f.args = append(f.args, item)
	return f
}

// MaiorIgual e MenorIgual delimitadores de faixa (datas, valores).
func (f *Filtro) MaiorIgual(coluna string, valor any) *Filtro {
	f.clausulas = append(f.clausulas, fmt.Sprintf("%s >= $%d", coluna, len(f.args)+1))
	f.args = append(f.args, valor)
	return f
}

func (f *Filtro) MenorIgual(coluna string, valor any) *Filtro {
	f.clausulas = append(f.clausulas, fmt.Sprintf("%s <= $%d", coluna, len(f.args)+1))
	f.args = append(f.args, valor)
	return f
}

// Where devolve a cláusula completa (com o prefixo " WHERE ") e os
// argumentos na ordem dos placeholders; vazio quando não há cláusulas.
func (f *Filtro) Where() (string, []any) {
	if len(f.clausulas) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(f.clausulas, " AND "), f.args
}
