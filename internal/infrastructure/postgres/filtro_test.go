package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFiltro_Vazio(t *testing.T) {
	f := &Filtro{}
	where, args := f.Where()
	assert.Empty(t, where)
	assert.Nil(t, args)
}

func TestFiltro_ClausulaUnica(t *testing.T) {
	f := &Filtro{}
	f.Igual("status", "Aprovada")
	where, args := f.Where()
	assert.Equal(t, " WHERE status = $1", where)
	assert.Equal(t, []any{"Aprovada"}, args)
}

func TestFiltro_CombinaComANDNaOrdemDeInsercao(t *testing.T) {
	inicio := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	f := &Filtro{}
	f.Igual("vendedor_id", "v1").
		Contem("cliente", "acme").
		MaiorIgual("criado_em", inicio).
		ContemItem("pos_vendas", "joana")

	where, args := f.Where()
	assert.Equal(t,
		" WHERE vendedor_id = $1 AND cliente ILIKE $2 AND criado_em >= $3 AND $4 = ANY(string_to_array(pos_vendas, ','))",
		where)
	assert.Equal(t, []any{"v1", "%acme%", inicio, "joana"}, args)
}

func TestFiltro_ContemEnvolveComPercentuais(t *testing.T) {
	f := &Filtro{}
	f.Contem("nome", "maria")
	_, args := f.Where()
	assert.Equal(t, []any{"%maria%"}, args)
}
