package validar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/vendas-api/internal/domain/validar"
)

func TestEmail(t *testing.T) {
	validos := []string{
		"maria@empresa.com.br",
		"jose.silva+vendas@dominio.io",
		"a@b.co",
	}
	invalidos := []string{
		"", "maria", "maria@", "@empresa.com", "maria@empresa",
		"maria empresa@dominio.com", "maria@dominio.c",
	}
	for _, e := range validos {
		assert.True(t, validar.Email(e), "deveria aceitar %q", e)
	}
	for _, e := range invalidos {
		assert.False(t, validar.Email(e), "deveria rejeitar %q", e)
	}
}

func TestEmails_TodosPrecisamPassar(t *testing.T) {
	assert.True(t, validar.Emails([]string{"a@b.com", "c@d.com"}))
	assert.False(t, validar.Emails([]string{"a@b.com", "quebrado"}))
	assert.True(t, validar.Emails(nil), "lista vazia passa")
}

func TestTelefone(t *testing.T) {
	validos := []string{
		"(11) 98765-4321",
		"11987654321",
		"+55 11 98765-4321",
		"3234-5678",
	}
	invalidos := []string{
		"", "abc", "123", "(11) 9876x-4321", "123456789012345678",
	}
	for _, tel := range validos {
		assert.True(t, validar.Telefone(tel), "deveria aceitar %q", tel)
	}
	for _, tel := range invalidos {
		assert.False(t, validar.Telefone(tel), "deveria rejeitar %q", tel)
	}
}

func TestTelefones_PosicaoDaPrimeiraFalha(t *testing.T) {
	ok, pos := validar.Telefones([]string{"(11) 98765-4321", "xx", "yy"})
	assert.False(t, ok)
	assert.Equal(t, 1, pos, "a posição reportada é a da primeira falha")

	ok, pos = validar.Telefones([]string{"(11) 98765-4321", "3234-5678"})
	assert.True(t, ok)
	assert.Equal(t, -1, pos)
}

func TestTipoCliente(t *testing.T) {
	assert.True(t, validar.TipoCliente("Verde", nil))
	assert.True(t, validar.TipoCliente("Empresa", nil))
	assert.False(t, validar.TipoCliente("Roxo", nil))
	assert.True(t, validar.TipoCliente("Roxo", []string{"Roxo"}), "tipos extras configurados valem")
	assert.False(t, validar.TipoCliente("verde", nil), "comparação é exata")
}

func TestNumero(t *testing.T) {
	assert.True(t, validar.Numero("0"))
	assert.True(t, validar.Numero("1234.56"))
	assert.True(t, validar.Numero("1234,56"), "vírgula decimal de formulário")
	assert.True(t, validar.Numero(" 42 "))
	assert.False(t, validar.Numero(""))
	assert.False(t, validar.Numero("abc"))
	assert.False(t, validar.Numero("12a"))
}

func TestNormalizarNumero(t *testing.T) {
	assert.Equal(t, "0", validar.NormalizarNumero(""))
	assert.Equal(t, "0", validar.NormalizarNumero("   "))
	assert.Equal(t, "15", validar.NormalizarNumero(" 15 "))
}
