// Package validar reúne as checagens de campo usadas nos endpoints de
// escrita. São funções puras, invocadas em ordem fixa pelo caso de uso; a
// primeira falha interrompe a cadeia e vira a única mensagem de erro da
// resposta (sem agregação de múltiplos erros).
package validar

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reEmail    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	reTelefone = regexp.MustCompile(`^\+?[0-9()\s\-]+$`)
)

// TiposClienteBase tipos de cliente sempre aceitos; tipos extras podem vir
// da configuração.
var TiposClienteBase = []string{"Verde", "Empresa"}

// Email valida a sintaxe de um endereço de e-mail.
func Email(s string) bool {
	return reEmail.MatchString(strings.TrimSpace(s))
}

// Emails valida uma lista; todos precisam passar individualmente.
func Emails(lista []string) bool {
	for _, e := range lista {
		if !Email(e) {
			return false
		}
	}
	return true
}

// Telefone valida a sintaxe de um telefone: apenas dígitos, espaços,
// parênteses, hífens e um + inicial, com 8 a 13 dígitos.
func Telefone(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || !reTelefone.MatchString(s) {
		return false
	}
	digitos := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digitos++
		}
	}
	return digitos >= 8 && digitos <= 13
}

// Telefones valida uma lista e devolve a posição da primeira falha
// (para compor a mensagem de erro); -1 quando todos passam.
func Telefones(lista []string) (bool, int) {
	for i, t := range lista {
		if !Telefone(t) {
			return false, i
		}
	}
	return true, -1
}

// TipoCliente verifica a pertinência ao conjunto base mais os tipos extras
// configurados.
func TipoCliente(s string, extras []string) bool {
	for _, t := range TiposClienteBase {
		if s == t {
			return true
		}
	}
	for _, t := range extras {
		if s == t {
			return true
		}
	}
	return false
}

// Numero verifica se a string representa um número. Aceita vírgula como
// separador decimal, como digitado nos formulários.
func Numero(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	s = strings.ReplaceAll(s, ",", ".")
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// NormalizarNumero aplica o default dos campos numéricos opcionais:
// vazio vira "0". Campos obrigatórios não passam por aqui.
func NormalizarNumero(s string) string {
	if strings.TrimSpace(s) == "" {
		return "0"
	}
	return strings.TrimSpace(s)
}
