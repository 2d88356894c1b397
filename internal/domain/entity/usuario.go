package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Papéis válidos para Usuario.
const (
	PapelAdmin       = "admin"
	PapelVendedor    = "vendedor"
	PapelPosVenda    = "pos_venda"
	PapelFaturamento = "faturamento"
)

// Status válidos para Usuario.
const (
	StatusAtivo     = "ativo"
	StatusInativo   = "inativo"
	StatusBloqueado = "bloqueado"
)

// PapelValido indica se o papel pertence ao conjunto fechado de papéis.
// Valores desconhecidos são rejeitados na borda, nunca aceitos silenciosamente.
func PapelValido(p string) bool {
	switch p {
	case PapelAdmin, PapelVendedor, PapelPosVenda, PapelFaturamento:
		return true
	}
	return false
}

// StatusUsuarioValido indica se o status pertence ao conjunto fechado.
func StatusUsuarioValido(s string) bool {
	switch s {
	case StatusAtivo, StatusInativo, StatusBloqueado:
		return true
	}
	return false
}

// Usuario representa uma conta do sistema (vendedor, pós-venda, admin ou faturamento).
type Usuario struct {
	ID           string
	Username     string // único
	Nome         string
	SenhaHash    string // bcrypt, nunca em claro depois de persistido
	Papel        string // admin, vendedor, pos_venda, faturamento
	Status       string // ativo, inativo, bloqueado
	Email        string
	Telefone     string
	CotaMensal   decimal.Decimal
	Foto         string // base64, opcional
	PosVendas    string // usernames separados por vírgula
	CriadoEm     time.Time
	AtualizadoEm time.Time
}

// PosVendasLista devolve os usernames de pós-venda como slice (vazio se não houver).
func (u *Usuario) PosVendasLista() []string {
	return splitCSV(u.PosVendas)
}
