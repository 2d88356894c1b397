package entity

import "github.com/shopspring/decimal"

// CondicaoPagamento uma opção de pagamento configurada para um produto.
type CondicaoPagamento struct {
	Tipo         string          `json:"tipo"` // ex.: "avista", "parcelado", "boleto"
	ValorTotal   decimal.Decimal `json:"valor_total"`
	Parcelas     int             `json:"parcelas"`
	ValorParcela decimal.Decimal `json:"valor_parcela"`
}

// Produto item do catálogo, identificado pelo código.
type Produto struct {
	Codigo    string // chave única
	Nome      string
	Condicoes []CondicaoPagamento
}

// CondicaoValida indica se o rótulo de condição existe entre as opções do produto.
func (p *Produto) CondicaoValida(tipo string) bool {
	for _, c := range p.Condicoes {
		if c.Tipo == tipo {
			return true
		}
	}
	return false
}
