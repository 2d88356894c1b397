package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Status válidos para Venda.
const (
	VendaAguardando = "Aguardando"
	VendaAprovada   = "Aprovada"
	VendaFaturada   = "Faturada"
	VendaCancelada  = "Cancelada"
	VendaRefazer    = "Refazer"
	VendaFinalizada = "Finalizada"
)

// StatusVenda lista os status na ordem de exibição.
var StatusVenda = []string{
	VendaAguardando, VendaAprovada, VendaFaturada,
	VendaCancelada, VendaRefazer, VendaFinalizada,
}

// StatusVendaValido indica se o status pertence ao conjunto fechado.
func StatusVendaValido(s string) bool {
	for _, v := range StatusVenda {
		if v == s {
			return true
		}
	}
	return false
}

// Venda representa um registro de venda de um vendedor.
// ProdutoCodigo e ProdutoAvulso são mutuamente substituíveis: ou o código
// resolve no catálogo, ou a descrição avulsa é preenchida.
type Venda struct {
	ID                string
	Numero            int64 // sequencial, único depois de atribuído
	VendedorID        string
	VendedorNome      string
	Cliente           string
	TipoCliente       string
	CNPJ              string
	Endereco          string
	Cidade            string
	UF                string
	Email             string // um ou mais, separados por vírgula
	Telefone          string // idem
	ProdutoCodigo     string
	ProdutoAvulso     string
	CondicaoPagamento string
	ValorTabela       decimal.Decimal
	ValorFinal        decimal.Decimal
	ValorParcela      decimal.Decimal
	QuantidadeAcessos int
	Status            string
	PosVendas         string // usernames separados por vírgula
	Observacoes       string
	CriadoEm          time.Time
}

// PosVendasLista devolve os usernames de pós-venda como slice.
func (v *Venda) PosVendasLista() []string {
	return splitCSV(v.PosVendas)
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
