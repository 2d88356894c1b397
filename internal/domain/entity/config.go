package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de documento de configuração. Os documentos são heterogêneos e
// discriminados pelo campo `tipo`; no máximo um é considerado vigente por tipo
// (ou por tipo+vendedor, nos que têm vendedor).
const (
	ConfigLimiteVendedor = "limite_vendedor"
	ConfigMetaVendedor   = "meta_vendedor"
	ConfigFimExpediente  = "fim_expediente"
	ConfigSMTP           = "smtp"
	ConfigControleAcesso = "controle_acesso"
)

// LimiteVendedor teto de vendas no mês corrente para um vendedor.
type LimiteVendedor struct {
	VendedorID   string          `json:"vendedor_id"`
	VendedorNome string          `json:"vendedor_nome"`
	Limite       decimal.Decimal `json:"limite"`
}

// MetaVendedor metas diárias e semanal de um vendedor.
type MetaVendedor struct {
	VendedorID       string          `json:"vendedor_id"`
	VendedorNome     string          `json:"vendedor_nome"`
	MetaDiariaQtde   int             `json:"meta_diaria_qtde"`
	MetaDiariaValor  decimal.Decimal `json:"meta_diaria_valor"`
	MetaSemanalValor decimal.Decimal `json:"meta_semanal_valor"`
}

// FimExpediente encerramento do expediente: data de referência, horário de
// corte e se a equipe trabalha aos sábados. Datas e horas ficam como strings
// de exibição (DD/MM/YYYY e HH:MM:SS), como gravadas pelo painel.
type FimExpediente struct {
	Data           string `json:"data"`
	Hora           string `json:"hora"`
	TrabalhaSabado bool   `json:"trabalha_sabado"`
}

// ServidorSMTP credenciais do servidor usado no disparo de e-mails.
type ServidorSMTP struct {
	Host      string `json:"host"`
	Porta     int    `json:"porta"`
	Usuario   string `json:"usuario"`
	Senha     string `json:"senha"`
	Remetente string `json:"remetente"`
}

// ControleAcesso liga/desliga a restrição de horário de acesso ao sistema.
type ControleAcesso struct {
	Ativo      bool   `json:"ativo"`
	HoraInicio string `json:"hora_inicio"` // HH:MM
	HoraFim    string `json:"hora_fim"`    // HH:MM
}

// Config envelope persistido: payload discriminado por Tipo.
type Config struct {
	ID           string
	Tipo         string
	Dados        []byte // JSON do documento concreto
	CriadoEm     time.Time
	AtualizadoEm time.Time
}
