package dto

// LimiteRequest grava o limite mensal de um vendedor.
type LimiteRequest struct {
	VendedorID   string `json:"vendedor_id"`
	VendedorNome string `json:"vendedor_nome"`
	Limite       string `json:"limite"`
}

// LimiteResponse um registro de limite na listagem.
type LimiteResponse struct {
	VendedorID   string `json:"vendedor_id"`
	VendedorNome string `json:"vendedor_nome"`
	Limite       string `json:"limite"`
}

// MetaRequest grava as metas de um vendedor.
type MetaRequest struct {
	VendedorID       string `json:"vendedor_id"`
	VendedorNome     string `json:"vendedor_nome"`
	MetaDiariaQtde   string `json:"meta_diaria_qtde"`
	MetaDiariaValor  string `json:"meta_diaria_valor"`
	MetaSemanalValor string `json:"meta_semanal_valor"`
}

// MetaResponse um registro de meta na listagem.
type MetaResponse struct {
	VendedorID       string `json:"vendedor_id"`
	VendedorNome     string `json:"vendedor_nome"`
	MetaDiariaQtde   int    `json:"meta_diaria_qtde"`
	MetaDiariaValor  string `json:"meta_diaria_valor"`
	MetaSemanalValor string `json:"meta_semanal_valor"`
}

// ExpedienteRequest grava o fim de expediente vigente.
type ExpedienteRequest struct {
	Data           string `json:"data"` // DD/MM/YYYY
	Hora           string `json:"hora"` // HH:MM:SS
	TrabalhaSabado bool   `json:"trabalha_sabado"`
}

// ExpedienteResponse o fim de expediente vigente (campos vazios se não houver).
type ExpedienteResponse struct {
	Data           string `json:"data"`
	Hora           string `json:"hora"`
	TrabalhaSabado bool   `json:"trabalha_sabado"`
}

// SMTPRequest grava o servidor SMTP de disparo.
type SMTPRequest struct {
	Host      string `json:"host"`
	Porta     int    `json:"porta"`
	Usuario   string `json:"usuario"`
	Senha     string `json:"senha"`
	Remetente string `json:"remetente"`
}

// SMTPTesteRequest dispara uma mensagem de teste com as credenciais dadas.
type SMTPTesteRequest struct {
	Host         string `json:"host"`
	Porta        int    `json:"porta"`
	Usuario      string `json:"usuario"`
	Senha        string `json:"senha"`
	Remetente    string `json:"remetente"`
	Destinatario string `json:"destinatario"`
}

// AcessoRequest grava o controle de acesso por horário.
type AcessoRequest struct {
	Ativo      bool   `json:"ativo"`
	HoraInicio string `json:"hora_inicio"`
	HoraFim    string `json:"hora_fim"`
}
