package dto

// CriarNotificacaoRequest entrada para criar uma notificação.
type CriarNotificacaoRequest struct {
	Mensagem   string   `json:"mensagem"`
	Envolvidos []string `json:"envolvidos"`
}

// NotificacaoResponse saída de uma notificação.
type NotificacaoResponse struct {
	ID         string   `json:"id"`
	Mensagem   string   `json:"mensagem"`
	Envolvidos []string `json:"envolvidos"`
	LidoPor    []string `json:"lido_por"`
	Lida       bool     `json:"lida"` // para o usuário consultado
	CriadoEm   string   `json:"criado_em"`
}

// RegistroLogResponse entrada da trilha de auditoria.
type RegistroLogResponse struct {
	Descricao string `json:"descricao"`
	Autor     string `json:"autor"`
	Data      string `json:"data"`
	Hora      string `json:"hora"`
}
