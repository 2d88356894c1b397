package entity

import "time"

// Notificacao mensagem dirigida a um conjunto de usuários.
// LidoPor tem semântica de conjunto: marcar como lida duas vezes não duplica.
type Notificacao struct {
	ID         string
	Mensagem   string
	Envolvidos []string // usernames
	LidoPor    []string // usernames que já marcaram como lida
	CriadoEm   time.Time
}

// LidaPor indica se o username já consta no conjunto de leitura.
func (n *Notificacao) LidaPor(username string) bool {
	for _, u := range n.LidoPor {
		if u == username {
			return true
		}
	}
	return false
}

// RegistroLog entrada da trilha de auditoria. Data e Hora ficam como strings
// de exibição, separadas, como o painel legado gravava.
type RegistroLog struct {
	ID        string
	Descricao string
	Autor     string
	Data      string // DD/MM/YYYY
	Hora      string // HH:MM:SS
}
