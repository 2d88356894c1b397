// Package mail dispara e-mails via SMTP com as credenciais gravadas no
// painel (ou informadas no teste de conexão). Repasse direto, sem fila e
// sem retry: falha de rede propaga ao chamador.
package mail

import (
	"context"
	"fmt"
	"time"

	gomail "gopkg.in/gomail.v2"

	"github.com/jhoicas/vendas-api/internal/domain/entity"
)

// GomailSender implementa a porta usecase.Mailer com gomail (SSL).
type GomailSender struct {
	timeout time.Duration
}

// NewGomailSender constrói o sender com o timeout de conexão configurado.
func NewGomailSender(timeoutSeconds int) *GomailSender {
	if timeoutSeconds <= 0 {
		timeoutSeconds = 10
	}
	return &GomailSender{timeout: time.Duration(timeoutSeconds) * time.Second}
}

// EnviarTeste abre conexão SSL com o servidor informado e envia uma
// mensagem de verificação ao destinatário.
func (s *GomailSender) EnviarTeste(ctx context.Context, srv entity.ServidorSMTP, destinatario string) error {
	d := gomail.NewDialer(srv.Host, srv.Porta, srv.Usuario, srv.Senha)
	d.SSL = true

	remetente := srv.Remetente
	if remetente == "" {
		remetente = srv.Usuario
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", remetente)
	msg.SetHeader("To", destinatario)
	msg.SetHeader("Subject", "Teste de conexão SMTP")
	msg.SetBody("text/plain", "Mensagem de teste enviada pelo painel de vendas.")

	// gomail não aceita context; o deadline fica por conta do timeout do
	// dial e do prazo da própria requisição.
	errCh := make(chan error, 1)
	go func() { errCh <- d.DialAndSend(msg) }()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("smtp: %w", err)
		}
		return nil
	case <-time.After(s.timeout):
		return fmt.Errorf("smtp: tempo esgotado após %s", s.timeout)
	case <-ctx.Done():
		return ctx.Err()
	}
}
