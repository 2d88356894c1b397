package usecase

import (
	"context"

	"github.com/jhoicas/vendas-api/internal/domain/entity"
	"github.com/jhoicas/vendas-api/internal/domain/repository"
)

// GeradorRelatorioPDF porta para renderização do relatório de vendas.
type GeradorRelatorioPDF interface {
	GerarRelatorioVendas(ctx context.Context, vendas []*entity.Venda, filtro repository.FiltroVendas) ([]byte, error)
}

// Mailer porta para o disparo de e-mail de teste com credenciais avulsas.
type Mailer interface {
	EnviarTeste(ctx context.Context, srv entity.ServidorSMTP, destinatario string) error
}
