package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/vendas-api/internal/application/dto"
	"github.com/jhoicas/vendas-api/internal/domain"
	"github.com/jhoicas/vendas-api/internal/domain/entity"
	"github.com/jhoicas/vendas-api/internal/domain/repository"
)

// NotificacaoUseCase criação, listagem e marcação de leitura.
type NotificacaoUseCase struct {
	repo repository.NotificacaoRepository
}

// NewNotificacaoUseCase constrói o caso de uso.
func NewNotificacaoUseCase(repo repository.NotificacaoRepository) *NotificacaoUseCase {
	return &NotificacaoUseCase{repo: repo}
}

// Criar registra uma notificação para os usuários envolvidos.
func (uc *NotificacaoUseCase) Criar(ctx context.Context, in dto.CriarNotificacaoRequest) (*dto.NotificacaoResponse, error) {
	if strings.TrimSpace(in.Mensagem) == "" {
		return nil, domain.Validacao("mensagem é obrigatória")
	}
	if len(in.Envolvidos) == 0 {
		return nil, domain.Validacao("informe ao menos um envolvido")
	}
	n := &entity.Notificacao{
		ID:         uuid.New().String(),
		Mensagem:   strings.TrimSpace(in.Mensagem),
		Envolvidos: in.Envolvidos,
		CriadoEm:   time.Now(),
	}
	if err := uc.repo.Criar(ctx, n); err != nil {
		return nil, err
	}
	resp := paraNotificacaoResponse(n, "")
	return &resp, nil
}

// ListarPorUsuario devolve as notificações do usuário, anotando se cada uma
// já foi lida por ele.
func (uc *NotificacaoUseCase) ListarPorUsuario(ctx context.Context, username string) ([]dto.NotificacaoResponse, error) {
	ns, err := uc.repo.ListarPorUsuario(ctx, username)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NotificacaoResponse, 0, len(ns))
	for _, n := range ns {
		out = append(out, paraNotificacaoResponse(n, username))
	}
	return out, nil
}

// MarcarLida adiciona o usuário ao conjunto de leitura. Chamada repetida é
// inofensiva: o conjunto não ganha entrada duplicada.
func (uc *NotificacaoUseCase) MarcarLida(ctx context.Context, id, username string) error {
	n, err := uc.repo.BuscarPorID(ctx, id)
	if err != nil {
		return err
	}
	if n == nil {
		return domain.ErrNaoEncontrado
	}
	if n.LidaPor(username) {
		return nil
	}
	return uc.repo.MarcarLida(ctx, id, username)
}

func paraNotificacaoResponse(n *entity.Notificacao, username string) dto.NotificacaoResponse {
	return dto.NotificacaoResponse{
		ID:         n.ID,
		Mensagem:   n.Mensagem,
		Envolvidos: n.Envolvidos,
		LidoPor:    n.LidoPor,
		Lida:       username != "" && n.LidaPor(username),
		CriadoEm:   n.CriadoEm.Format(time.RFC3339),
	}
}
