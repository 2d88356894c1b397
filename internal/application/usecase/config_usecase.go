package usecase

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/vendas-api/internal/application/dto"
	"github.com/jhoicas/vendas-api/internal/domain"
	"github.com/jhoicas/vendas-api/internal/domain/entity"
	"github.com/jhoicas/vendas-api/internal/domain/repository"
	"github.com/jhoicas/vendas-api/internal/domain/validar"
)

// ConfigUseCase leitura e escrita dos documentos de configuração
// discriminados por tipo: limites, metas, fim de expediente, SMTP e
// controle de acesso.
type ConfigUseCase struct {
	repo   repository.ConfigRepository
	mailer Mailer
}

// NewConfigUseCase constrói o caso de uso.
func NewConfigUseCase(repo repository.ConfigRepository, mailer Mailer) *ConfigUseCase {
	return &ConfigUseCase{repo: repo, mailer: mailer}
}

// GravarLimite grava (ou substitui) o limite mensal de um vendedor.
func (uc *ConfigUseCase) GravarLimite(ctx context.Context, in dto.LimiteRequest) error {
	if strings.TrimSpace(in.VendedorID) == "" {
		return domain.Validacao("vendedor_id é obrigatório")
	}
	if !validar.Numero(in.Limite) {
		return domain.Validacao("limite não é numérico")
	}
	doc := entity.LimiteVendedor{
		VendedorID:   in.VendedorID,
		VendedorNome: in.VendedorNome,
		Limite:       paraDecimal(in.Limite),
	}
	return uc.gravarPorChave(ctx, entity.ConfigLimiteVendedor, doc, "vendedor_id", in.VendedorID)
}

// ListarLimites devolve todos os limites gravados.
func (uc *ConfigUseCase) ListarLimites(ctx context.Context) ([]dto.LimiteResponse, error) {
	docs, err := uc.repo.ListarPorTipo(ctx, entity.ConfigLimiteVendedor)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LimiteResponse, 0, len(docs))
	for _, d := range docs {
		var lim entity.LimiteVendedor
		if err := json.Unmarshal(d.Dados, &lim); err != nil {
			continue // documento ilegível não derruba a listagem
		}
		out = append(out, dto.LimiteResponse{
			VendedorID:   lim.VendedorID,
			VendedorNome: lim.VendedorNome,
			Limite:       lim.Limite.StringFixed(2),
		})
	}
	return out, nil
}

// GravarMeta grava (ou substitui) as metas de um vendedor.
func (uc *ConfigUseCase) GravarMeta(ctx context.Context, in dto.MetaRequest) error {
	if strings.TrimSpace(in.VendedorID) == "" {
		return domain.Validacao("vendedor_id é obrigatório")
	}
	qtde := validar.NormalizarNumero(in.MetaDiariaQtde)
	diaria := validar.NormalizarNumero(in.MetaDiariaValor)
	semanal := validar.NormalizarNumero(in.MetaSemanalValor)
	if !validar.Numero(qtde) || !validar.Numero(diaria) || !validar.Numero(semanal) {
		return domain.Validacao("metas precisam ser numéricas")
	}
	n, _ := strconv.Atoi(strings.TrimSpace(qtde))
	doc := entity.MetaVendedor{
		VendedorID:       in.VendedorID,
		VendedorNome:     in.VendedorNome,
		MetaDiariaQtde:   n,
		MetaDiariaValor:  paraDecimal(diaria),
		MetaSemanalValor: paraDecimal(semanal),
	}
	return uc.gravarPorChave(ctx, entity.ConfigMetaVendedor, doc, "vendedor_id", in.VendedorID)
}

// ListarMetas devolve todas as metas gravadas.
func (uc *ConfigUseCase) ListarMetas(ctx context.Context) ([]dto.MetaResponse, error) {
	docs, err := uc.repo.ListarPorTipo(ctx, entity.ConfigMetaVendedor)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MetaResponse, 0, len(docs))
	for _, d := range docs {
		var m entity.MetaVendedor
		if err := json.Unmarshal(d.Dados, &m); err != nil {
			continue
		}
		out = append(out, dto.MetaResponse{
			VendedorID:       m.VendedorID,
			VendedorNome:     m.VendedorNome,
			MetaDiariaQtde:   m.MetaDiariaQtde,
			MetaDiariaValor:  m.MetaDiariaValor.StringFixed(2),
			MetaSemanalValor: m.MetaSemanalValor.StringFixed(2),
		})
	}
	return out, nil
}

// GravarExpediente grava o fim de expediente vigente (substitui o anterior).
func (uc *ConfigUseCase) GravarExpediente(ctx context.Context, in dto.ExpedienteRequest) error {
	if _, err := time.Parse("02/01/2006", in.Data); err != nil {
		return domain.Validacao("data inválida, use DD/MM/YYYY")
	}
	if _, err := time.Parse("15:04:05", in.Hora); err != nil {
		return domain.Validacao("hora inválida, use HH:MM:SS")
	}
	doc := entity.FimExpediente{Data: in.Data, Hora: in.Hora, TrabalhaSabado: in.TrabalhaSabado}
	return uc.gravar(ctx, entity.ConfigFimExpediente, doc)
}

// BuscarExpediente devolve o fim de expediente vigente; nil quando não há.
func (uc *ConfigUseCase) BuscarExpediente(ctx context.Context) (*dto.ExpedienteResponse, error) {
	doc, err := uc.repo.BuscarVigente(ctx, entity.ConfigFimExpediente)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	var fe entity.FimExpediente
	if err := json.Unmarshal(doc.Dados, &fe); err != nil {
		return nil, nil
	}
	return &dto.ExpedienteResponse{Data: fe.Data, Hora: fe.Hora, TrabalhaSabado: fe.TrabalhaSabado}, nil
}

// GravarSMTP grava o servidor de disparo.
func (uc *ConfigUseCase) GravarSMTP(ctx context.Context, in dto.SMTPRequest) error {
	if strings.TrimSpace(in.Host) == "" || in.Porta <= 0 {
		return domain.Validacao("host e porta são obrigatórios")
	}
	doc := entity.ServidorSMTP{
		Host: in.Host, Porta: in.Porta,
		Usuario: in.Usuario, Senha: in.Senha, Remetente: in.Remetente,
	}
	return uc.gravar(ctx, entity.ConfigSMTP, doc)
}

// BuscarSMTP devolve o servidor gravado, com a senha omitida.
func (uc *ConfigUseCase) BuscarSMTP(ctx context.Context) (*dto.SMTPRequest, error) {
	doc, err := uc.repo.BuscarVigente(ctx, entity.ConfigSMTP)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	var s entity.ServidorSMTP
	if err := json.Unmarshal(doc.Dados, &s); err != nil {
		return nil, nil
	}
	return &dto.SMTPRequest{Host: s.Host, Porta: s.Porta, Usuario: s.Usuario, Remetente: s.Remetente}, nil
}

// TestarSMTP abre conexão com as credenciais informadas e dispara uma
// mensagem de teste ao destinatário. Repasse direto, sem retry.
func (uc *ConfigUseCase) TestarSMTP(ctx context.Context, in dto.SMTPTesteRequest) error {
	if strings.TrimSpace(in.Host) == "" || in.Porta <= 0 {
		return domain.Validacao("host e porta são obrigatórios")
	}
	if !validar.Email(in.Destinatario) {
		return domain.Validacao("destinatário inválido")
	}
	srv := entity.ServidorSMTP{
		Host: in.Host, Porta: in.Porta,
		Usuario: in.Usuario, Senha: in.Senha, Remetente: in.Remetente,
	}
	return uc.mailer.EnviarTeste(ctx, srv, in.Destinatario)
}

// GravarAcesso grava o controle de acesso por horário.
func (uc *ConfigUseCase) GravarAcesso(ctx context.Context, in dto.AcessoRequest) error {
	if in.Ativo {
		if _, err := time.Parse("15:04", in.HoraInicio); err != nil {
			return domain.Validacao("hora_inicio inválida, use HH:MM")
		}
		if _, err := time.Parse("15:04", in.HoraFim); err != nil {
			return domain.Validacao("hora_fim inválida, use HH:MM")
		}
	}
	doc := entity.ControleAcesso{Ativo: in.Ativo, HoraInicio: in.HoraInicio, HoraFim: in.HoraFim}
	return uc.gravar(ctx, entity.ConfigControleAcesso, doc)
}

// BuscarAcesso devolve o controle de acesso vigente; nil quando não há.
func (uc *ConfigUseCase) BuscarAcesso(ctx context.Context) (*dto.AcessoRequest, error) {
	doc, err := uc.repo.BuscarVigente(ctx, entity.ConfigControleAcesso)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	var ca entity.ControleAcesso
	if err := json.Unmarshal(doc.Dados, &ca); err != nil {
		return nil, nil
	}
	return &dto.AcessoRequest{Ativo: ca.Ativo, HoraInicio: ca.HoraInicio, HoraFim: ca.HoraFim}, nil
}

func (uc *ConfigUseCase) gravar(ctx context.Context, tipo string, payload any) error {
	dados, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	agora := time.Now()
	return uc.repo.Gravar(ctx, &entity.Config{
		ID:           uuid.New().String(),
		Tipo:         tipo,
		Dados:        dados,
		CriadoEm:     agora,
		AtualizadoEm: agora,
	})
}

func (uc *ConfigUseCase) gravarPorChave(ctx context.Context, tipo string, payload any, chave, valor string) error {
	dados, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	agora := time.Now()
	return uc.repo.GravarPorChave(ctx, &entity.Config{
		ID:           uuid.New().String(),
		Tipo:         tipo,
		Dados:        dados,
		CriadoEm:     agora,
		AtualizadoEm: agora,
	}, chave, valor)
}
