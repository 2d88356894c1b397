package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/vendas-api/internal/application/dto"
	"github.com/jhoicas/vendas-api/internal/domain"
	"github.com/jhoicas/vendas-api/internal/domain/entity"
	"github.com/jhoicas/vendas-api/internal/domain/repository"
	"github.com/jhoicas/vendas-api/internal/domain/validar"
)

// ProdutoUseCase CRUD do catálogo de produtos.
type ProdutoUseCase struct {
	repo repository.ProdutoRepository
}

// NewProdutoUseCase constrói o caso de uso.
func NewProdutoUseCase(repo repository.ProdutoRepository) *ProdutoUseCase {
	return &ProdutoUseCase{repo: repo}
}

// Criar cadastra um produto; código duplicado é rejeitado.
func (uc *ProdutoUseCase) Criar(ctx context.Context, in dto.CriarProdutoRequest) (*dto.ProdutoResponse, error) {
	p, err := validarProduto(in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Criar(ctx, p); err != nil {
		return nil, err
	}
	return paraProdutoResponse(p), nil
}

// Atualizar substitui nome e condições do produto com o código dado.
func (uc *ProdutoUseCase) Atualizar(ctx context.Context, codigo string, in dto.CriarProdutoRequest) (*dto.ProdutoResponse, error) {
	existente, err := uc.repo.BuscarPorCodigo(ctx, codigo)
	if err != nil {
		return nil, err
	}
	if existente == nil {
		return nil, domain.ErrNaoEncontrado
	}
	in.Codigo = codigo
	p, err := validarProduto(in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Atualizar(ctx, p); err != nil {
		return nil, err
	}
	return paraProdutoResponse(p), nil
}

// BuscarPorCodigo devolve um produto; nil quando não existe.
func (uc *ProdutoUseCase) BuscarPorCodigo(ctx context.Context, codigo string) (*dto.ProdutoResponse, error) {
	p, err := uc.repo.BuscarPorCodigo(ctx, codigo)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return paraProdutoResponse(p), nil
}

// Listar devolve o catálogo completo.
func (uc *ProdutoUseCase) Listar(ctx context.Context) ([]dto.ProdutoResponse, error) {
	produtos, err := uc.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProdutoResponse, 0, len(produtos))
	for _, p := range produtos {
		out = append(out, *paraProdutoResponse(p))
	}
	return out, nil
}

func validarProduto(in dto.CriarProdutoRequest) (*entity.Produto, error) {
	if strings.TrimSpace(in.Codigo) == "" || strings.TrimSpace(in.Nome) == "" {
		return nil, domain.Validacao("codigo e nome são obrigatórios")
	}
	condicoes := make([]entity.CondicaoPagamento, 0, len(in.Condicoes))
	for _, c := range in.Condicoes {
		if strings.TrimSpace(c.Tipo) == "" {
			return nil, domain.Validacao("condição de pagamento sem tipo")
		}
		total := validar.NormalizarNumero(c.ValorTotal)
		parcela := validar.NormalizarNumero(c.ValorParcela)
		if !validar.Numero(total) || !validar.Numero(parcela) {
			return nil, domain.Validacao("valores da condição " + c.Tipo + " não são numéricos")
		}
		condicoes = append(condicoes, entity.CondicaoPagamento{
			Tipo:         c.Tipo,
			ValorTotal:   paraDecimal(total),
			Parcelas:     c.Parcelas,
			ValorParcela: paraDecimal(parcela),
		})
	}
	return &entity.Produto{
		Codigo:    strings.TrimSpace(in.Codigo),
		Nome:      strings.TrimSpace(in.Nome),
		Condicoes: condicoes,
	}, nil
}

func paraProdutoResponse(p *entity.Produto) *dto.ProdutoResponse {
	condicoes := make([]dto.CondicaoPagamentoDTO, 0, len(p.Condicoes))
	for _, c := range p.Condicoes {
		condicoes = append(condicoes, dto.CondicaoPagamentoDTO{
			Tipo:         c.Tipo,
			ValorTotal:   c.ValorTotal.StringFixed(2),
			Parcelas:     c.Parcelas,
			ValorParcela: c.ValorParcela.StringFixed(2),
		})
	}
	return &dto.ProdutoResponse{Codigo: p.Codigo, Nome: p.Nome, Condicoes: condicoes}
}
