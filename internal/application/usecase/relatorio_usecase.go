package usecase

import (
	"context"

	"github.com/jhoicas/vendas-api/internal/application/dto"
	"github.com/jhoicas/vendas-api/internal/domain/repository"
)

// RelatorioUseCase montagem do relatório de vendas em PDF.
type RelatorioUseCase struct {
	vendas  repository.VendaRepository
	gerador GeradorRelatorioPDF
}

// NewRelatorioUseCase constrói o caso de uso.
func NewRelatorioUseCase(vendas repository.VendaRepository, gerador GeradorRelatorioPDF) *RelatorioUseCase {
	return &RelatorioUseCase{vendas: vendas, gerador: gerador}
}

// GerarVendasPDF busca as vendas do filtro e renderiza o PDF para download.
func (uc *RelatorioUseCase) GerarVendasPDF(ctx context.Context, f repository.FiltroVendas) ([]byte, error) {
	vendas, err := uc.vendas.Listar(ctx, f)
	if err != nil {
		return nil, err
	}
	return uc.gerador.GerarRelatorioVendas(ctx, vendas, f)
}

// LogUseCase leitura da trilha de auditoria.
type LogUseCase struct {
	repo repository.LogRepository
}

// NewLogUseCase constrói o caso de uso.
func NewLogUseCase(repo repository.LogRepository) *LogUseCase {
	return &LogUseCase{repo: repo}
}

// Listar devolve as entradas mais recentes da trilha.
func (uc *LogUseCase) Listar(ctx context.Context, limite int) ([]dto.RegistroLogResponse, error) {
	if limite <= 0 || limite > 500 {
		limite = 100
	}
	logs, err := uc.repo.Listar(ctx, limite)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RegistroLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, dto.RegistroLogResponse{
			Descricao: l.Descricao,
			Autor:     l.Autor,
			Data:      l.Data,
			Hora:      l.Hora,
		})
	}
	return out, nil
}
