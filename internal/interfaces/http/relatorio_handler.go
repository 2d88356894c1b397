package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vendas-api/internal/application/usecase"
)

// RelatorioHandler geração de relatórios em PDF.
type RelatorioHandler struct {
	uc *usecase.RelatorioUseCase
}

// NewRelatorioHandler constrói o handler.
func NewRelatorioHandler(uc *usecase.RelatorioUseCase) *RelatorioHandler {
	return &RelatorioHandler{uc: uc}
}

// VendasPDF godoc
// @Summary      Relatório de vendas em PDF
// @Tags         relatorios
// @Security     Bearer
// @Produce      application/pdf
// @Param        vendedor_id  query  string  false  "Filtrar por vendedor"
// @Param        cliente      query  string  false  "Filtrar por cliente (contém)"
// @Param        status       query  string  false  "Filtrar por status"
// @Param        data_inicio  query  string  false  "DD/MM/YYYY"
// @Param        data_fim     query  string  false  "DD/MM/YYYY"
// @Success      200  {file}  binary
// @Router       /api/relatorios/vendas.pdf [get]
func (h *RelatorioHandler) VendasPDF(c *fiber.Ctx) error {
	pdf, err := h.uc.GerarVendasPDF(c.Context(), filtroVendasDaQuery(c))
	if err != nil {
		return responderErro(c, err)
	}
	nome := fmt.Sprintf("vendas_%s.pdf", time.Now().Format("02-01-2006"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nome+`"`)
	return c.Send(pdf)
}
