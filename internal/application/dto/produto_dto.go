package dto

// CondicaoPagamentoDTO uma opção de pagamento de um produto.
type CondicaoPagamentoDTO struct {
	Tipo         string `json:"tipo"`
	ValorTotal   string `json:"valor_total"`
	Parcelas     int    `json:"parcelas"`
	ValorParcela string `json:"valor_parcela"`
}

// CriarProdutoRequest entrada para criar/atualizar um produto do catálogo.
type CriarProdutoRequest struct {
	Codigo    string                 `json:"codigo"`
	Nome      string                 `json:"nome"`
	Condicoes []CondicaoPagamentoDTO `json:"condicoes_pagamento"`
}

// ProdutoResponse saída de um produto.
type ProdutoResponse struct {
	Codigo    string                 `json:"codigo"`
	Nome      string                 `json:"nome"`
	Condicoes []CondicaoPagamentoDTO `json:"condicoes_pagamento"`
}
