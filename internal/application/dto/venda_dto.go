package dto

// CriarVendaRequest entrada do registro de venda. Campos monetários chegam
// como string do formulário; os opcionais vazios viram "0" antes da checagem
// numérica. `quantidade_acessos` é obrigatório e não pode ser vazio.
type CriarVendaRequest struct {
	Cliente           string `json:"cliente"`
	TipoCliente       string `json:"tipo_cliente"`
	CNPJ              string `json:"cnpj"`
	Endereco          string `json:"endereco"`
	Cidade            string `json:"cidade"`
	UF                string `json:"uf"`
	Email             string `json:"email"`
	Telefone          string `json:"telefone"`
	ProdutoCodigo     string `json:"produto_codigo"`
	ProdutoAvulso     string `json:"produto_avulso"`
	CondicaoPagamento string `json:"condicao_pagamento"`
	ValorTabela       string `json:"valor_tabela"`
	ValorFinal        string `json:"valor_final"`
	ValorParcela      string `json:"valor_parcela"`
	QuantidadeAcessos string `json:"quantidade_acessos"`
	PosVendas         string `json:"pos_vendas"`
	Observacoes       string `json:"observacoes"`
}

// CriarVendaResponse sucesso com o número sequencial gerado.
type CriarVendaResponse struct {
	Success bool  `json:"success"`
	Numero  int64 `json:"numero"`
}

// AtualizarVendaRequest edição parcial: ponteiros nulos significam "manter".
type AtualizarVendaRequest struct {
	Status      *string `json:"status"`
	PosVendas   *string `json:"pos_vendas"`
	Observacoes *string `json:"observacoes"`
	ValorFinal  *string `json:"valor_final"`
}

// AtualizarStatusRequest troca de status de uma venda.
type AtualizarStatusRequest struct {
	Status string `json:"status"`
}

// VendaResponse saída de uma venda; identificadores internos viram string.
type VendaResponse struct {
	ID                string `json:"id"`
	Numero            int64  `json:"numero"`
	VendedorID        string `json:"vendedor_id"`
	VendedorNome      string `json:"vendedor_nome"`
	Cliente           string `json:"cliente"`
	TipoCliente       string `json:"tipo_cliente"`
	CNPJ              string `json:"cnpj"`
	Endereco          string `json:"endereco"`
	Cidade            string `json:"cidade"`
	UF                string `json:"uf"`
	Email             string `json:"email"`
	Telefone          string `json:"telefone"`
	ProdutoCodigo     string `json:"produto_codigo,omitempty"`
	ProdutoAvulso     string `json:"produto_avulso,omitempty"`
	CondicaoPagamento string `json:"condicao_pagamento"`
	ValorTabela       string `json:"valor_tabela"`
	ValorFinal        string `json:"valor_final"`
	ValorParcela      string `json:"valor_parcela"`
	QuantidadeAcessos int    `json:"quantidade_acessos"`
	Status            string `json:"status"`
	PosVendas         string `json:"pos_vendas"`
	Observacoes       string `json:"observacoes"`
	CriadoEm          string `json:"criado_em"`
}
