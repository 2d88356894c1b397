package dto

// CriarUsuarioRequest entrada para criar um usuário (senha em claro, o caso
// de uso aplica bcrypt).
type CriarUsuarioRequest struct {
	Username   string `json:"username"`
	Senha      string `json:"senha"`
	Nome       string `json:"nome"`
	Papel      string `json:"papel"`
	Email      string `json:"email"`
	Telefone   string `json:"telefone"`
	CotaMensal string `json:"cota_mensal"`
	PosVendas  string `json:"pos_vendas"` // usernames separados por vírgula
}

// AtualizarUsuarioRequest atualização parcial: ponteiros nulos significam
// "manter o valor atual".
type AtualizarUsuarioRequest struct {
	Nome       *string `json:"nome"`
	Senha      *string `json:"senha"`
	Papel      *string `json:"papel"`
	Status     *string `json:"status"`
	Email      *string `json:"email"`
	Telefone   *string `json:"telefone"`
	CotaMensal *string `json:"cota_mensal"`
	PosVendas  *string `json:"pos_vendas"`
}

// FotoRequest upload da foto do usuário em base64.
type FotoRequest struct {
	Foto string `json:"foto"`
}

// UsuarioResponse saída de um usuário (sem hash de senha).
type UsuarioResponse struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Nome       string `json:"nome"`
	Papel      string `json:"papel"`
	Status     string `json:"status"`
	Email      string `json:"email"`
	Telefone   string `json:"telefone"`
	CotaMensal string `json:"cota_mensal"`
	Foto       string `json:"foto,omitempty"`
	PosVendas  string `json:"pos_vendas"`
	CriadoEm   string `json:"criado_em"`
}

// LoginRequest credenciais de entrada.
type LoginRequest struct {
	Username string `json:"username"`
	Senha    string `json:"senha"`
}

// LoginResponse sucesso de login: token para clientes de API; a sessão por
// cookie é gravada pelo handler.
type LoginResponse struct {
	Success bool            `json:"success"`
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}
