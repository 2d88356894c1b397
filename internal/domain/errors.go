package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNaoEncontrado        = errors.New("recurso não encontrado")
	ErrUsuarioNaoEncontrado = errors.New("usuário não encontrado")
	ErrUsernameJaExiste     = errors.New("username já cadastrado")
	ErrEntradaInvalida      = errors.New("entrada inválida")
	ErrDuplicado            = errors.New("recurso duplicado")
	ErrNaoAutorizado        = errors.New("não autorizado")
	ErrAcessoNegado         = errors.New("acesso negado")
	ErrConflito             = errors.New("conflito com o estado atual")

	// Bloqueios "suaves" do registro de venda: o handler responde 200 com
	// success=false, pois o painel decide pelo campo success.
	ErrForaDoExpediente = errors.New("expediente encerrado para registro de vendas")
	ErrLimiteVendas     = errors.New("limite de vendas do mês atingido")
)

// ErroValidacao falha de checagem de campo; vira resposta 400 com a
// mensagem como único `erro`.
type ErroValidacao struct {
	Mensagem string
}

func (e *ErroValidacao) Error() string { return e.Mensagem }

// Validacao constrói um ErroValidacao.
func Validacao(msg string) *ErroValidacao {
	return &ErroValidacao{Mensagem: msg}
}
