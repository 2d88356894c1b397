package dto

// RespostaOK envelope padrão de sucesso. Os clientes do painel decidem pelo
// campo `success`, não pelo status HTTP.
type RespostaOK struct {
	Success bool `json:"success"`
}

// RespostaErro envelope padrão de falha; `erro` carrega a única mensagem
// (a primeira checagem que falhou).
type RespostaErro struct {
	Success bool   `json:"success"`
	Erro    string `json:"erro"`
}

// Erro constrói o envelope de falha.
func Erro(msg string) RespostaErro {
	return RespostaErro{Success: false, Erro: msg}
}

// OK envelope de sucesso sem payload adicional.
func OK() RespostaOK {
	return RespostaOK{Success: true}
}
