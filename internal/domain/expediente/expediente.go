// Package expediente decide se o registro de novas vendas está liberado no
// instante atual, a partir do documento de fim de expediente gravado pelo
// painel (data de referência DD/MM/YYYY, horário de corte HH:MM:SS e o
// indicador de trabalho aos sábados).
//
// A matriz de decisão por dia da semana:
//
//	Domingo            → bloqueado, independente do documento
//	Sábado             → liberado apenas se trabalha_sabado
//	Sexta ≥ corte      → bloqueado, salvo trabalha_sabado (o próximo
//	                     turno útil é o sábado); vale também quando a data
//	                     de referência é anterior a hoje
//	Sexta < corte      → liberado
//	Segunda a quinta   → bloqueado somente se a data de referência é hoje
//	                     e o horário já passou do corte
//	Documento ausente ou malformado → liberado (fail-open)
//
// A função nunca retorna erro: o chamador usa o booleano para barrar a
// escrita com resposta "suave" (success=false), não com status 4xx.
package expediente

import (
	"time"

	"github.com/jhoicas/vendas-api/internal/domain/entity"
)

// Formatos gravados pelo painel legado.
const (
	formatoData = "02/01/2006"
	formatoHora = "15:04:05"
)

// PodeRegistrarVenda aplica a matriz de decisão ao instante `now`.
// O relógio é injetado pelo chamador para permitir teste determinístico.
func PodeRegistrarVenda(now time.Time, h *entity.FimExpediente) bool {
	if now.Weekday() == time.Sunday {
		return false
	}

	if h == nil {
		return true
	}

	if now.Weekday() == time.Saturday {
		return h.TrabalhaSabado
	}

	dataRef, err := time.ParseInLocation(formatoData, h.Data, now.Location())
	if err != nil {
		return true
	}
	corte, err := time.Parse(formatoHora, h.Hora)
	if err != nil {
		return true
	}

	hoje := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	aposCorte := segundosDoDia(now) >= segundosDoDia(corte)

	if now.Weekday() == time.Friday {
		// Fechamento de hoje ou pendente de data anterior conta como dia encerrado.
		encerrado := !dataRef.After(hoje) && aposCorte
		if encerrado && !h.TrabalhaSabado {
			return false
		}
		return true
	}

	// Segunda a quinta: só bloqueia fechamento registrado para o próprio dia.
	if dataRef.Equal(hoje) && aposCorte {
		return false
	}
	return true
}

func segundosDoDia(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}
