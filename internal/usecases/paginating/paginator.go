// Package paginating deriva a fatia visível de um conjunto filtrado e o
// número de página efetivo, sempre dentro de limites válidos.
package paginating

import "github.com/vfg2006/customer-admin-api/internal/domain"

// Page descreve o resultado de uma paginação
type Page struct {
	EffectivePage int
	TotalPages    int
	Start         int // Índice inicial da fatia visível (inclusivo)
	End           int // Índice final da fatia visível (exclusivo)
}

// Compute calcula os limites da página para um conjunto de n registros.
//
// totalPages = max(1, ceil(n/pageSize)) e a página efetiva é o valor
// solicitado grampeado em [1, totalPages]: depois que um filtro encolhe o
// resultado, a visão cai para a última página válida em vez de mostrar uma
// página vazia. A mesma entrada produz sempre a mesma saída.
func Compute(n, pageSize, requestedPage int) Page {
	if pageSize < 1 {
		pageSize = 1
	}

	totalPages := (n + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	effectivePage := requestedPage
	if effectivePage < 1 {
		effectivePage = 1
	}
	if effectivePage > totalPages {
		effectivePage = totalPages
	}

	start := (effectivePage - 1) * pageSize
	if start > n {
		start = n
	}

	end := start + pageSize
	if end > n {
		end = n
	}

	return Page{
		EffectivePage: effectivePage,
		TotalPages:    totalPages,
		Start:         start,
		End:           end,
	}
}

// Customers aplica Compute a um conjunto filtrado de clientes e devolve a
// fatia visível contígua
func Customers(records []domain.Customer, pageSize, requestedPage int) ([]domain.Customer, Page) {
	page := Compute(len(records), pageSize, requestedPage)
	return records[page.Start:page.End], page
}
