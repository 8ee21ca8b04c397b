package services

import (
	"strings"

	"comanda/models"
)

// MarmitexTag é a etiqueta literal usada pela cozinha para pedidos de viagem.
const MarmitexTag = "📦 MARMITEX"

// LineSelection é a escolha do cliente para um item do cardápio.
type LineSelection struct {
	Sides       []string `json:"sides"`
	Extras      []string `json:"extras"`
	Marmitex    bool     `json:"marmitex"`
	Observation string   `json:"observation"`
	Quantity    int      `json:"quantity"`
}

// ResolveLine congela uma escolha em uma linha de pedido: preço final
// (base + adicionais casados por nome) e etiquetas legíveis em ordem fixa.
// Nomes de adicionais que não existem no item contribuem com zero.
//
// Só pratos com acompanhamentos passam pela personalização; qualquer outro
// item vira linha simples com preço base e detalhes vazios.
func ResolveLine(item models.MenuItem, sel LineSelection) models.OrderItem {
	qty := sel.Quantity
	if qty < 1 {
		qty = 1
	}

	line := models.OrderItem{
		Name:     item.Name,
		Price:    item.Price,
		Details:  models.StringList{},
		Quantity: qty,
	}
	if item.Category != models.CategoryPratos || len(item.Sides) == 0 {
		return line
	}

	price := item.Price
	for _, name := range sel.Extras {
		price += item.Extras.PriceOf(name)
	}

	details := models.StringList{}
	if sel.Marmitex {
		details = append(details, MarmitexTag)
	}
	switch {
	case len(sel.Sides) == len(item.Sides):
		details = append(details, "Completa")
	case len(sel.Sides) == 0:
		details = append(details, "Sem acompanhamentos")
	default:
		removed := removedSides(item.Sides, sel.Sides)
		if len(removed) > 0 {
			details = append(details, "S/ "+strings.Join(removed, ", "))
		}
	}
	for _, name := range sel.Extras {
		details = append(details, "+ "+name)
	}

	line.Price = price
	line.Details = details
	line.Observation = strings.TrimSpace(sel.Observation)
	line.IsMarmitex = sel.Marmitex
	return line
}

// removedSides devolve os acompanhamentos do item que não foram escolhidos,
// na ordem do item.
func removedSides(itemSides models.StringList, selected []string) []string {
	chosen := make(map[string]bool, len(selected))
	for _, s := range selected {
		chosen[s] = true
	}
	var removed []string
	for _, s := range itemSides {
		if !chosen[s] {
			removed = append(removed, s)
		}
	}
	return removed
}
