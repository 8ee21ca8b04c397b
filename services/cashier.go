package services

import "comanda/models"

// SplitResult é a conta dividida do caixa: total do pedido, total das linhas
// selecionadas e a parte de cada pessoa.
type SplitResult struct {
	OrderTotal    float64 `json:"order_total"`
	SelectedTotal float64 `json:"selected_total"`
	People        int     `json:"people"`
	PerPerson     float64 `json:"per_person"`
}

// SplitBill calcula a divisão da conta sobre as linhas selecionadas por id.
// Menos de uma pessoa conta como uma; ids desconhecidos são ignorados.
func SplitBill(order *models.Order, itemIDs []string, people int) SplitResult {
	if people < 1 {
		people = 1
	}
	selected := make(map[string]bool, len(itemIDs))
	for _, id := range itemIDs {
		selected[id] = true
	}

	result := SplitResult{OrderTotal: order.Total(), People: people}
	for i := range order.Items {
		if selected[order.Items[i].ID] {
			result.SelectedTotal += order.Items[i].Subtotal()
		}
	}
	result.PerPerson = result.SelectedTotal / float64(people)
	return result
}
