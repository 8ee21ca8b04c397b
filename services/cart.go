package services

import "comanda/models"

// Cart monta as linhas de um pedido antes do envio. Linhas sem nenhuma
// personalização (detalhes vazios e sem observação) são mescladas por nome,
// somando quantidade em vez de criar linha repetida; linhas personalizadas
// nunca são mescladas.
type Cart struct {
	Lines []models.OrderItem
}

func (c *Cart) Add(line models.OrderItem) {
	if line.Quantity < 1 {
		line.Quantity = 1
	}
	if len(line.Details) == 0 && line.Observation == "" {
		for i := range c.Lines {
			existing := &c.Lines[i]
			if existing.Name == line.Name && len(existing.Details) == 0 && existing.Observation == "" {
				existing.Quantity += line.Quantity
				return
			}
		}
	}
	c.Lines = append(c.Lines, line)
}

// Remove tira a linha na posição dada; índices fora do carrinho são
// ignorados.
func (c *Cart) Remove(index int) {
	if index < 0 || index >= len(c.Lines) {
		return
	}
	c.Lines = append(c.Lines[:index], c.Lines[index+1:]...)
}

func (c *Cart) Total() float64 {
	var total float64
	for i := range c.Lines {
		total += c.Lines[i].Subtotal()
	}
	return total
}
