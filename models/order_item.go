package models

// OrderItem é uma linha do pedido, congelada na criação: o preço já inclui
// os adicionais escolhidos e nunca é recalculado a partir do cardápio, para
// que edições de menu não alterem pedidos históricos.
type OrderItem struct {
	ID      string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	OrderID string `gorm:"type:varchar(36);not null;index" json:"order_id"`
	// Position preserva a ordem das linhas na variante relacional.
	Position    int        `gorm:"not null;default:0" json:"-"`
	Name        string     `gorm:"type:varchar(255);not null" json:"name"`
	Price       float64    `gorm:"type:decimal(10,2);not null" json:"price"`
	Details     StringList `gorm:"type:text" json:"details"`
	Observation string     `gorm:"type:text" json:"observation,omitempty"`
	IsMarmitex  bool       `json:"is_marmitex"`
	Quantity    int        `gorm:"not null;default:1" json:"quantity"`
}

// Subtotal é price × quantity; quantidade ausente conta como 1.
func (it *OrderItem) Subtotal() float64 {
	qty := it.Quantity
	if qty < 1 {
		qty = 1
	}
	return it.Price * float64(qty)
}
