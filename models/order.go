package models

import "time"

// Status de pedido. A progressão linear é a usada pela cozinha; o caixa
// marca "paid" a partir de qualquer status não pago. Nenhuma transição é
// validada pelo ledger.
const (
	StatusPending   = "pending"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusDelivered = "delivered"
	StatusPaid      = "paid"
)

// NextStatus retorna o próximo passo da progressão da cozinha, ou "" quando
// não há próximo (delivered e paid são terminais para a cozinha).
func NextStatus(status string) string {
	switch status {
	case StatusPending:
		return StatusPreparing
	case StatusPreparing:
		return StatusReady
	case StatusReady:
		return StatusDelivered
	}
	return ""
}

// Order é um pedido. Depois de criado só o status muda; os itens são cópias
// congeladas feitas no momento da criação.
type Order struct {
	ID        string      `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Customer  string      `gorm:"type:varchar(255);not null" json:"customer"`
	Status    string      `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time   `gorm:"not null" json:"created_at"`
}

// Total soma price × quantity de todos os itens.
func (o *Order) Total() float64 {
	var total float64
	for i := range o.Items {
		total += o.Items[i].Subtotal()
	}
	return total
}
