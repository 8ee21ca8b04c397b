package models

import "time"

// Categorias do cardápio (enumeração fechada).
const (
	CategoryPratos     = "pratos"
	CategoryPorcoes    = "porcoes"
	CategoryBebidas    = "bebidas"
	CategorySobremesas = "sobremesas"
)

// MenuItem é um item do cardápio. Sides e Extras só fazem sentido para a
// categoria "pratos"; itens inativos saem da tela de pedidos mas continuam
// disponíveis para edição e histórico.
type MenuItem struct {
	ID        string     `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name      string     `gorm:"type:varchar(255);not null" json:"name"`
	Category  string     `gorm:"type:varchar(20);not null" json:"category"`
	Price     float64    `gorm:"type:decimal(10,2);not null" json:"price"`
	Active    bool       `gorm:"not null" json:"active"`
	Sides     StringList `gorm:"type:text" json:"sides"`
	Extras    ExtraList  `gorm:"type:text" json:"extras"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
