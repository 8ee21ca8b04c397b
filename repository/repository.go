package repository

import (
	"context"
	"errors"

	"comanda/models"
)

// ErrNotFound é retornado quando o id referenciado não existe. Os handlers
// de update/delete engolem este erro para manter o comportamento observado
// da API (no-op silencioso).
var ErrNotFound = errors.New("registro não encontrado")

// MenuItemUpdate é a máscara de campos do update parcial: só os campos
// não-nulos são aplicados.
type MenuItemUpdate struct {
	Name     *string
	Category *string
	Price    *float64
	Active   *bool
	Sides    *models.StringList
	Extras   *models.ExtraList
}

// MenuRepository é o catálogo do cardápio. List retorna os itens em ordem
// alfabética de nome nas duas implementações.
type MenuRepository interface {
	List(ctx context.Context, includeInactive bool) ([]models.MenuItem, error)
	GetByID(ctx context.Context, id string) (*models.MenuItem, error)
	Create(ctx context.Context, item *models.MenuItem) error
	Update(ctx context.Context, id string, upd MenuItemUpdate) error
	Delete(ctx context.Context, id string) error
}

// OrderRepository é o ledger de pedidos. List retorna em ordem cronológica
// de criação.
type OrderRepository interface {
	List(ctx context.Context) ([]models.Order, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
	Create(ctx context.Context, order *models.Order) error
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}
