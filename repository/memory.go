package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"comanda/models"
)

// MemoryMenuRepository guarda o cardápio em memória, com o mesmo contrato da
// variante relacional. O ciclo de vida dos dados é o do processo.
type MemoryMenuRepository struct {
	mu    sync.RWMutex
	items map[string]models.MenuItem
}

func NewMemoryMenuRepository() *MemoryMenuRepository {
	return &MemoryMenuRepository{items: make(map[string]models.MenuItem)}
}

func (r *MemoryMenuRepository) List(ctx context.Context, includeInactive bool) ([]models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.MenuItem, 0, len(r.items))
	for _, item := range r.items {
		if !includeInactive && !item.Active {
			continue
		}
		out = append(out, copyMenuItem(item))
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

func (r *MemoryMenuRepository) GetByID(ctx context.Context, id string) (*models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := copyMenuItem(item)
	return &cp, nil
}

func (r *MemoryMenuRepository) Create(ctx context.Context, item *models.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.Sides == nil {
		item.Sides = models.StringList{}
	}
	if item.Extras == nil {
		item.Extras = models.ExtraList{}
	}
	r.items[item.ID] = copyMenuItem(*item)
	return nil
}

func (r *MemoryMenuRepository) Update(ctx context.Context, id string, upd MenuItemUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return ErrNotFound
	}
	applyMenuUpdate(&item, upd)
	r.items[id] = item
	return nil
}

func (r *MemoryMenuRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// MemoryOrderRepository guarda os pedidos em memória. Os pedidos retornados
// são cópias, preservando a semântica de itens congelados.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]models.Order
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{orders: make(map[string]models.Order)}
}

func (r *MemoryOrderRepository) List(ctx context.Context) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		out = append(out, copyOrder(order))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryOrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := copyOrder(order)
	return &cp, nil
}

func (r *MemoryOrderRepository) Create(ctx context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	for i := range order.Items {
		if order.Items[i].ID == "" {
			order.Items[i].ID = uuid.NewString()
		}
		order.Items[i].OrderID = order.ID
		order.Items[i].Position = i
	}
	r.orders[order.ID] = copyOrder(*order)
	return nil
}

func (r *MemoryOrderRepository) UpdateStatus(ctx context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return ErrNotFound
	}
	order.Status = status
	r.orders[id] = order
	return nil
}

func (r *MemoryOrderRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[id]; !ok {
		return ErrNotFound
	}
	delete(r.orders, id)
	return nil
}

func applyMenuUpdate(item *models.MenuItem, upd MenuItemUpdate) {
	if upd.Name != nil {
		item.Name = *upd.Name
	}
	if upd.Category != nil {
		item.Category = *upd.Category
	}
	if upd.Price != nil {
		item.Price = *upd.Price
	}
	if upd.Active != nil {
		item.Active = *upd.Active
	}
	if upd.Sides != nil {
		item.Sides = append(models.StringList{}, *upd.Sides...)
	}
	if upd.Extras != nil {
		item.Extras = append(models.ExtraList{}, *upd.Extras...)
	}
}

func copyMenuItem(item models.MenuItem) models.MenuItem {
	item.Sides = append(models.StringList{}, item.Sides...)
	item.Extras = append(models.ExtraList{}, item.Extras...)
	return item
}

func copyOrder(order models.Order) models.Order {
	items := make([]models.OrderItem, len(order.Items))
	for i, it := range order.Items {
		it.Details = append(models.StringList{}, it.Details...)
		items[i] = it
	}
	order.Items = items
	return order
}
