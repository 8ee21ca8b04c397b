package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"comanda/models"
)

func setupGormDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.MenuItem{}, &models.Order{}, &models.OrderItem{}))
	return db
}

func TestGormMenuRoundTripsNestedFields(t *testing.T) {
	repo := NewGormMenuRepository(setupGormDB(t))
	ctx := context.Background()

	item := models.MenuItem{
		Name:     "Filé de Tilápia",
		Category: models.CategoryPratos,
		Price:    26.0,
		Active:   true,
		Sides:    models.StringList{"Arroz", "Feijão", "Macarrão", "Salada", "Farofa"},
		Extras: models.ExtraList{
			{Name: "Batata Frita", Price: 12.0},
			{Name: "Vinagrete", Price: 4.0},
		},
	}
	require.NoError(t, repo.Create(ctx, &item))

	// Sides/Extras viajam como JSON em coluna de texto e voltam como slices
	stored, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.Sides, stored.Sides)
	assert.Equal(t, item.Extras, stored.Extras)
}

func TestGormMenuListOrderedByName(t *testing.T) {
	repo := NewGormMenuRepository(setupGormDB(t))
	ctx := context.Background()

	for _, name := range []string{"Guaraná (Lata)", "Cerveja (Lata)", "Suco de Limão"} {
		item := models.MenuItem{Name: name, Category: models.CategoryBebidas, Price: 6.0, Active: true}
		require.NoError(t, repo.Create(ctx, &item))
	}

	items, err := repo.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Cerveja (Lata)", items[0].Name)
	assert.Equal(t, "Guaraná (Lata)", items[1].Name)
	assert.Equal(t, "Suco de Limão", items[2].Name)
}

func TestMenuListOrderingAgreesAcrossVariants(t *testing.T) {
	gormRepo := NewGormMenuRepository(setupGormDB(t))
	memRepo := NewMemoryMenuRepository()
	ctx := context.Background()

	// Nomes com caixa mista: a ordenação é case-insensitive nas duas
	// variantes, então a sequência tem que ser a mesma.
	for _, name := range []string{"Zebra Especial", "abacaxi com hortelã", "Banana Frita"} {
		gormItem := models.MenuItem{Name: name, Category: models.CategorySobremesas, Price: 10.0, Active: true}
		memItem := models.MenuItem{Name: name, Category: models.CategorySobremesas, Price: 10.0, Active: true}
		require.NoError(t, gormRepo.Create(ctx, &gormItem))
		require.NoError(t, memRepo.Create(ctx, &memItem))
	}

	fromGorm, err := gormRepo.List(ctx, true)
	require.NoError(t, err)
	fromMem, err := memRepo.List(ctx, true)
	require.NoError(t, err)

	require.Len(t, fromGorm, 3)
	require.Len(t, fromMem, 3)
	for i := range fromGorm {
		assert.Equal(t, fromMem[i].Name, fromGorm[i].Name)
	}
	assert.Equal(t, "abacaxi com hortelã", fromGorm[0].Name)
	assert.Equal(t, "Banana Frita", fromGorm[1].Name)
	assert.Equal(t, "Zebra Especial", fromGorm[2].Name)
}

func TestGormMenuListFiltersInactive(t *testing.T) {
	repo := NewGormMenuRepository(setupGormDB(t))
	ctx := context.Background()

	ativo := models.MenuItem{Name: "PF Bisteca", Category: models.CategoryPratos, Price: 16.0, Active: true}
	inativo := models.MenuItem{Name: "PF Calabresa", Category: models.CategoryPratos, Price: 16.0, Active: false}
	require.NoError(t, repo.Create(ctx, &ativo))
	require.NoError(t, repo.Create(ctx, &inativo))

	visiveis, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, visiveis, 1)
	assert.Equal(t, "PF Bisteca", visiveis[0].Name)
}

func TestGormMenuUpdateFieldMask(t *testing.T) {
	repo := NewGormMenuRepository(setupGormDB(t))
	ctx := context.Background()

	item := models.MenuItem{
		Name:     "PF Frango Grelhado",
		Category: models.CategoryPratos,
		Price:    16.0,
		Active:   true,
		Sides:    models.StringList{"Arroz", "Feijão"},
	}
	require.NoError(t, repo.Create(ctx, &item))

	inativo := false
	require.NoError(t, repo.Update(ctx, item.ID, MenuItemUpdate{Active: &inativo}))

	updated, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.False(t, updated.Active)
	assert.Equal(t, 16.0, updated.Price)
	assert.Equal(t, models.StringList{"Arroz", "Feijão"}, updated.Sides)
}

func TestGormMenuUpdateUnknownID(t *testing.T) {
	repo := NewGormMenuRepository(setupGormDB(t))
	preco := 10.0

	err := repo.Update(context.Background(), "nao-existe", MenuItemUpdate{Price: &preco})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormMenuDeleteUnknownID(t *testing.T) {
	repo := NewGormMenuRepository(setupGormDB(t))

	err := repo.Delete(context.Background(), "nao-existe")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormOrderCreatePreservesItemOrder(t *testing.T) {
	repo := NewGormOrderRepository(setupGormDB(t))
	ctx := context.Background()

	order := models.Order{
		Customer:  "Mesa 4",
		Status:    models.StatusPending,
		CreatedAt: time.Now(),
		Items: []models.OrderItem{
			{Name: "PF Bisteca", Price: 16.0, Details: models.StringList{"Completa"}, Quantity: 1},
			{Name: "Coca-Cola (Lata)", Price: 6.0, Details: models.StringList{}, Quantity: 2},
			{Name: "Porção de Fritas", Price: 12.0, Details: models.StringList{}, Quantity: 1},
		},
	}
	require.NoError(t, repo.Create(ctx, &order))

	stored, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 3)
	assert.Equal(t, "PF Bisteca", stored.Items[0].Name)
	assert.Equal(t, "Coca-Cola (Lata)", stored.Items[1].Name)
	assert.Equal(t, "Porção de Fritas", stored.Items[2].Name)
	assert.Equal(t, 40.0, stored.Total())
}

func TestGormOrderListChronological(t *testing.T) {
	repo := NewGormOrderRepository(setupGormDB(t))
	ctx := context.Background()

	base := time.Now()
	tarde := models.Order{Customer: "Mesa 2", Status: models.StatusPending, CreatedAt: base.Add(time.Hour),
		Items: []models.OrderItem{{Name: "Contra-Filé", Price: 26.0, Quantity: 1}}}
	cedo := models.Order{Customer: "Mesa 1", Status: models.StatusPending, CreatedAt: base,
		Items: []models.OrderItem{{Name: "PF Omelete", Price: 16.0, Quantity: 1}}}
	require.NoError(t, repo.Create(ctx, &tarde))
	require.NoError(t, repo.Create(ctx, &cedo))

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "Mesa 1", orders[0].Customer)
	assert.Equal(t, "Mesa 2", orders[1].Customer)
}

func TestGormOrderUpdateStatus(t *testing.T) {
	repo := NewGormOrderRepository(setupGormDB(t))
	ctx := context.Background()

	order := models.Order{Customer: "Mesa 6", Status: models.StatusPending, CreatedAt: time.Now(),
		Items: []models.OrderItem{{Name: "Suco de Laranja", Price: 9.0, Quantity: 1}}}
	require.NoError(t, repo.Create(ctx, &order))
	require.NoError(t, repo.UpdateStatus(ctx, order.ID, models.StatusPaid))

	updated, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPaid, updated.Status)
	assert.Equal(t, "Mesa 6", updated.Customer)

	assert.ErrorIs(t, repo.UpdateStatus(ctx, "nao-existe", models.StatusPaid), ErrNotFound)
}

func TestGormOrderDeleteRemovesItems(t *testing.T) {
	db := setupGormDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	order := models.Order{Customer: "Mesa 8", Status: models.StatusPending, CreatedAt: time.Now(),
		Items: []models.OrderItem{{Name: "Torresmo", Price: 8.0, Quantity: 1}}}
	require.NoError(t, repo.Create(ctx, &order))
	require.NoError(t, repo.Delete(ctx, order.ID))

	_, err := repo.GetByID(ctx, order.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&count).Error)
	assert.Zero(t, count)
}
