package database

import (
	"context"

	"comanda/models"
	"comanda/repository"
)

// Acompanhamentos e adicionais padrão dos pratos da casa.
var DefaultSides = models.StringList{"Arroz", "Feijão", "Macarrão", "Salada", "Farofa"}

var DefaultExtras = models.ExtraList{
	{Name: "Batata Frita", Price: 12.0},
	{Name: "Ovo Frito", Price: 3.0},
	{Name: "Vinagrete", Price: 4.0},
	{Name: "Torresmo", Price: 8.0},
}

func prato(name string, price float64, sides models.StringList) models.MenuItem {
	return models.MenuItem{
		Name:     name,
		Category: models.CategoryPratos,
		Price:    price,
		Active:   true,
		Sides:    sides,
		Extras:   DefaultExtras,
	}
}

func simples(name, category string, price float64) models.MenuItem {
	return models.MenuItem{
		Name:     name,
		Category: category,
		Price:    price,
		Active:   true,
		Sides:    models.StringList{},
		Extras:   models.ExtraList{},
	}
}

// SeedMenu popula o cardápio inicial quando o catálogo está vazio. Funciona
// sobre a interface do repositório, então serve para as duas variantes de
// armazenamento.
func SeedMenu(ctx context.Context, menus repository.MenuRepository) error {
	existing, err := menus.List(ctx, true)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	items := []models.MenuItem{
		prato("Filé de Tilápia", 26.0, DefaultSides),
		prato("Contra-Filé", 26.0, DefaultSides),
		prato("PF Frango Grelhado", 16.0, DefaultSides),
		prato("PF Calabresa", 16.0, DefaultSides),
		prato("PF Bisteca", 16.0, DefaultSides),
		prato("PF Omelete", 16.0, models.StringList{"Arroz", "Feijão", "Salada"}),
		simples("Porção de Fritas", models.CategoryPorcoes, 12.0),
		simples("Salada Extra", models.CategoryPorcoes, 8.0),
		simples("Ovo Frito (Un)", models.CategoryPorcoes, 3.0),
		simples("Coca-Cola (Lata)", models.CategoryBebidas, 6.0),
		simples("Guaraná (Lata)", models.CategoryBebidas, 6.0),
		simples("Suco de Laranja", models.CategoryBebidas, 9.0),
		simples("Suco de Limão", models.CategoryBebidas, 8.0),
		simples("Água Mineral", models.CategoryBebidas, 4.0),
		simples("Cerveja (Lata)", models.CategoryBebidas, 7.0),
	}

	for i := range items {
		if err := menus.Create(ctx, &items[i]); err != nil {
			return err
		}
	}
	return nil
}
