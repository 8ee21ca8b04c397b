package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"comanda/models"
	"comanda/repository"
	"comanda/utils"
)

type MenuController struct {
	Menus repository.MenuRepository
}

func NewMenuController(menus repository.MenuRepository) *MenuController {
	return &MenuController{Menus: menus}
}

// GetAllMenus -> lista do cardápio; ?all=true inclui os itens inativos.
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	includeInactive := c.Query("all") == "true"

	items, err := mc.Menus.List(c.Request.Context(), includeInactive)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menu items", items)
}

type createMenuRequest struct {
	Name     string            `json:"name"`
	Category string            `json:"category"`
	Price    *float64          `json:"price"`
	Active   *bool             `json:"active"`
	Sides    models.StringList `json:"sides"`
	Extras   models.ExtraList  `json:"extras"`
}

// CreateMenu -> cria item; name, category e price são obrigatórios.
func (mc *MenuController) CreateMenu(c *gin.Context) {
	var req createMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Name == "" || req.Category == "" || req.Price == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("missing fields"))
		return
	}

	item := models.MenuItem{
		Name:     req.Name,
		Category: req.Category,
		Price:    *req.Price,
		// active só é falso quando o cliente mandou explicitamente false
		Active: req.Active == nil || *req.Active,
		Sides:  req.Sides,
		Extras: req.Extras,
	}
	if item.Sides == nil {
		item.Sides = models.StringList{}
	}
	if item.Extras == nil {
		item.Extras = models.ExtraList{}
	}

	if err := mc.Menus.Create(c.Request.Context(), &item); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Menu item created", item)
}

type updateMenuRequest struct {
	ID       string             `json:"id"`
	Name     *string            `json:"name"`
	Category *string            `json:"category"`
	Price    *float64           `json:"price"`
	Active   *bool              `json:"active"`
	Sides    *models.StringList `json:"sides"`
	Extras   *models.ExtraList  `json:"extras"`
}

// UpdateMenu -> update parcial por máscara de campos. Id inexistente é
// no-op silencioso, como a API sempre se comportou.
func (mc *MenuController) UpdateMenu(c *gin.Context) {
	var req updateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.ID == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("ID required"))
		return
	}

	upd := repository.MenuItemUpdate{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Active:   req.Active,
		Sides:    req.Sides,
		Extras:   req.Extras,
	}
	err := mc.Menus.Update(c.Request.Context(), req.ID, upd)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item updated", nil)
}

// DeleteMenu -> remove o item; id inexistente é no-op silencioso. Pedidos
// já criados não são tocados (as linhas são cópias congeladas).
func (mc *MenuController) DeleteMenu(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("ID required"))
		return
	}

	err := mc.Menus.Delete(c.Request.Context(), id)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item deleted", nil)
}

// DuplicateMenu -> clona um item com o nome marcado como cópia, delegando
// para o fluxo de criação.
func (mc *MenuController) DuplicateMenu(c *gin.Context) {
	id := c.Param("menu_id")

	original, err := mc.Menus.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	clone := models.MenuItem{
		Name:     original.Name + " (cópia)",
		Category: original.Category,
		Price:    original.Price,
		Active:   original.Active,
		Sides:    original.Sides,
		Extras:   original.Extras,
	}
	if err := mc.Menus.Create(c.Request.Context(), &clone); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Menu item duplicated", clone)
}
