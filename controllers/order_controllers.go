package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"comanda/models"
	"comanda/repository"
	"comanda/services"
	"comanda/utils"
)

type OrderController struct {
	Orders repository.OrderRepository
	Menus  repository.MenuRepository
}

func NewOrderController(orders repository.OrderRepository, menus repository.MenuRepository) *OrderController {
	return &OrderController{Orders: orders, Menus: menus}
}

// GetAllOrders -> todos os pedidos em ordem cronológica, com itens.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.Orders.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

type orderItemRequest struct {
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Details     []string `json:"details"`
	Observation string   `json:"observation"`
	IsMarmitex  bool     `json:"is_marmitex"`
	Quantity    int      `json:"quantity"`
}

type createOrderRequest struct {
	Customer string             `json:"customer"`
	Items    []orderItemRequest `json:"items"`
}

// CreateOrder -> cria pedido com status pending. O preço de cada linha vem
// pronto do resolvedor de personalização; aqui ele só é congelado, nunca
// recalculado contra o cardápio.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Customer == "" || len(req.Items) == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid data"))
		return
	}

	order := models.Order{
		Customer:  req.Customer,
		Status:    models.StatusPending,
		CreatedAt: time.Now(),
		Items:     make([]models.OrderItem, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		details := models.StringList(item.Details)
		if details == nil {
			details = models.StringList{}
		}
		order.Items = append(order.Items, models.OrderItem{
			Name:        item.Name,
			Price:       item.Price,
			Details:     details,
			Observation: item.Observation,
			IsMarmitex:  item.IsMarmitex,
			Quantity:    qty,
		})
	}

	if err := oc.Orders.Create(c.Request.Context(), &order); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Pedido %s criado para %q, total %s",
		order.ID, order.Customer, utils.FormatBRL(order.Total()))
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus -> troca o status do pedido. Qualquer valor é aceito e
// qualquer transição passa; o ledger não valida a progressão. Id
// inexistente é no-op silencioso.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id := c.Param("order_id")

	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Status == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("status required"))
		return
	}

	err := oc.Orders.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order status updated", nil)
}

// DeleteOrder -> remove o pedido incondicionalmente; id inexistente é
// no-op silencioso.
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id := c.Param("order_id")

	err := oc.Orders.Delete(c.Request.Context(), id)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order deleted", nil)
}

type previewSelection struct {
	MenuItemID string `json:"menu_item_id"`
	services.LineSelection
}

type previewOrderRequest struct {
	Selections []previewSelection `json:"selections"`
}

type previewOrderResponse struct {
	Items []models.OrderItem `json:"items"`
	Total float64            `json:"total"`
}

// PreviewOrder -> resolve as escolhas do cliente contra o cardápio e monta
// o carrinho com preço calculado no servidor. Ids desconhecidos são
// pulados, como no fluxo de criação do pedido.
func (oc *OrderController) PreviewOrder(c *gin.Context) {
	var req previewOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if len(req.Selections) == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid data"))
		return
	}

	var cart services.Cart
	for _, sel := range req.Selections {
		item, err := oc.Menus.GetByID(c.Request.Context(), sel.MenuItemID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		cart.Add(services.ResolveLine(*item, sel.LineSelection))
	}
	if cart.Lines == nil {
		cart.Lines = []models.OrderItem{}
	}

	utils.RespondJSON(c, http.StatusOK, "Order preview", previewOrderResponse{
		Items: cart.Lines,
		Total: cart.Total(),
	})
}

type splitOrderRequest struct {
	ItemIDs []string `json:"item_ids"`
	People  int      `json:"people"`
}

// SplitOrder -> divisão de conta do caixa sobre as linhas selecionadas.
func (oc *OrderController) SplitOrder(c *gin.Context) {
	id := c.Param("order_id")

	var req splitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Split result", services.SplitBill(order, req.ItemIDs, req.People))
}
