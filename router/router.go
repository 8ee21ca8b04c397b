package router

import (
	"github.com/gin-gonic/gin"

	"comanda/controllers"
	"comanda/middlewares"
	"comanda/repository"
)

func SetupRouter(menus repository.MenuRepository, orders repository.OrderRepository) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	menuCtrl := controllers.NewMenuController(menus)
	orderCtrl := controllers.NewOrderController(orders, menus)
	reportCtrl := controllers.NewReportController(orders)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Cardápio; mutação fica atrás do limitador estrito, só a
	// administração mexe aqui.
	r.GET("/menus", menuCtrl.GetAllMenus)
	adminMenus := r.Group("/menus")
	adminMenus.Use(middlewares.NewStrictRateLimiter())
	{
		adminMenus.POST("", menuCtrl.CreateMenu)
		adminMenus.PUT("", menuCtrl.UpdateMenu)
		adminMenus.DELETE("", menuCtrl.DeleteMenu)
		adminMenus.POST("/:menu_id/duplicate", menuCtrl.DuplicateMenu)
	}

	// Pedidos. O preview do carrinho vive em /cart para não disputar a
	// árvore de rotas com /orders/:order_id.
	r.POST("/cart", orderCtrl.PreviewOrder)
	r.GET("/orders", orderCtrl.GetAllOrders)
	r.POST("/orders", orderCtrl.CreateOrder)
	r.PUT("/orders/:order_id", orderCtrl.UpdateOrderStatus)
	r.DELETE("/orders/:order_id", orderCtrl.DeleteOrder)
	r.POST("/orders/:order_id/split", orderCtrl.SplitOrder)

	// Relatório
	r.GET("/reports/daily", reportCtrl.GetDailyReport)

	return r
}
