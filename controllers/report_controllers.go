package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"comanda/repository"
	"comanda/services"
	"comanda/utils"
)

type ReportController struct {
	Orders repository.OrderRepository
}

func NewReportController(orders repository.OrderRepository) *ReportController {
	return &ReportController{Orders: orders}
}

// GetDailyReport -> relatório do dia pedido (?date=YYYY-MM-DD, padrão hoje)
// com filtro opcional de status (?status=paid). Tudo derivado do conteúdo
// atual do ledger, nada persistido.
func (rc *ReportController) GetDailyReport(c *gin.Context) {
	day := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid date, expected YYYY-MM-DD"))
			return
		}
		day = parsed
	}

	orders, err := rc.Orders.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	report := services.DailyReportFor(orders, day, c.Query("status"))
	utils.RespondJSON(c, http.StatusOK, "Daily report", report)
}
