package services

import (
	"sort"
	"time"

	"comanda/models"
)

// ItemSales é a linha do ranking de mais vendidos.
type ItemSales struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// DailyReport é o relatório do dia, recalculado por completo a cada chamada.
// Nada aqui é persistido ou cacheado.
type DailyReport struct {
	Date           string      `json:"date"`
	OrderCount     int         `json:"order_count"`
	PaidCount      int         `json:"paid_count"`
	PendingCount   int         `json:"pending_count"`
	GrossRevenue   float64     `json:"gross_revenue"`
	Revenue        float64     `json:"revenue"`
	PendingRevenue float64     `json:"pending_revenue"`
	AvgTicket      float64     `json:"avg_ticket"`
	AvgItems       float64     `json:"avg_items"`
	TopItems       []ItemSales `json:"top_items"`
	PeakHour       int         `json:"peak_hour"`
	PeakHourOrders int         `json:"peak_hour_orders"`
	RevenueChange  float64     `json:"revenue_change"`
}

// DefaultTopItems limita o ranking de mais vendidos.
const DefaultTopItems = 10

// DailyReportFor reduz o conteúdo atual do ledger para o dia informado
// (comparação por dia de calendário sobre createdAt). statusFilter vazio
// considera todos os pedidos do dia; caso contrário só os do status dado.
// A variação de faturamento compara com o dia de calendário anterior sob o
// mesmo filtro de status.
func DailyReportFor(orders []models.Order, day time.Time, statusFilter string) DailyReport {
	report := DailyReport{
		Date:     day.Format("2006-01-02"),
		PeakHour: -1,
		TopItems: []ItemSales{},
	}

	filtered := ordersOnDay(orders, day)
	if statusFilter != "" {
		kept := filtered[:0]
		for _, o := range filtered {
			if o.Status == statusFilter {
				kept = append(kept, o)
			}
		}
		filtered = kept
	}

	report.OrderCount = len(filtered)

	var paidItems int
	hourCounts := make(map[int]int)
	itemStats := make(map[string]*ItemSales)

	for i := range filtered {
		o := &filtered[i]
		if o.Status == models.StatusPaid {
			report.PaidCount++
			report.Revenue += o.Total()
			for j := range o.Items {
				paidItems += quantityOf(&o.Items[j])
			}
		} else {
			report.PendingCount++
			report.PendingRevenue += o.Total()
		}
		hourCounts[o.CreatedAt.Hour()]++
		for j := range o.Items {
			it := &o.Items[j]
			stat, ok := itemStats[it.Name]
			if !ok {
				stat = &ItemSales{Name: it.Name}
				itemStats[it.Name] = stat
			}
			stat.Count += quantityOf(it)
			stat.Revenue += it.Subtotal()
		}
	}

	report.GrossRevenue = report.Revenue + report.PendingRevenue
	if report.PaidCount > 0 {
		report.AvgTicket = report.Revenue / float64(report.PaidCount)
		report.AvgItems = float64(paidItems) / float64(report.PaidCount)
	}

	for _, stat := range itemStats {
		report.TopItems = append(report.TopItems, *stat)
	}
	sort.Slice(report.TopItems, func(i, j int) bool {
		if report.TopItems[i].Count != report.TopItems[j].Count {
			return report.TopItems[i].Count > report.TopItems[j].Count
		}
		return report.TopItems[i].Name < report.TopItems[j].Name
	})
	if len(report.TopItems) > DefaultTopItems {
		report.TopItems = report.TopItems[:DefaultTopItems]
	}

	for hour, count := range hourCounts {
		if count > report.PeakHourOrders ||
			(count == report.PeakHourOrders && report.PeakHour >= 0 && hour < report.PeakHour) {
			report.PeakHour = hour
			report.PeakHourOrders = count
		}
	}

	yesterdayRevenue := paidRevenueOnDay(orders, day.AddDate(0, 0, -1), statusFilter)
	if yesterdayRevenue > 0 {
		report.RevenueChange = (report.Revenue - yesterdayRevenue) / yesterdayRevenue * 100
	}

	return report
}

func ordersOnDay(orders []models.Order, day time.Time) []models.Order {
	y, m, d := day.Date()
	var out []models.Order
	for _, o := range orders {
		oy, om, od := o.CreatedAt.Date()
		if oy == y && om == m && od == d {
			out = append(out, o)
		}
	}
	return out
}

func paidRevenueOnDay(orders []models.Order, day time.Time, statusFilter string) float64 {
	var revenue float64
	for _, o := range ordersOnDay(orders, day) {
		if statusFilter != "" && o.Status != statusFilter {
			continue
		}
		if o.Status == models.StatusPaid {
			revenue += o.Total()
		}
	}
	return revenue
}

func quantityOf(it *models.OrderItem) int {
	if it.Quantity < 1 {
		return 1
	}
	return it.Quantity
}
