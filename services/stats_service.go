package services

import (
	"context"
	"errors"
	"time"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/utils"
)

const LowStockThreshold = 3

// ErrReportingUnavailable means the raw reporting pool is not connected.
var ErrReportingUnavailable = errors.New("reporting database not available")

// revenueStatuses are the orders that have been paid for.
var revenueStatuses = []string{models.OrderStatusPaid, models.OrderStatusShipped, models.OrderStatusDelivered}

// DashboardStats aggregates order, catalog and customer counts.
func DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	var out models.DashboardStats
	db := config.DB.WithContext(ctx)

	type statusRow struct {
		Status string
		Count  int64
	}
	var rows []statusRow
	if err := db.Model(&models.Order{}).Select("status, COUNT(*) AS count").Group("status").Scan(&rows).Error; err != nil {
		return out, err
	}
	for _, r := range rows {
		out.Orders.Total += r.Count
		switch r.Status {
		case models.OrderStatusPending:
			out.Orders.Pending = r.Count
		case models.OrderStatusPaid:
			out.Orders.Paid = r.Count
		case models.OrderStatusShipped:
			out.Orders.Shipped = r.Count
		case models.OrderStatusDelivered:
			out.Orders.Delivered = r.Count
		case models.OrderStatusCancelled:
			out.Orders.Cancelled = r.Count
		case models.OrderStatusExpired:
			out.Orders.Expired = r.Count
		}
	}

	var revenue struct {
		Total float64
		Count int64
	}
	if err := db.Model(&models.Order{}).
		Select("COALESCE(SUM(total), 0) AS total, COUNT(*) AS count").
		Where("status IN ?", revenueStatuses).
		Scan(&revenue).Error; err != nil {
		return out, err
	}
	out.Revenue = revenue.Total
	out.RevenueText = utils.FormatPrice(revenue.Total)
	if revenue.Count > 0 {
		out.AverageOrder = utils.LineSubtotal(revenue.Total/float64(revenue.Count), 1)
	}

	if err := db.Model(&models.Product{}).Where("active = ?", true).Count(&out.ActiveProducts).Error; err != nil {
		return out, err
	}
	if err := db.Model(&models.Product{}).Where("active = ? AND stock <= ?", true, LowStockThreshold).Count(&out.LowStock).Error; err != nil {
		return out, err
	}
	if err := db.Model(&models.User{}).Count(&out.Customers).Error; err != nil {
		return out, err
	}
	if err := db.Model(&models.Article{}).Where("published = ?", true).Count(&out.PublishedGuides).Error; err != nil {
		return out, err
	}
	return out, nil
}

// TopProducts ranks products by units sold in paid orders.
func TopProducts(ctx context.Context, limit int) ([]models.TopProduct, error) {
	out := make([]models.TopProduct, 0, limit)
	err := config.DB.WithContext(ctx).
		Table("order_items AS oi").
		Select(`oi.product_id AS product_id,
			MAX(oi.product_name) AS product_name,
			COUNT(DISTINCT oi.order_id) AS order_count,
			SUM(oi.quantity) AS sales_count,
			SUM(oi.subtotal) AS revenue`).
		Joins("JOIN orders o ON o.id = oi.order_id").
		Where("o.status IN ?", revenueStatuses).
		Group("oi.product_id").
		Order("sales_count DESC, revenue DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

const monthlyRevenueSQL = `
	SELECT to_char(date_trunc('month', created_at), 'YYYY-MM') AS month,
	       COALESCE(SUM(total), 0)::float8 AS revenue,
	       COUNT(*)::int AS order_count
	FROM orders
	WHERE status = ANY($1) AND created_at >= $2
	GROUP BY date_trunc('month', created_at)
	ORDER BY date_trunc('month', created_at) ASC`

// MonthlyRevenue returns the last twelve months of paid revenue, with
// empty months filled in. It runs on the pgx pool.
func MonthlyRevenue(ctx context.Context) ([]models.MonthlyRevenueData, error) {
	if config.Pool == nil {
		return nil, ErrReportingUnavailable
	}

	now := time.Now().UTC()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -11, 0)

	rows, err := config.Pool.Query(ctx, monthlyRevenueSQL, revenueStatuses, first)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byMonth := make(map[string]models.MonthlyRevenueData)
	for rows.Next() {
		var m models.MonthlyRevenueData
		if err := rows.Scan(&m.Month, &m.Revenue, &m.OrderCount); err != nil {
			return nil, err
		}
		byMonth[m.Month] = m
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return fillMonths(first, byMonth), nil
}

func fillMonths(first time.Time, byMonth map[string]models.MonthlyRevenueData) []models.MonthlyRevenueData {
	out := make([]models.MonthlyRevenueData, 12)
	for i := range out {
		key := first.AddDate(0, i, 0).Format("2006-01")
		m, ok := byMonth[key]
		if !ok {
			m = models.MonthlyRevenueData{Month: key}
		}
		m.RevenueText = utils.FormatPrice(m.Revenue)
		out[i] = m
	}
	return out
}
