package models

// DashboardStats is the admin landing page summary.
type DashboardStats struct {
	Orders          OrderStatusCounts `json:"orders"`
	Revenue         float64           `json:"revenue"`          // paid, shipped and delivered orders
	RevenueText     string            `json:"revenue_text"`     // formatted for display
	AverageOrder    float64           `json:"average_order"`    // over revenue orders
	ActiveProducts  int64             `json:"active_products"`  // visible in the storefront
	LowStock        int64             `json:"low_stock"`        // active with stock <= LowStockThreshold
	Customers       int64             `json:"customers"`        // registered users
	PublishedGuides int64             `json:"published_guides"` // published articles
}

// OrderStatusCounts is the number of orders in each status.
type OrderStatusCounts struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Paid      int64 `json:"paid"`
	Shipped   int64 `json:"shipped"`
	Delivered int64 `json:"delivered"`
	Cancelled int64 `json:"cancelled"`
	Expired   int64 `json:"expired"`
}

// TopProduct represents a best selling product
type TopProduct struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	OrderCount  int     `json:"order_count"` // distinct orders containing it
	SalesCount  int     `json:"sales_count"` // units sold
	Revenue     float64 `json:"revenue"`
}

type MonthlyRevenueData struct {
	Month       string  `json:"month"` // YYYY-MM
	Revenue     float64 `json:"revenue"`
	OrderCount  int     `json:"order_count"`
	RevenueText string  `json:"revenue_text"`
}
