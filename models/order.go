package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
	OrderStatusExpired   = "expired"
)

// Order is a checkout. It starts pending with a payment deadline
// (ExpiresAt); an unpaid order past the deadline is expired and its items
// go back to the customer's cart.
type Order struct {
	ID               uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;index"`
	User             *User          `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
	OrderNumber      string         `json:"order_number" gorm:"not null;uniqueIndex"`
	Status           string         `json:"status" gorm:"not null;index;default:'pending'"`
	Subtotal         float64        `json:"subtotal" gorm:"type:numeric(12,2);not null"`
	Tax              float64        `json:"tax" gorm:"type:numeric(12,2);not null"`
	ShippingCost     float64        `json:"shipping_cost" gorm:"type:numeric(12,2);not null"`
	Total            float64        `json:"total" gorm:"type:numeric(12,2);not null"`
	ShippingAddress  datatypes.JSON `json:"shipping_address" swaggertype:"object"`
	CustomerNotes    *string        `json:"customer_notes,omitempty" gorm:"type:text"`
	ExpiresAt        time.Time      `json:"expires_at" gorm:"not null;index"`
	PaymentReference *string        `json:"payment_reference,omitempty"`
	CardLast4        *string        `json:"card_last4,omitempty" gorm:"type:varchar(4)"`
	PaidAt           *time.Time     `json:"paid_at,omitempty"`
	ShippedAt        *time.Time     `json:"shipped_at,omitempty"`
	DeliveredAt      *time.Time     `json:"delivered_at,omitempty"`
	CancelledAt      *time.Time     `json:"cancelled_at,omitempty"`
	ExpiredAt        *time.Time     `json:"expired_at,omitempty"`
	Items            []OrderItem    `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time      `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt        time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.Must(uuid.NewV7())
	}
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
	return nil
}

func (Order) TableName() string {
	return "orders"
}

// Address decodes the shipping address snapshot.
func (o *Order) Address() ShippingAddress {
	var a ShippingAddress
	if len(o.ShippingAddress) > 0 {
		_ = json.Unmarshal(o.ShippingAddress, &a)
	}
	return a
}

// OrderItem is a product line frozen at checkout time.
type OrderItem struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	ProductName string    `json:"product_name" gorm:"not null"`
	SKU         string    `json:"sku"`
	Price       float64   `json:"price" gorm:"type:numeric(12,2);not null"`
	Quantity    int       `json:"quantity" gorm:"not null"`
	Subtotal    float64   `json:"subtotal" gorm:"type:numeric(12,2);not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (OrderItem) TableName() string {
	return "order_items"
}

// ShippingAddress is stored as a JSON snapshot on the order.
type ShippingAddress struct {
	FullName   string `json:"full_name" binding:"required" example:"Lucía Palomo"`
	Street     string `json:"street" binding:"required" example:"Calle Mayor 12, 3ºB"`
	City       string `json:"city" binding:"required" example:"Granada"`
	PostalCode string `json:"postal_code" binding:"required" example:"18001"`
	Province   string `json:"province" example:"Granada"`
	Country    string `json:"country" example:"ES"`
	Phone      string `json:"phone" example:"+34 600 000 000"`
}

// ════════════════════════════════════════════════════════════
// Requests / Responses
// ════════════════════════════════════════════════════════════

// CreateOrderRequest turns the current cart into a pending order.
type CreateOrderRequest struct {
	ShippingAddress ShippingAddress `json:"shipping_address" binding:"required"`
	CustomerNotes   *string         `json:"customer_notes,omitempty"`
}

// PayOrderRequest carries the (simulated) card details.
type PayOrderRequest struct {
	// 12 to 19 digits, spaces and dashes allowed
	CardNumber string `json:"card_number" binding:"required" example:"4242 4242 4242 4242"`
	CardHolder string `json:"card_holder" binding:"required" example:"LUCIA PALOMO"`
	// MM/YY or MM/YYYY, valid through the end of that month
	Expiry string `json:"expiry" binding:"required" example:"12/28"`
	CVC    string `json:"cvc" binding:"required" example:"123"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=shipped delivered cancelled"`
}

// OrderHistoryResponse for list view
type OrderHistoryResponse struct {
	ID          uuid.UUID `json:"id"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	Total       float64   `json:"total"`
	TotalText   string    `json:"total_text"`
	ItemCount   int       `json:"item_count"`
	ExpiresAt   time.Time `json:"expires_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// OrderDetail adds the seconds left to pay, which the storefront countdown
// starts from.
type OrderDetail struct {
	Order
	Address          ShippingAddress `json:"address"`
	SecondsRemaining int             `json:"seconds_remaining"`
}

// AdminOrderRow is one line of the admin order listing.
type AdminOrderRow struct {
	ID            uuid.UUID `json:"id"`
	OrderNumber   string    `json:"order_number"`
	Status        string    `json:"status"`
	Total         float64   `json:"total"`
	TotalText     string    `json:"total_text" gorm:"-"`
	ItemCount     int       `json:"item_count"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	ExpiresAt     time.Time `json:"expires_at"`
	CreatedAt     time.Time `json:"created_at"`
}
