package services

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/metrics"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const orderCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// NewOrderNumber returns a human friendly number like ORD-20261018-AB12CD.
func NewOrderNumber(now time.Time) string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("crypto/rand: %v", err))
	}
	for i, b := range buf {
		buf[i] = orderCodeAlphabet[int(b)%len(orderCodeAlphabet)]
	}
	return fmt.Sprintf("ORD-%s-%s", now.UTC().Format("20060102"), buf)
}

// lockRows adds FOR UPDATE where the dialect has row locks (SQLite
// serializes writers anyway).
func lockRows(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// claimCart deletes exactly the cart lines the order was built from. A
// concurrent checkout that already took them leaves fewer rows behind.
func claimCart(tx *gorm.DB, cart []models.CartItem) error {
	ids := make([]uuid.UUID, len(cart))
	for i, ci := range cart {
		ids[i] = ci.ID
	}
	res := tx.Where("id IN ?", ids).Delete(&models.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected != int64(len(cart)) {
		return ErrCartChanged
	}
	return nil
}

// Checkout turns the cart into a pending order: stock is reserved, the cart
// is emptied and the order gets a payment deadline. The expirer (when
// running) is told about the new order.
func Checkout(ctx context.Context, userID uuid.UUID, req models.CreateOrderRequest) (*models.Order, error) {
	address, err := json.Marshal(req.ShippingAddress)
	if err != nil {
		return nil, fmt.Errorf("encode address: %w", err)
	}

	var order models.Order
	err = config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cart []models.CartItem
		if err := lockRows(tx).Preload("Product").
			Where("user_id = ?", userID).
			Order("created_at ASC").
			Find(&cart).Error; err != nil {
			return err
		}
		if len(cart) == 0 {
			return ErrEmptyCart
		}

		items := make([]models.OrderItem, 0, len(cart))
		lines := make([]utils.CartLine, 0, len(cart))
		for _, ci := range cart {
			p := ci.Product
			if p == nil || !p.Active {
				return ErrProductUnavailable
			}

			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", p.ID, ci.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", ci.Quantity))
			if res.Error != nil {
				return fmt.Errorf("reserve %s: %w", p.ID, res.Error)
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: %s", ErrInsufficientStock, p.Name)
			}

			items = append(items, models.OrderItem{
				ProductID:   p.ID,
				ProductName: p.Name,
				SKU:         p.SKU,
				Price:       p.Price,
				Quantity:    ci.Quantity,
				Subtotal:    utils.LineSubtotal(p.Price, ci.Quantity),
			})
			lines = append(lines, utils.CartLine{Price: p.Price, Quantity: ci.Quantity})
		}

		totals := utils.ComputeTotals(lines, Pricing())
		now := time.Now().UTC()
		order = models.Order{
			UserID:          userID,
			OrderNumber:     NewOrderNumber(now),
			Status:          models.OrderStatusPending,
			Subtotal:        totals.Subtotal,
			Tax:             totals.Tax,
			ShippingCost:    totals.ShippingCost,
			Total:           totals.Total,
			ShippingAddress: address,
			CustomerNotes:   req.CustomerNotes,
			ExpiresAt:       now.Add(config.App.OrderTimeout),
			Items:           items,
		}
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		return claimCart(tx, cart)
	})
	if err != nil {
		return nil, err
	}

	if e := GetOrderExpirer(); e != nil {
		e.Schedule(order)
	}
	config.Log.Info("order created",
		zap.String("order_number", order.OrderNumber),
		zap.String("user_id", userID.String()),
		zap.Float64("total", order.Total),
		zap.Time("expires_at", order.ExpiresAt),
	)
	return &order, nil
}

// FindUserOrder loads an order with items, scoped to its owner.
func FindUserOrder(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := config.DB.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func cardDigits(number string) (string, bool) {
	digits := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '-':
			return -1
		}
		return 'x'
	}, number)
	if strings.ContainsRune(digits, 'x') || len(digits) < 12 || len(digits) > 19 {
		return "", false
	}
	return digits, true
}

// cardExpiryValid accepts MM/YY or MM/YYYY; the card works until the
// last day of that month.
func cardExpiryValid(expiry string, now time.Time) bool {
	month, year, ok := strings.Cut(strings.TrimSpace(expiry), "/")
	if !ok || len(month) != 2 || (len(year) != 2 && len(year) != 4) {
		return false
	}
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return false
	}
	y, err := strconv.Atoi(year)
	if err != nil || y < 0 {
		return false
	}
	if len(year) == 2 {
		y += 2000
	}
	// first instant after the expiry month
	end := time.Date(y, time.Month(m)+1, 1, 0, 0, 0, 0, time.UTC)
	return now.UTC().Before(end)
}

func cvcValid(cvc string) bool {
	if len(cvc) < 3 || len(cvc) > 4 {
		return false
	}
	for _, r := range cvc {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// PayOrder runs the simulated card payment. Cards ending in 0000 are
// declined. An order past its deadline is expired on the spot and the
// payment refused.
func PayOrder(ctx context.Context, userID, orderID uuid.UUID, req models.PayOrderRequest) (*models.Order, error) {
	order, err := FindUserOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != models.OrderStatusPending {
		metrics.PaymentAttempt("rejected")
		return nil, ErrOrderNotPending
	}
	if !time.Now().Before(order.ExpiresAt) {
		if did, err := ExpireOrder(ctx, order.ID); err != nil {
			config.Log.Error("expire overdue order on payment", zap.String("order_id", order.ID.String()), zap.Error(err))
		} else if did {
			metrics.OrderExpired("payment")
		}
		if e := GetOrderExpirer(); e != nil {
			e.Cancel(order.ID)
		}
		metrics.PaymentAttempt("rejected")
		return nil, ErrOrderExpired
	}

	digits, ok := cardDigits(req.CardNumber)
	if !ok || !cardExpiryValid(req.Expiry, time.Now()) || !cvcValid(req.CVC) {
		metrics.PaymentAttempt("rejected")
		return nil, ErrInvalidCard
	}
	if strings.HasSuffix(digits, "0000") {
		metrics.PaymentAttempt("declined")
		return nil, ErrPaymentDeclined
	}

	now := time.Now().UTC()
	last4 := digits[len(digits)-4:]
	ref := "PAY-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
	res := config.DB.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ? AND status = ?", order.ID, models.OrderStatusPending).
		Updates(map[string]interface{}{
			"status":            models.OrderStatusPaid,
			"paid_at":           now,
			"payment_reference": ref,
			"card_last4":        last4,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// expired between the read and the update
		metrics.PaymentAttempt("rejected")
		return nil, ErrOrderNotPending
	}

	if e := GetOrderExpirer(); e != nil {
		e.Cancel(order.ID)
	}
	metrics.PaymentAttempt("approved")

	order.Status = models.OrderStatusPaid
	order.PaidAt = &now
	order.PaymentReference = &ref
	order.CardLast4 = &last4
	return order, nil
}

// ExpireUserOrder is the customer-triggered expiration (the storefront
// countdown reached zero). It is idempotent.
func ExpireUserOrder(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, bool, error) {
	if _, err := FindUserOrder(ctx, userID, orderID); err != nil {
		return nil, false, err
	}
	did, err := ExpireOrder(ctx, orderID)
	if err != nil {
		return nil, false, err
	}
	if did {
		metrics.OrderExpired("client")
	}
	if e := GetOrderExpirer(); e != nil {
		e.Cancel(orderID)
	}
	order, err := FindUserOrder(ctx, userID, orderID)
	if err != nil {
		return nil, false, err
	}
	return order, did, nil
}

var allowedTransitions = map[string][]string{
	models.OrderStatusPending: {models.OrderStatusCancelled},
	models.OrderStatusPaid:    {models.OrderStatusShipped, models.OrderStatusCancelled},
	models.OrderStatusShipped: {models.OrderStatusDelivered},
}

func canTransition(from, to string) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// TransitionOrder applies an admin status change. Cancelling puts the
// reserved stock back.
func TransitionOrder(ctx context.Context, orderID uuid.UUID, to string) (*models.Order, error) {
	var order models.Order
	err := config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
			return err
		}
		from := order.Status
		if !canTransition(from, to) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
		}

		now := time.Now().UTC()
		updates := map[string]interface{}{"status": to}
		switch to {
		case models.OrderStatusShipped:
			updates["shipped_at"] = now
		case models.OrderStatusDelivered:
			updates["delivered_at"] = now
		case models.OrderStatusCancelled:
			updates["cancelled_at"] = now
		}

		res := tx.Model(&models.Order{}).Where("id = ? AND status = ?", order.ID, from).Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: order changed concurrently", ErrInvalidTransition)
		}

		if to == models.OrderStatusCancelled {
			for _, item := range order.Items {
				if err := tx.Model(&models.Product{}).
					Where("id = ?", item.ProductID).
					UpdateColumn("stock", gorm.Expr("stock + ?", item.Quantity)).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if to == models.OrderStatusCancelled {
		if e := GetOrderExpirer(); e != nil {
			e.Cancel(orderID)
		}
	}

	var updated models.Order
	if err := config.DB.WithContext(ctx).Preload("Items").First(&updated, "id = ?", orderID).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

// OrderDetail adds the decoded address and remaining payment time.
func OrderDetail(order *models.Order) models.OrderDetail {
	remaining := 0
	if order.Status == models.OrderStatusPending {
		if d := time.Until(order.ExpiresAt); d > 0 {
			remaining = int(d.Seconds())
		}
	}
	return models.OrderDetail{Order: *order, Address: order.Address(), SecondsRemaining: remaining}
}

// IsNotFound reports a missing row.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
