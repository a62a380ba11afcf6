package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/metrics"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ════════════════════════════════════════════════════════════
// Expiration timer
// ════════════════════════════════════════════════════════════

type TimerState int32

const (
	TimerRunning TimerState = iota
	TimerExpired
	TimerStopped
)

func (s TimerState) String() string {
	switch s {
	case TimerRunning:
		return "running"
	case TimerExpired:
		return "expired"
	case TimerStopped:
		return "stopped"
	}
	return "unknown"
}

// ExpirationTimer counts down to createdAt+timeout. When it reaches zero it
// runs the return-to-cart action once, then the completion callback. A
// failing action still ends in TimerExpired and still calls onDone with the
// error; there is no retry.
type ExpirationTimer struct {
	deadline time.Time
	action   func(ctx context.Context) error
	onDone   func(err error)
	state    atomic.Int32
	timer    *time.Timer
	done     chan struct{}
}

// actionTimeout bounds a single return-to-cart call.
const actionTimeout = 10 * time.Second

// NewExpirationTimer starts a timer. A deadline already in the past fires
// immediately (asynchronously).
func NewExpirationTimer(createdAt time.Time, timeout time.Duration, action func(ctx context.Context) error, onDone func(err error)) *ExpirationTimer {
	t := &ExpirationTimer{
		deadline: createdAt.Add(timeout),
		action:   action,
		onDone:   onDone,
		done:     make(chan struct{}),
	}
	t.state.Store(int32(TimerRunning))

	wait := time.Until(t.deadline)
	if wait < 0 {
		wait = 0
	}
	t.timer = time.AfterFunc(wait, t.fire)
	return t
}

func (t *ExpirationTimer) fire() {
	if !t.state.CompareAndSwap(int32(TimerRunning), int32(TimerExpired)) {
		return
	}
	defer close(t.done)

	var err error
	if t.action != nil {
		ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
		err = t.action(ctx)
		cancel()
	}
	if t.onDone != nil {
		t.onDone(err)
	}
}

// Stop cancels a running timer. It reports whether the timer was still
// running; once expired or stopped it is a no-op.
func (t *ExpirationTimer) Stop() bool {
	if !t.state.CompareAndSwap(int32(TimerRunning), int32(TimerStopped)) {
		return false
	}
	t.timer.Stop()
	close(t.done)
	return true
}

// State returns the current state.
func (t *ExpirationTimer) State() TimerState {
	return TimerState(t.state.Load())
}

// Deadline is the instant the timer fires.
func (t *ExpirationTimer) Deadline() time.Time {
	return t.deadline
}

// Remaining is the time left, never negative.
func (t *ExpirationTimer) Remaining() time.Duration {
	if t.State() != TimerRunning {
		return 0
	}
	if d := time.Until(t.deadline); d > 0 {
		return d
	}
	return 0
}

// Done is closed once the timer has expired (after onDone returned) or
// was stopped.
func (t *ExpirationTimer) Done() <-chan struct{} {
	return t.done
}

// ════════════════════════════════════════════════════════════
// Server-side expiration
// ════════════════════════════════════════════════════════════

// ExpireOrder moves a pending order to expired, puts the reserved stock
// back and returns its items to the owner's cart, all in one transaction.
// It reports whether this call did the expiration; calling it again, or on
// an order that is not pending, changes nothing.
func ExpireOrder(ctx context.Context, orderID uuid.UUID) (bool, error) {
	expired := false
	err := config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		res := tx.Model(&models.Order{}).
			Where("id = ? AND status = ?", orderID, models.OrderStatusPending).
			Updates(map[string]interface{}{
				"status":     models.OrderStatusExpired,
				"expired_at": now,
			})
		if res.Error != nil {
			return fmt.Errorf("mark order expired: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return nil
		}

		var order models.Order
		if err := tx.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
			return fmt.Errorf("load expired order: %w", err)
		}

		for _, item := range order.Items {
			restock := tx.Model(&models.Product{}).
				Where("id = ?", item.ProductID).
				UpdateColumn("stock", gorm.Expr("stock + ?", item.Quantity))
			if restock.Error != nil {
				return fmt.Errorf("restock %s: %w", item.ProductID, restock.Error)
			}
			if restock.RowsAffected == 0 {
				// product deleted since checkout
				continue
			}
			if err := addToCartTx(tx, order.UserID, item.ProductID, item.Quantity); err != nil {
				return fmt.Errorf("return %s to cart: %w", item.ProductID, err)
			}
		}

		expired = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return expired, nil
}

// addToCartTx increments the cart line for (user, product), creating it
// when missing.
func addToCartTx(tx *gorm.DB, userID, productID uuid.UUID, quantity int) error {
	item := models.CartItem{UserID: userID, ProductID: productID, Quantity: quantity}
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("cart_items.quantity + excluded.quantity"),
			"updated_at": time.Now().UTC(),
		}),
	}).Create(&item).Error
}

// ════════════════════════════════════════════════════════════
// Expirer: one timer per pending order + periodic sweep
// ════════════════════════════════════════════════════════════

// ExpireFunc is what a timer or the sweep calls for an overdue order.
type ExpireFunc func(ctx context.Context, orderID uuid.UUID) (bool, error)

type OrderExpirer struct {
	mu      sync.Mutex
	timers  map[uuid.UUID]*ExpirationTimer
	timeout time.Duration
	expire  ExpireFunc
	cron    *cron.Cron
}

func NewOrderExpirer(timeout time.Duration, expire ExpireFunc) *OrderExpirer {
	if expire == nil {
		expire = ExpireOrder
	}
	return &OrderExpirer{
		timers:  make(map[uuid.UUID]*ExpirationTimer),
		timeout: timeout,
		expire:  expire,
	}
}

// Schedule arms a timer for a pending order, replacing any existing one.
func (e *OrderExpirer) Schedule(order models.Order) {
	id := order.ID
	createdAt := order.ExpiresAt.Add(-e.timeout)

	e.mu.Lock()
	defer e.mu.Unlock()

	if prev, ok := e.timers[id]; ok {
		prev.Stop()
	}

	// The timer may fire before this function returns; onDone takes e.mu
	// before looking at t, so it always sees the assignment below.
	var t *ExpirationTimer
	t = NewExpirationTimer(createdAt, e.timeout,
		func(ctx context.Context) error {
			did, err := e.expire(ctx, id)
			if did {
				metrics.OrderExpired("timer")
			}
			return err
		},
		func(err error) {
			e.mu.Lock()
			if cur, ok := e.timers[id]; ok && cur == t {
				delete(e.timers, id)
			}
			e.mu.Unlock()

			if err != nil {
				config.Log.Error("order expiration failed",
					zap.String("order_id", id.String()), zap.Error(err))
				return
			}
			config.Log.Info("order expiration timer fired", zap.String("order_id", id.String()))
		},
	)
	e.timers[id] = t
}

// Cancel stops the timer of a paid or cancelled order.
func (e *OrderExpirer) Cancel(orderID uuid.UUID) bool {
	e.mu.Lock()
	t, ok := e.timers[orderID]
	delete(e.timers, orderID)
	e.mu.Unlock()
	if !ok {
		return false
	}
	return t.Stop()
}

// Timer returns the live timer for an order, if any.
func (e *OrderExpirer) Timer(orderID uuid.UUID) (*ExpirationTimer, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	t, ok := e.timers[orderID]
	return t, ok
}

// Pending is the number of armed timers.
func (e *OrderExpirer) Pending() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.timers)
}

// Sweep expires every pending order past its deadline. It catches orders
// whose timer was lost to a restart.
func (e *OrderExpirer) Sweep(ctx context.Context) (int, error) {
	var ids []uuid.UUID
	if err := config.DB.WithContext(ctx).
		Model(&models.Order{}).
		Where("status = ? AND expires_at <= ?", models.OrderStatusPending, time.Now().UTC()).
		Pluck("id", &ids).Error; err != nil {
		return 0, fmt.Errorf("find overdue orders: %w", err)
	}

	n := 0
	for _, id := range ids {
		did, err := e.expire(ctx, id)
		if err != nil {
			config.Log.Error("sweep: order expiration failed", zap.String("order_id", id.String()), zap.Error(err))
			continue
		}
		if did {
			n++
			metrics.OrderExpired("sweep")
		}
		e.Cancel(id)
	}
	return n, nil
}

// Restore re-arms timers for orders still inside their payment window.
func (e *OrderExpirer) Restore(ctx context.Context) (int, error) {
	var orders []models.Order
	if err := config.DB.WithContext(ctx).
		Where("status = ? AND expires_at > ?", models.OrderStatusPending, time.Now().UTC()).
		Find(&orders).Error; err != nil {
		return 0, fmt.Errorf("find pending orders: %w", err)
	}
	for _, o := range orders {
		e.Schedule(o)
	}
	return len(orders), nil
}

// Start runs the sweep on the given cron spec ("@every 1m").
func (e *OrderExpirer) Start(spec string) error {
	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		ctx, cancel := config.WithTimeout()
		defer cancel()
		n, err := e.Sweep(ctx)
		if err != nil {
			config.Log.Error("order sweep failed", zap.Error(err))
			return
		}
		if n > 0 {
			config.Log.Info("order sweep expired orders", zap.Int("count", n))
		}
	}); err != nil {
		return fmt.Errorf("schedule order sweep %q: %w", spec, err)
	}
	c.Start()
	e.cron = c
	return nil
}

// Stop halts the sweep and every armed timer.
func (e *OrderExpirer) Stop() {
	if e.cron != nil {
		<-e.cron.Stop().Done()
	}
	e.mu.Lock()
	timers := e.timers
	e.timers = make(map[uuid.UUID]*ExpirationTimer)
	e.mu.Unlock()
	for _, t := range timers {
		t.Stop()
	}
}

// ════════════════════════════════════════════════════════════
// Global Instance
// ════════════════════════════════════════════════════════════

var orderExpirer *OrderExpirer

// InitOrderExpirer installs the process-wide expirer.
func InitOrderExpirer(e *OrderExpirer) {
	orderExpirer = e
}

// GetOrderExpirer returns the process-wide expirer, nil before startup.
func GetOrderExpirer() *OrderExpirer {
	return orderExpirer
}
