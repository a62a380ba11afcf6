package services

import (
	"context"
	"testing"
	"time"

	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var shipTo = models.CreateOrderRequest{
	ShippingAddress: models.ShippingAddress{
		FullName:   "Lucía Palomo",
		Street:     "Calle Mayor 12",
		City:       "Granada",
		PostalCode: "18001",
	},
}

func card(number string) models.PayOrderRequest {
	return models.PayOrderRequest{CardNumber: number, CardHolder: "ANA", Expiry: "12/39", CVC: "123"}
}

func stockOf(t *testing.T, db *gorm.DB, id uuid.UUID) int {
	t.Helper()
	var p models.Product
	require.NoError(t, db.First(&p, "id = ?", id).Error)
	return p.Stock
}

func cartOf(t *testing.T, db *gorm.DB, userID uuid.UUID) map[uuid.UUID]int {
	t.Helper()
	var items []models.CartItem
	require.NoError(t, db.Where("user_id = ?", userID).Find(&items).Error)
	out := make(map[uuid.UUID]int, len(items))
	for _, it := range items {
		out[it.ProductID] = it.Quantity
	}
	return out
}

func checkoutTwoLines(t *testing.T, db *gorm.DB, cat *testutil.Catalog, user models.User) *models.Order {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, AddToCart(ctx, user.ID, cat.TentLight.ID, 2))
	require.NoError(t, AddToCart(ctx, user.ID, cat.Pack40.ID, 1))

	order, err := Checkout(ctx, user.ID, shipTo)
	require.NoError(t, err)
	return order
}

func TestCheckout_ReservesStockAndEmptiesCart(t *testing.T) {
	db := testutil.NewDB(t)
	cat := testutil.SeedCatalog(t, db)
	user := testutil.NewCustomer(t, db, "ana@example.com")

	before := time.Now()
	order := checkoutTwoLines(t, db, cat, user)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Len(t, order.Items, 2)
	assert.Regexp(t, `^ORD-\d{8}-[A-Z2-9]{6}$`, order.OrderNumber)
	assert.Equal(t, 298.0, order.Subtotal)
	assert.Equal(t, 51.72, order.Tax)
	assert.Equal(t, 0.0, order.ShippingCost)
	assert.Equal(t, 298.0, order.Total)
	assert.WithinDuration(t, before.Add(15*time.Minute), order.ExpiresAt, 5*time.Second)
	assert.Equal(t, "Granada", order.Address().City)

	assert.Equal(t, 3, stockOf(t, db, cat.TentLight.ID))
	assert.Equal(t, 9, stockOf(t, db, cat.Pack40.ID))
	assert.Empty(t, cartOf(t, db, user.ID))
}

func TestCheckout_SmallOrderPaysShipping(t *testing.T) {
	db := testutil.NewDB(t)
	cat := testutil.SeedCatalog(t, db)
	user := testutil.NewCustomer(t, db, "ana@example.com")
	require.NoError(t, db.Model(&cat.TentLight).Update("price", 45.5).Error)

	require.NoError(t, AddToCart(context.Background(), user.ID, cat.TentLight.ID, 1))
	order, err := Checkout(context.Background(), user.ID, shipTo)
	require.NoError(t, err)

	assert.Equal(t, 45.5, order.Subtotal)
	assert.Equal(t, 4.95, order.ShippingCost)
	assert.Equal(t, 50.45, order.Total)
}

func TestCheckout_EmptyCart(t *testing.T) {
	db := testutil.NewDB(t)
	user := testutil.NewCustomer(t, db, "ana@example.com")

	_, err := Checkout(context.Background(), user.ID, shipTo)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckout_InsufficientStockRollsBack(t *testing.T) {
	db := testutil.NewDB(t)
	cat := testutil.SeedCatalog(t, db)
	user := testutil.NewCustomer(t, db, "ana@example.com")
	ctx := context.Background()

	require.NoError(t, AddToCart(ctx, user.ID, cat.Pack40.ID, 2))
	require.NoError(t, AddToCart(ctx, user.ID, cat.TentFamily.ID, 2))
	require.NoError(t, db.Model(&cat.TentFamily).Update("stock", 1).Error)

	_, err := Checkout(ctx, user.ID, shipTo)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	assert.Equal(t, 10, stockOf(t, db, cat.Pack40.ID))
	assert.Len(t, cartOf(t, db, user.ID), 2)

	var n int64
	require.NoError(t, db.Model(&models.Order{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestCheckout_DeactivatedProduct(t *testing.T) {
	db := testutil.NewDB(t)
	cat := testutil.SeedCatalog(t, db)
	user := testutil.NewCustomer(t, db, "ana@example.com")

	require.NoError(t, AddToCart(context.Background(), user.ID, cat.Pack40.ID, 1))
	require.NoError(t, db.Model(&cat.Pack40).Update("active", false).Error)

	_, err := Checkout(context.Background(), user.ID, shipTo)
	assert.ErrorIs(t, err, ErrProductUnavailable)
}

func TestAddToCart_MergesAndChecksStock(t *testing.T) {
	db := testutil.NewDB(t)
	cat := testutil.SeedCatalog(t, db)
	user := testutil.NewCustomer(t, db, "ana@example.com")
	ctx := context.Background()

	require.NoError(t, AddToCart(ctx, user.ID, cat.TentLight.ID, 2))
	require.NoError(t, AddToCart(ctx, user.ID, cat.TentLight.ID, 3))
	assert.Equal(t, 5, cartOf(t, db, user.ID)[cat.TentLight.ID])

	err := AddToCart(ctx, user.ID, cat.TentLight.ID, 1)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	err = AddToCart(ctx, user.ID, cat.PackHidden.ID, 1)
	assert.ErrorIs(t, err, ErrProductUnavailable)

	view, err := GetCart(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 445.0, view.Totals.Subtotal)
	assert.Equal(t, "445,00 €", view.TotalsText.Total)
}

func TestPayOrder(t *testing.T) {
	db := testutil.NewDB(t)
	cat := testutil.SeedCatalog(t, db)
	user := testutil.NewCustomer(t, db, "ana@example.com")
	order := checkoutTwoLines(t, db, cat, user)
	ctx := context.Background()

	_, err := PayOrder(ctx, user.ID, order.ID, card("4242-abcd-4242"))
	assert.ErrorIs(t, err, ErrInvalidCard)

	lapsed := card("4242424242424242")
	lapsed.Expiry = "01/20"
	_, err = PayOrder(ctx, user.ID, order.ID, lapsed)
	assert.ErrorIs(t, err, ErrInvalidCard)

	badCVC := card("4242424242424242")
	badCVC.CVC = "12a"
	_, err = PayOrder(ctx, user.ID, order.ID, badCVC)
	assert.ErrorIs(t, err, ErrInvalidCard)

	_, err = PayOrder(ctx, user.ID, order.ID, card("4000 0000 0000 0000"))
	assert.ErrorIs(t, err, ErrPaymentDeclined)

	other := testutil.NewCustomer(t, db, "otro@example.com")
	_, err = PayOrder(ctx, other.ID, order.ID, card("4242424242424242"))
	assert.True(t, IsNotFound(err))

	paid, err := PayOrder(ctx, user.ID, order.ID, card("4242 4242 4242 4242"))
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPaid, paid.Status)
	require.NotNil(t, paid.CardLast4)
	assert.Equal(t, "4242", *paid.CardLast4)
	require.NotNil(t, paid.PaymentReference)
	assert.Regexp(t, `^PAY-[0-9A-F]{12}$`, *paid.PaymentReference)

	_, err = PayOrder(ctx, user.ID, order.ID, card("4242424242424242"))
	assert.ErrorIs(t, err, ErrOrderNotPending)
}

func TestPayOrder_AfterDeadlineExpiresOrder(t *testing.T) {
	db := testutil.NewDB(t)
	cat := testutil.SeedCatalog(t, db)
	user := testutil.NewCustomer(t, db, "ana@example.com")
	order := checkoutTwoLines(t, db, cat, user)
	require.NoError(t, db.Model(&models.Order{}).Where("id = ?", order.ID).
		Update("expires_at", time.Now().UTC().Add(-time.Hour)).Error)

	_, err := PayOrder(context.Background(), user.ID, order.ID, card("4242424242424242"))
	assert.ErrorIs(t, err, ErrOrderExpired)

	var stored models.Order
	require.NoError(t, db.First(&stored, "id = ?", order.ID).Error)
	assert.Equal(t, models.OrderStatusExpired, stored.Status)
	assert.NotNil(t, stored.ExpiredAt)
	assert.Equal(t, map[uuid.UUID]int{cat.TentLight.ID: 2, cat.Pack40.ID: 1}, cartOf(t, db, user.ID))
}

func TestExpireOrder_RestocksAndReturnsItemsToCart(t *testing.T) {
	db := testutil.NewDB(t)
	cat := testutil.SeedCatalog(t, db)
	user := testutil.NewCustomer(t, db, "ana@example.com")
	order := checkoutTwoLines(t, db, cat, user)
	ctx := context.Background()

	// the customer started a new cart meanwhile
	require.NoError(t, AddToCart(ctx, user.ID, cat.TentLight.ID, 1))

	did, err := ExpireOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, did)

	assert.Equal(t, 5, stockOf(t, db, cat.TentLight.ID))
	assert.Equal(t, 10, stockOf(t, db, cat.Pack40.ID))
	assert.Equal(t, map[uuid.UUID]int{cat.TentLight.ID: 3, cat.Pack40.ID: 1}, cartOf(t, db, user.ID))

	did, err = ExpireOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.False(t, did)
	assert.Equal(t, 5, stockOf(t, db, cat.TentLight.ID))
	assert.Equal(t, 3, cartOf(t, db, user.ID)[cat.TentLight.ID])
}

func TestExpireOrder_IgnoresPaidOrder(t *testing.T) {
	db := testutil.NewDB(t)
	cat := testutil.SeedCatalog(t, db)
	user := testutil.NewCustomer(t, db, "ana@example.com")
	order := checkoutTwoLines(t, db, cat, user)
	ctx := context.Background()

	_, err := PayOrder(ctx, user.ID, order.ID, card("4242424242424242"))
	require.NoError(t, err)

	did, err := ExpireOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.False(t, did)
	assert.Equal(t, 3, stockOf(t, db, cat.TentLight.ID))
	assert.Empty(t, cartOf(t, db, user.ID))
}

func TestExpireUserOrder(t *testing.T) {
	db := testutil.NewDB(t)
	cat := testutil.SeedCatalog(t, db)
	user := testutil.NewCustomer(t, db, "ana@example.com")
	order := checkoutTwoLines(t, db, cat, user)
	ctx := context.Background()

	other := testutil.NewCustomer(t, db, "otro@example.com")
	_, _, err := ExpireUserOrder(ctx, other.ID, order.ID)
	assert.True(t, IsNotFound(err))

	got, did, err := ExpireUserOrder(ctx, user.ID, order.ID)
	require.NoError(t, err)
	assert.True(t, did)
	assert.Equal(t, models.OrderStatusExpired, got.Status)
	assert.Equal(t, 0, OrderDetail(got).SecondsRemaining)

	_, did, err = ExpireUserOrder(ctx, user.ID, order.ID)
	require.NoError(t, err)
	assert.False(t, did)
}

func TestTransitionOrder(t *testing.T) {
	db := testutil.NewDB(t)
	cat := testutil.SeedCatalog(t, db)
	user := testutil.NewCustomer(t, db, "ana@example.com")
	order := checkoutTwoLines(t, db, cat, user)
	ctx := context.Background()

	_, err := TransitionOrder(ctx, order.ID, models.OrderStatusShipped)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = PayOrder(ctx, user.ID, order.ID, card("4242424242424242"))
	require.NoError(t, err)

	shipped, err := TransitionOrder(ctx, order.ID, models.OrderStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, shipped.Status)
	assert.NotNil(t, shipped.ShippedAt)

	_, err = TransitionOrder(ctx, order.ID, models.OrderStatusCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	delivered, err := TransitionOrder(ctx, order.ID, models.OrderStatusDelivered)
	require.NoError(t, err)
	assert.NotNil(t, delivered.DeliveredAt)

	_, err = TransitionOrder(ctx, uuid.New(), models.OrderStatusShipped)
	assert.True(t, IsNotFound(err))
}

func TestTransitionOrder_CancelRestocks(t *testing.T) {
	db := testutil.NewDB(t)
	cat := testutil.SeedCatalog(t, db)
	user := testutil.NewCustomer(t, db, "ana@example.com")
	order := checkoutTwoLines(t, db, cat, user)

	cancelled, err := TransitionOrder(context.Background(), order.ID, models.OrderStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, cancelled.Status)
	assert.Equal(t, 5, stockOf(t, db, cat.TentLight.ID))
	assert.Equal(t, 10, stockOf(t, db, cat.Pack40.ID))
	// cancelled orders do not refill the cart
	assert.Empty(t, cartOf(t, db, user.ID))
}

func TestCardExpiryValid(t *testing.T) {
	now := time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		expiry string
		want   bool
	}{
		{"10/26", true},
		{"12/2030", true},
		{" 01/27 ", true},
		{"09/26", false},
		{"13/27", false},
		{"00/27", false},
		{"1/27", false},
		{"10-27", false},
		{"ab/cd", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cardExpiryValid(tt.expiry, now), tt.expiry)
	}

	digits, ok := cardDigits("4242 4242 4242 4242 424")
	assert.True(t, ok)
	assert.Len(t, digits, 19)
	_, ok = cardDigits("4242 4242 4242 4242 4242")
	assert.False(t, ok)
}

func TestClaimCart_DetectsConcurrentCheckout(t *testing.T) {
	db := testutil.NewDB(t)
	cat := testutil.SeedCatalog(t, db)
	user := testutil.NewCustomer(t, db, "ana@example.com")
	ctx := context.Background()

	require.NoError(t, AddToCart(ctx, user.ID, cat.TentLight.ID, 1))
	require.NoError(t, AddToCart(ctx, user.ID, cat.Pack40.ID, 1))
	var cart []models.CartItem
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&cart).Error)
	require.Len(t, cart, 2)

	// another checkout already took one of the lines
	require.NoError(t, db.Delete(&models.CartItem{}, "id = ?", cart[0].ID).Error)

	err := db.Transaction(func(tx *gorm.DB) error { return claimCart(tx, cart) })
	assert.ErrorIs(t, err, ErrCartChanged)
	assert.Len(t, cartOf(t, db, user.ID), 1, "the failed claim rolls back")

	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&cart).Error)
	require.NoError(t, db.Transaction(func(tx *gorm.DB) error { return claimCart(tx, cart) }))
	assert.Empty(t, cartOf(t, db, user.ID))
}

func TestCheckout_SecondCheckoutFindsEmptyCart(t *testing.T) {
	db := testutil.NewDB(t)
	cat := testutil.SeedCatalog(t, db)
	user := testutil.NewCustomer(t, db, "ana@example.com")
	ctx := context.Background()

	require.NoError(t, AddToCart(ctx, user.ID, cat.TentLight.ID, 2))
	before := stockOf(t, db, cat.TentLight.ID)

	_, err := Checkout(ctx, user.ID, shipTo)
	require.NoError(t, err)
	_, err = Checkout(ctx, user.ID, shipTo)
	assert.ErrorIs(t, err, ErrEmptyCart)

	var orders int64
	require.NoError(t, db.Model(&models.Order{}).Where("user_id = ?", user.ID).Count(&orders).Error)
	assert.Equal(t, int64(1), orders)
	assert.Equal(t, before-2, stockOf(t, db, cat.TentLight.ID))
}
