package ecommerce_routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/services"
	"github.com/PalomoDev/alexika-es-sub001/testutil"
	"github.com/PalomoDev/alexika-es-sub001/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type client struct {
	t     *testing.T
	r     *gin.Engine
	token string
}

func (c client) do(method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	w := httptest.NewRecorder()
	c.r.ServeHTTP(w, req)

	var env envelope
	if w.Header().Get("Content-Type") != "application/pdf" {
		require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func signedIn(t *testing.T, r *gin.Engine, email string) (client, models.User) {
	t.Helper()
	user := testutil.NewCustomer(t, config.DB, email)
	token, err := utils.GenerateJWT(user.ID, user.Email, user.Name)
	require.NoError(t, err)
	return client{t: t, r: r, token: token}, user
}

func TestUserRoutes_RequireAuth(t *testing.T) {
	r, _ := newStorefront(t)
	anon := client{t: t, r: r}

	w, env := anon.do(http.MethodGet, "/api/v1/user/cart", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.True(t, env.Error)

	bad := client{t: t, r: r, token: "not-a-jwt"}
	w, _ = bad.do(http.MethodGet, "/api/v1/user/orders", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCartCheckoutAndPay(t *testing.T) {
	r, cat := newStorefront(t)
	c, _ := signedIn(t, r, "ana@example.com")

	w, _ := c.do(http.MethodPost, "/api/v1/user/orders", shipping())
	assert.Equal(t, http.StatusBadRequest, w.Code, "empty cart")

	w, env := c.do(http.MethodPost, "/api/v1/user/cart/items", models.AddCartItemRequest{ProductID: cat.TentLight.ID, Quantity: 2})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var cart services.CartView
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	assert.Equal(t, 178.0, cart.Totals.Total)

	w, _ = c.do(http.MethodPost, "/api/v1/user/cart/items", models.AddCartItemRequest{ProductID: cat.TentLight.ID, Quantity: 10})
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = c.do(http.MethodPost, "/api/v1/user/cart/items", models.AddCartItemRequest{ProductID: cat.PackHidden.ID, Quantity: 1})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env = c.do(http.MethodPatch, "/api/v1/user/cart/items/"+cat.TentLight.ID.String(), models.UpdateCartItemRequest{Quantity: 1})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	assert.Equal(t, 89.0, cart.Totals.Subtotal)
	assert.Equal(t, "89,00 €", cart.TotalsText.Total)

	w, env = c.do(http.MethodPost, "/api/v1/user/orders", shipping())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var order models.OrderDetail
	require.NoError(t, json.Unmarshal(env.Data, &order))
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.InDelta(t, (15 * time.Minute).Seconds(), order.SecondsRemaining, 5)
	assert.Equal(t, "Granada", order.Address.City)

	orderPath := "/api/v1/user/orders/" + order.ID.String()

	w, _ = c.do(http.MethodGet, orderPath+"/invoice", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = c.do(http.MethodPost, orderPath+"/pay", card("4000000000000000"))
	assert.Equal(t, http.StatusPaymentRequired, w.Code)

	w, env = c.do(http.MethodPost, orderPath+"/pay", card("4242424242424242"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, &order))
	assert.Equal(t, models.OrderStatusPaid, order.Status)
	assert.Zero(t, order.SecondsRemaining)

	w, _ = c.do(http.MethodPost, orderPath+"/pay", card("4242424242424242"))
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = c.do(http.MethodGet, orderPath+"/invoice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))

	w, env = c.do(http.MethodGet, "/api/v1/user/orders?status=paid", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var history []models.OrderHistoryResponse
	require.NoError(t, json.Unmarshal(env.Data, &history))
	require.Len(t, history, 1)
	assert.Equal(t, 1, history[0].ItemCount)
	assert.Equal(t, "89,00 €", history[0].TotalText)

	other, _ := signedIn(t, r, "otro@example.com")
	w, _ = other.do(http.MethodGet, orderPath, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckoutExpireReturnsCart(t *testing.T) {
	r, cat := newStorefront(t)
	c, _ := signedIn(t, r, "ana@example.com")

	w, _ := c.do(http.MethodPost, "/api/v1/user/cart/items", models.AddCartItemRequest{ProductID: cat.Pack40.ID, Quantity: 3})
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := c.do(http.MethodPost, "/api/v1/user/orders", shipping())
	require.Equal(t, http.StatusCreated, w.Code)
	var order models.OrderDetail
	require.NoError(t, json.Unmarshal(env.Data, &order))

	w, env = c.do(http.MethodGet, "/api/v1/user/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cart services.CartView
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Totals.Total)

	orderPath := "/api/v1/user/orders/" + order.ID.String()
	var expired struct {
		Order   models.OrderDetail `json:"order"`
		Expired bool               `json:"expired"`
	}

	w, env = c.do(http.MethodPost, orderPath+"/expire", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, &expired))
	assert.True(t, expired.Expired)
	assert.Equal(t, models.OrderStatusExpired, expired.Order.Status)

	w, env = c.do(http.MethodPost, orderPath+"/expire", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &expired))
	assert.False(t, expired.Expired)

	w, env = c.do(http.MethodGet, "/api/v1/user/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, 10, cart.Items[0].Stock)

	w, _ = c.do(http.MethodPost, orderPath+"/pay", card("4242424242424242"))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func shipping() models.CreateOrderRequest {
	return models.CreateOrderRequest{ShippingAddress: models.ShippingAddress{
		FullName: "Ana Ruiz", Street: "Calle Mayor 12", City: "Granada", PostalCode: "18001",
	}}
}

func card(number string) models.PayOrderRequest {
	return models.PayOrderRequest{CardNumber: number, CardHolder: "ANA", Expiry: "12/39", CVC: "123"}
}

func TestPayOrder_CardChecks(t *testing.T) {
	r, cat := newStorefront(t)
	c, _ := signedIn(t, r, "ana@example.com")

	w, _ := c.do(http.MethodPost, "/api/v1/user/cart/items", models.AddCartItemRequest{ProductID: cat.Pack40.ID, Quantity: 1})
	require.Equal(t, http.StatusCreated, w.Code)
	w, env := c.do(http.MethodPost, "/api/v1/user/orders", shipping())
	require.Equal(t, http.StatusCreated, w.Code)
	var order models.OrderDetail
	require.NoError(t, json.Unmarshal(env.Data, &order))
	payPath := "/api/v1/user/orders/" + order.ID.String() + "/pay"

	w, _ = c.do(http.MethodPost, payPath, models.PayOrderRequest{CardNumber: "4242424242424242", CardHolder: "ANA"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "expiry and cvc are required")

	lapsed := card("4242424242424242")
	lapsed.Expiry = "01/20"
	w, _ = c.do(http.MethodPost, payPath, lapsed)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = c.do(http.MethodPost, payPath, card("4242 4242 4242 4242 424"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, &order))
	assert.Equal(t, models.OrderStatusPaid, order.Status)
}

func TestPayOrder_AfterDeadline(t *testing.T) {
	r, cat := newStorefront(t)
	c, _ := signedIn(t, r, "ana@example.com")

	w, _ := c.do(http.MethodPost, "/api/v1/user/cart/items", models.AddCartItemRequest{ProductID: cat.TentLight.ID, Quantity: 1})
	require.Equal(t, http.StatusCreated, w.Code)
	w, env := c.do(http.MethodPost, "/api/v1/user/orders", shipping())
	require.Equal(t, http.StatusCreated, w.Code)
	var order models.OrderDetail
	require.NoError(t, json.Unmarshal(env.Data, &order))

	require.NoError(t, config.DB.Model(&models.Order{}).Where("id = ?", order.ID).
		Update("expires_at", time.Now().UTC().Add(-time.Minute)).Error)

	orderPath := "/api/v1/user/orders/" + order.ID.String()
	w, _ = c.do(http.MethodPost, orderPath+"/pay", card("4242424242424242"))
	assert.Equal(t, http.StatusGone, w.Code)

	w, env = c.do(http.MethodGet, orderPath, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &order))
	assert.Equal(t, models.OrderStatusExpired, order.Status)

	w, _ = c.do(http.MethodPost, orderPath+"/pay", card("4242424242424242"))
	assert.Equal(t, http.StatusConflict, w.Code)

	w, env = c.do(http.MethodGet, "/api/v1/user/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cart services.CartView
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, cat.TentLight.ID, cart.Items[0].ProductID)
}
