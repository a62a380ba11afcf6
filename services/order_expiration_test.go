package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitDone(t *testing.T, timer *ExpirationTimer) {
	t.Helper()
	select {
	case <-timer.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("timer did not finish")
	}
}

func TestExpirationTimer_FiresOnce(t *testing.T) {
	var calls atomic.Int32
	var doneErr error
	timer := NewExpirationTimer(time.Now(), 20*time.Millisecond,
		func(ctx context.Context) error {
			calls.Add(1)
			return nil
		},
		func(err error) { doneErr = err },
	)
	assert.Equal(t, TimerRunning, timer.State())
	assert.True(t, timer.Remaining() > 0)

	waitDone(t, timer)
	assert.Equal(t, TimerExpired, timer.State())
	assert.Equal(t, int32(1), calls.Load())
	assert.NoError(t, doneErr)
	assert.Zero(t, timer.Remaining())
	assert.False(t, timer.Stop())
}

func TestExpirationTimer_PastDeadlineFiresImmediately(t *testing.T) {
	fired := make(chan struct{}, 1)
	timer := NewExpirationTimer(time.Now().Add(-time.Hour), 15*time.Minute,
		func(ctx context.Context) error {
			fired <- struct{}{}
			return nil
		}, nil)

	waitDone(t, timer)
	assert.Len(t, fired, 1)
	assert.Equal(t, "expired", timer.State().String())
}

func TestExpirationTimer_ActionErrorStillExpires(t *testing.T) {
	boom := errors.New("db down")
	var got error
	timer := NewExpirationTimer(time.Now(), 0,
		func(ctx context.Context) error { return boom },
		func(err error) { got = err },
	)

	waitDone(t, timer)
	assert.Equal(t, TimerExpired, timer.State())
	assert.ErrorIs(t, got, boom)
}

func TestExpirationTimer_Stop(t *testing.T) {
	var calls atomic.Int32
	timer := NewExpirationTimer(time.Now(), time.Hour,
		func(ctx context.Context) error {
			calls.Add(1)
			return nil
		}, nil)

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())
	assert.Equal(t, TimerStopped, timer.State())
	waitDone(t, timer)
	assert.Zero(t, calls.Load())
	assert.Zero(t, timer.Remaining())
}

func TestOrderExpirer_ScheduleFiresAndForgets(t *testing.T) {
	expired := make(chan uuid.UUID, 1)
	e := NewOrderExpirer(time.Minute, func(ctx context.Context, id uuid.UUID) (bool, error) {
		expired <- id
		return true, nil
	})

	order := models.Order{ID: uuid.New(), ExpiresAt: time.Now().Add(30 * time.Millisecond)}
	e.Schedule(order)
	timer, ok := e.Timer(order.ID)
	require.True(t, ok)
	assert.WithinDuration(t, order.ExpiresAt, timer.Deadline(), time.Millisecond)

	select {
	case id := <-expired:
		assert.Equal(t, order.ID, id)
	case <-time.After(2 * time.Second):
		t.Fatal("order was not expired")
	}
	assert.Eventually(t, func() bool { return e.Pending() == 0 }, time.Second, 10*time.Millisecond)
}

func TestOrderExpirer_CancelAndStop(t *testing.T) {
	var calls atomic.Int32
	e := NewOrderExpirer(time.Minute, func(ctx context.Context, id uuid.UUID) (bool, error) {
		calls.Add(1)
		return true, nil
	})

	a := models.Order{ID: uuid.New(), ExpiresAt: time.Now().Add(time.Hour)}
	b := models.Order{ID: uuid.New(), ExpiresAt: time.Now().Add(time.Hour)}
	e.Schedule(a)
	e.Schedule(b)
	e.Schedule(b)
	assert.Equal(t, 2, e.Pending())

	assert.True(t, e.Cancel(a.ID))
	assert.False(t, e.Cancel(a.ID))
	assert.Equal(t, 1, e.Pending())

	e.Stop()
	assert.Zero(t, e.Pending())
	assert.Zero(t, calls.Load())
}

func TestOrderExpirer_SweepAndRestore(t *testing.T) {
	db := testutil.NewDB(t)
	cat := testutil.SeedCatalog(t, db)
	user := testutil.NewCustomer(t, db, "ana@example.com")
	ctx := context.Background()

	overdue := checkoutTwoLines(t, db, cat, user)
	require.NoError(t, db.Model(&models.Order{}).Where("id = ?", overdue.ID).
		Update("expires_at", time.Now().UTC().Add(-time.Hour)).Error)

	require.NoError(t, AddToCart(ctx, user.ID, cat.TentFamily.ID, 1))
	live, err := Checkout(ctx, user.ID, shipTo)
	require.NoError(t, err)

	e := NewOrderExpirer(15*time.Minute, nil)
	defer e.Stop()

	n, err := e.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = e.Sweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	var stored models.Order
	require.NoError(t, db.First(&stored, "id = ?", live.ID).Error)
	assert.Equal(t, models.OrderStatusPending, stored.Status)

	restored, err := e.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, restored)
	_, ok := e.Timer(live.ID)
	assert.True(t, ok)
}
