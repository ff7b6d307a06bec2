package services

import (
	"strings"
	"testing"
	"time"

	"github.com/dog-key/pre-order/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderService_CheckoutEmptyCart(t *testing.T) {
	_, orderSvc := newServices(t)

	order, err := orderSvc.Checkout(testUser, 30)
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Nil(t, order)

	// ไม่มี side effect อะไรทั้งนั้น
	orders, err := orderSvc.ListForUser(testUser)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_Checkout(t *testing.T) {
	cartSvc, orderSvc := newServices(t)
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	setClock(orderSvc, at)

	require.NoError(t, cartSvc.Add(testUser, &AddToCartIn{RestaurantID: "r1", ItemID: "m1"}))
	require.NoError(t, cartSvc.Add(testUser, &AddToCartIn{RestaurantID: "r1", ItemID: "m1"}))

	order, err := orderSvc.Checkout(testUser, 30)
	require.NoError(t, err)

	assert.Equal(t, entity.StatusPending, order.Status)
	assert.Equal(t, int64(500), order.Total)
	assert.Equal(t, at.Add(30*time.Minute), order.PickupTime)
	assert.Equal(t, "r1", order.RestaurantID)
	assert.Equal(t, "Spice of Hyderabad", order.RestaurantName)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "m1", order.Items[0].ItemID)
	assert.Equal(t, 2, order.Items[0].Qty)

	assert.True(t, strings.HasPrefix(order.ID, "ORD-"))
	assert.True(t, strings.HasPrefix(order.PickupCode, "QP-"))
	// โค้ดรับอาหารต้องเดาไม่ได้จาก order id
	assert.NotContains(t, order.ID, strings.TrimPrefix(order.PickupCode, "QP-"))

	// ตะกร้าถูกล้างหลังสั่งสำเร็จ
	cart, subtotal, err := cartSvc.Get(testUser)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, int64(0), subtotal)
}

func TestOrderService_CheckoutSnapshotIsFrozen(t *testing.T) {
	cartSvc, orderSvc := newServices(t)
	setClock(orderSvc, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))

	require.NoError(t, cartSvc.Add(testUser, &AddToCartIn{RestaurantID: "r1", ItemID: "m1"}))
	order, err := orderSvc.Checkout(testUser, 15)
	require.NoError(t, err)

	// ยุ่งกับตะกร้าต่อหลังสั่งไปแล้ว
	require.NoError(t, cartSvc.Add(testUser, &AddToCartIn{RestaurantID: "r1", ItemID: "m1"}))
	require.NoError(t, cartSvc.Add(testUser, &AddToCartIn{RestaurantID: "r1", ItemID: "m2"}))

	got, err := orderSvc.GetForUser(testUser, order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(250), got.Total)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 1, got.Items[0].Qty)
}

func TestOrderService_LedgerNewestFirst(t *testing.T) {
	cartSvc, orderSvc := newServices(t)
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	var ids []string
	for i, item := range []string{"m1", "m2", "m1"} {
		setClock(orderSvc, base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, cartSvc.Add(testUser, &AddToCartIn{RestaurantID: "r1", ItemID: item}))
		o, err := orderSvc.Checkout(testUser, 30)
		require.NoError(t, err)
		ids = append(ids, o.ID)
	}

	orders, err := orderSvc.ListForUser(testUser)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	// ใหม่สุดก่อน และครบทุกใบไม่ซ้ำ
	assert.Equal(t, ids[2], orders[0].ID)
	assert.Equal(t, ids[1], orders[1].ID)
	assert.Equal(t, ids[0], orders[2].ID)
}

func TestOrderService_GetForUserScopes(t *testing.T) {
	cartSvc, orderSvc := newServices(t)
	setClock(orderSvc, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))

	require.NoError(t, cartSvc.Add(testUser, &AddToCartIn{RestaurantID: "r1", ItemID: "m1"}))
	order, err := orderSvc.Checkout(testUser, 30)
	require.NoError(t, err)

	_, err = orderSvc.GetForUser("someone-else", order.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	_, err = orderSvc.GetForUser(testUser, "ORD-missing")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderService_DashboardAndRevenue(t *testing.T) {
	cartSvc, orderSvc := newServices(t)
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	// ใบแรก: เดินจนจบ Completed (500)
	setClock(orderSvc, base)
	require.NoError(t, cartSvc.Add(testUser, &AddToCartIn{RestaurantID: "r1", ItemID: "m1"}))
	require.NoError(t, cartSvc.Add(testUser, &AddToCartIn{RestaurantID: "r1", ItemID: "m1"}))
	first, err := orderSvc.Checkout(testUser, 30)
	require.NoError(t, err)

	// ใบสอง: ค้างไว้ที่ Pending (220)
	setClock(orderSvc, base.Add(time.Minute))
	require.NoError(t, cartSvc.Add(testUser, &AddToCartIn{RestaurantID: "r1", ItemID: "m2"}))
	second, err := orderSvc.Checkout(testUser, 30)
	require.NoError(t, err)

	for _, action := range []OrderAction{ActionAccept, ActionMarkReady, ActionCompletePickup} {
		_, err := orderSvc.Advance(entity.RoleMerchant, first.ID, action, "")
		require.NoError(t, err)
	}

	revenue, err := orderSvc.CompletedRevenue()
	require.NoError(t, err)
	assert.Equal(t, int64(500), revenue)

	active, err := orderSvc.ActiveForMerchant()
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)

	d, err := orderSvc.Dashboard()
	require.NoError(t, err)
	assert.Equal(t, int64(1), d.ActiveOrders)
	assert.Equal(t, int64(500), d.CompletedRevenue)
}
