package orders

import (
	"context"
	"errors"
	"testing"

	"github.com/Rhoda-NM/OneStopShop-Project/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrdersRepo struct {
	orders     map[uint64]*domain.Order
	items      map[uint64]*domain.OrderItem
	nextOrder  uint64
	nextItem   uint64
	deletedIDs []uint64
}

func newFakeOrdersRepo() *fakeOrdersRepo {
	return &fakeOrdersRepo{
		orders: make(map[uint64]*domain.Order),
		items:  make(map[uint64]*domain.OrderItem),
	}
}

func (f *fakeOrdersRepo) CreateOrder(ctx context.Context, order *domain.Order) error {
	f.nextOrder++
	order.ID = f.nextOrder
	clone := *order
	f.orders[order.ID] = &clone
	return nil
}

func (f *fakeOrdersRepo) FindByID(ctx context.Context, id uint64) (domain.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return domain.Order{}, errors.New("order not found")
	}
	out := *order
	out.OrderItems = f.itemsFor(id)
	return out, nil
}

func (f *fakeOrdersRepo) FindByUserAndStatus(ctx context.Context, userID uint, status string) (domain.Order, error) {
	for _, order := range f.orders {
		if order.UserID == userID && order.Status == status {
			out := *order
			out.OrderItems = f.itemsFor(order.ID)
			return out, nil
		}
	}
	return domain.Order{}, errors.New("order not found")
}

func (f *fakeOrdersRepo) FindAllByUser(ctx context.Context, userID uint) ([]domain.Order, error) {
	var out []domain.Order
	for _, order := range f.orders {
		if order.UserID == userID {
			o := *order
			o.OrderItems = f.itemsFor(order.ID)
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrdersRepo) UpdateOrder(ctx context.Context, order *domain.Order) error {
	existing, ok := f.orders[order.ID]
	if !ok {
		return errors.New("order not found")
	}
	existing.TotalPrice = order.TotalPrice
	existing.Status = order.Status
	return nil
}

func (f *fakeOrdersRepo) DeleteOrder(ctx context.Context, id uint64) error {
	if _, ok := f.orders[id]; !ok {
		return errors.New("order not found or already deleted")
	}
	delete(f.orders, id)
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

func (f *fakeOrdersRepo) CreateOrderItem(ctx context.Context, item *domain.OrderItem) error {
	f.nextItem++
	item.ID = f.nextItem
	clone := *item
	f.items[item.ID] = &clone
	return nil
}

func (f *fakeOrdersRepo) FindOrderItem(ctx context.Context, orderID, productID uint64) (domain.OrderItem, error) {
	for _, item := range f.items {
		if item.OrderID == orderID && item.ProductID == productID {
			return *item, nil
		}
	}
	return domain.OrderItem{}, errors.New("order item not found")
}

func (f *fakeOrdersRepo) UpdateOrderItem(ctx context.Context, item *domain.OrderItem) error {
	existing, ok := f.items[item.ID]
	if !ok {
		return errors.New("order item not found")
	}
	existing.Quantity = item.Quantity
	existing.Price = item.Price
	return nil
}

func (f *fakeOrdersRepo) DeleteOrderItem(ctx context.Context, id uint64) error {
	if _, ok := f.items[id]; !ok {
		return errors.New("order item not found or already deleted")
	}
	delete(f.items, id)
	return nil
}

func (f *fakeOrdersRepo) itemsFor(orderID uint64) []domain.OrderItem {
	out := []domain.OrderItem{}
	for _, item := range f.items {
		if item.OrderID == orderID {
			out = append(out, *item)
		}
	}
	return out
}

type fakeProductRepo struct {
	products map[uint64]*domain.Product
}

func newFakeProductRepo(products ...domain.Product) *fakeProductRepo {
	f := &fakeProductRepo{products: make(map[uint64]*domain.Product)}
	for i := range products {
		p := products[i]
		f.products[p.ID] = &p
	}
	return f
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id uint64) (domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return domain.Product{}, errors.New("product not found")
	}
	return *p, nil
}

func (f *fakeProductRepo) UpdateStock(ctx context.Context, id uint64, stock int) error {
	p, ok := f.products[id]
	if !ok {
		return errors.New("product not found or already deleted")
	}
	p.Stock = stock
	return nil
}

func TestGetCart_EmptyWhenNone(t *testing.T) {
	svc := NewOrdersService(newFakeOrdersRepo(), newFakeProductRepo())

	cart, err := svc.GetCart(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCart, cart.Status)
	assert.Empty(t, cart.OrderItems)
	assert.Zero(t, cart.ID)
}

func TestAddToCart_CreatesCartOnFirstAdd(t *testing.T) {
	productRepo := newFakeProductRepo(domain.Product{ID: 10, Price: 25.0, Stock: 5})
	svc := NewOrdersService(newFakeOrdersRepo(), productRepo)

	cart, err := svc.AddToCart(context.Background(), 1, 10, 2)
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusCart, cart.Status)
	require.Len(t, cart.OrderItems, 1)
	assert.Equal(t, 2, cart.OrderItems[0].Quantity)
	assert.InDelta(t, 50.0, cart.TotalPrice, 1e-9)
}

func TestAddToCart_DuplicateBumpsQuantity(t *testing.T) {
	productRepo := newFakeProductRepo(domain.Product{ID: 10, Price: 25.0, Stock: 5})
	svc := NewOrdersService(newFakeOrdersRepo(), productRepo)

	_, err := svc.AddToCart(context.Background(), 1, 10, 1)
	require.NoError(t, err)

	cart, err := svc.AddToCart(context.Background(), 1, 10, 2)
	require.NoError(t, err)

	require.Len(t, cart.OrderItems, 1)
	assert.Equal(t, 3, cart.OrderItems[0].Quantity)
	assert.InDelta(t, 75.0, cart.TotalPrice, 1e-9)
}

func TestAddToCart_InsufficientStock(t *testing.T) {
	productRepo := newFakeProductRepo(domain.Product{ID: 10, Price: 25.0, Stock: 1})
	svc := NewOrdersService(newFakeOrdersRepo(), productRepo)

	_, err := svc.AddToCart(context.Background(), 1, 10, 3)
	require.Error(t, err)
	assert.Equal(t, "insufficient stock", err.Error())
}

func TestAddToCart_UnknownProduct(t *testing.T) {
	svc := NewOrdersService(newFakeOrdersRepo(), newFakeProductRepo())

	_, err := svc.AddToCart(context.Background(), 1, 404, 1)
	require.Error(t, err)
	assert.Equal(t, "product not found", err.Error())
}

func TestRemoveFromCart_LastItemDeletesCart(t *testing.T) {
	ordersRepo := newFakeOrdersRepo()
	productRepo := newFakeProductRepo(domain.Product{ID: 10, Price: 25.0, Stock: 5})
	svc := NewOrdersService(ordersRepo, productRepo)

	_, err := svc.AddToCart(context.Background(), 1, 10, 1)
	require.NoError(t, err)

	cart, err := svc.RemoveFromCart(context.Background(), 1, 10)
	require.NoError(t, err)

	assert.Empty(t, cart.OrderItems)
	assert.Len(t, ordersRepo.deletedIDs, 1)
}

func TestRemoveFromCart_AdjustsTotal(t *testing.T) {
	productRepo := newFakeProductRepo(
		domain.Product{ID: 10, Price: 25.0, Stock: 5},
		domain.Product{ID: 11, Price: 40.0, Stock: 5},
	)
	svc := NewOrdersService(newFakeOrdersRepo(), productRepo)

	_, err := svc.AddToCart(context.Background(), 1, 10, 2)
	require.NoError(t, err)
	_, err = svc.AddToCart(context.Background(), 1, 11, 1)
	require.NoError(t, err)

	cart, err := svc.RemoveFromCart(context.Background(), 1, 10)
	require.NoError(t, err)

	require.Len(t, cart.OrderItems, 1)
	assert.Equal(t, uint64(11), cart.OrderItems[0].ProductID)
	assert.InDelta(t, 40.0, cart.TotalPrice, 1e-9)
}

func TestRemoveFromCart_MissingProduct(t *testing.T) {
	productRepo := newFakeProductRepo(domain.Product{ID: 10, Price: 25.0, Stock: 5})
	svc := NewOrdersService(newFakeOrdersRepo(), productRepo)

	_, err := svc.AddToCart(context.Background(), 1, 10, 1)
	require.NoError(t, err)

	_, err = svc.RemoveFromCart(context.Background(), 1, 999)
	require.Error(t, err)
	assert.Equal(t, "product not in cart", err.Error())
}

func TestCheckout_MovesCartToPending(t *testing.T) {
	productRepo := newFakeProductRepo(domain.Product{ID: 10, Price: 25.0, Stock: 5})
	svc := NewOrdersService(newFakeOrdersRepo(), productRepo)

	_, err := svc.AddToCart(context.Background(), 1, 10, 1)
	require.NoError(t, err)

	order, err := svc.Checkout(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, order.Status)

	// The cart is gone now.
	cart, err := svc.GetCart(context.Background(), 1)
	require.NoError(t, err)
	assert.Zero(t, cart.ID)
}

func TestCheckout_NoCart(t *testing.T) {
	svc := NewOrdersService(newFakeOrdersRepo(), newFakeProductRepo())

	_, err := svc.Checkout(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, "cart not found", err.Error())
}

func TestCompleteOrder_DecrementsStock(t *testing.T) {
	productRepo := newFakeProductRepo(domain.Product{ID: 10, Price: 25.0, Stock: 5})
	svc := NewOrdersService(newFakeOrdersRepo(), productRepo)

	_, err := svc.AddToCart(context.Background(), 1, 10, 2)
	require.NoError(t, err)
	pending, err := svc.Checkout(context.Background(), 1)
	require.NoError(t, err)

	completed, err := svc.CompleteOrder(context.Background(), 1, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCompleted, completed.Status)

	product, err := productRepo.FindByID(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 3, product.Stock)
}

func TestCompleteOrder_OwnerOnly(t *testing.T) {
	productRepo := newFakeProductRepo(domain.Product{ID: 10, Price: 25.0, Stock: 5})
	svc := NewOrdersService(newFakeOrdersRepo(), productRepo)

	_, err := svc.AddToCart(context.Background(), 1, 10, 1)
	require.NoError(t, err)
	pending, err := svc.Checkout(context.Background(), 1)
	require.NoError(t, err)

	_, err = svc.CompleteOrder(context.Background(), 2, pending.ID)
	require.Error(t, err)
	assert.Equal(t, "unauthorized", err.Error())
}

func TestCompleteOrder_OnlyPending(t *testing.T) {
	productRepo := newFakeProductRepo(domain.Product{ID: 10, Price: 25.0, Stock: 5})
	svc := NewOrdersService(newFakeOrdersRepo(), productRepo)

	_, err := svc.AddToCart(context.Background(), 1, 10, 1)
	require.NoError(t, err)
	pending, err := svc.Checkout(context.Background(), 1)
	require.NoError(t, err)

	_, err = svc.CompleteOrder(context.Background(), 1, pending.ID)
	require.NoError(t, err)

	_, err = svc.CompleteOrder(context.Background(), 1, pending.ID)
	require.Error(t, err)
	assert.Equal(t, "order is not pending", err.Error())
}
