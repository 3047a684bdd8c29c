package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rhoda-NM/OneStopShop-Project/domain"
	"github.com/Rhoda-NM/OneStopShop-Project/pkg/logger"
)

// OrdersRepository contract interface
type OrdersRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id uint64) (domain.Order, error)
	FindByUserAndStatus(ctx context.Context, userID uint, status string) (domain.Order, error)
	FindAllByUser(ctx context.Context, userID uint) ([]domain.Order, error)
	UpdateOrder(ctx context.Context, order *domain.Order) error
	DeleteOrder(ctx context.Context, id uint64) error
	CreateOrderItem(ctx context.Context, item *domain.OrderItem) error
	FindOrderItem(ctx context.Context, orderID, productID uint64) (domain.OrderItem, error)
	UpdateOrderItem(ctx context.Context, item *domain.OrderItem) error
	DeleteOrderItem(ctx context.Context, id uint64) error
}

// ProductRepository contract interface
type ProductRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Product, error)
	UpdateStock(ctx context.Context, id uint64, stock int) error
}

type OrdersService struct {
	orderRepo   OrdersRepository
	productRepo ProductRepository
}

func NewOrdersService(orderRepo OrdersRepository, productRepo ProductRepository) *OrdersService {
	return &OrdersService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// GetCart returns the user's open cart. A user without one gets an empty
// cart shape rather than an error.
func (s *OrdersService) GetCart(ctx context.Context, userID uint) (domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return domain.Order{}, fmt.Errorf("context error: %w", err)
	}

	cart, err := s.orderRepo.FindByUserAndStatus(ctx, userID, domain.OrderStatusCart)
	if err != nil {
		if err.Error() == "order not found" {
			return domain.Order{
				UserID:     userID,
				Status:     domain.OrderStatusCart,
				OrderItems: []domain.OrderItem{},
			}, nil
		}
		logger.Error("Failed to load cart", err)
		return domain.Order{}, err
	}

	return cart, nil
}

// AddToCart puts a product into the user's cart, creating the cart on first
// use. Adding a product already in the cart bumps its quantity instead of
// duplicating the line.
func (s *OrdersService) AddToCart(ctx context.Context, userID uint, productID uint64, quantity int) (domain.Order, error) {
	if quantity <= 0 {
		quantity = 1
	}

	if err := ctx.Err(); err != nil {
		return domain.Order{}, fmt.Errorf("context error: %w", err)
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		logger.Error("Product not found for cart add", err)
		return domain.Order{}, errors.New("product not found")
	}

	if product.Stock < quantity {
		logger.Error("Insufficient stock for cart add", productID)
		return domain.Order{}, errors.New("insufficient stock")
	}

	cart, err := s.orderRepo.FindByUserAndStatus(ctx, userID, domain.OrderStatusCart)
	if err != nil {
		if err.Error() != "order not found" {
			logger.Error("Failed to load cart", err)
			return domain.Order{}, err
		}
		cart = domain.Order{
			UserID: userID,
			Status: domain.OrderStatusCart,
		}
		if err := s.orderRepo.CreateOrder(ctx, &cart); err != nil {
			logger.Error("Failed to create cart", err)
			return domain.Order{}, err
		}
	}

	item, err := s.orderRepo.FindOrderItem(ctx, cart.ID, productID)
	if err != nil {
		if err.Error() != "order item not found" {
			logger.Error("Failed to load cart item", err)
			return domain.Order{}, err
		}
		item = domain.OrderItem{
			OrderID:   cart.ID,
			ProductID: productID,
			Quantity:  quantity,
			Price:     product.Price,
		}
		if err := s.orderRepo.CreateOrderItem(ctx, &item); err != nil {
			logger.Error("Failed to create cart item", err)
			return domain.Order{}, err
		}
	} else {
		item.Quantity += quantity
		item.Price = product.Price
		if err := s.orderRepo.UpdateOrderItem(ctx, &item); err != nil {
			logger.Error("Failed to update cart item", err)
			return domain.Order{}, err
		}
	}

	cart.TotalPrice += product.Price * float64(quantity)
	if err := s.orderRepo.UpdateOrder(ctx, &cart); err != nil {
		logger.Error("Failed to update cart total", err)
		return domain.Order{}, err
	}

	return s.orderRepo.FindByID(ctx, cart.ID)
}

// RemoveFromCart drops a product line from the cart and adjusts the total.
// Removing the last line deletes the cart itself.
func (s *OrdersService) RemoveFromCart(ctx context.Context, userID uint, productID uint64) (domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return domain.Order{}, fmt.Errorf("context error: %w", err)
	}

	cart, err := s.orderRepo.FindByUserAndStatus(ctx, userID, domain.OrderStatusCart)
	if err != nil {
		logger.Error("Cart not found for removal", err)
		return domain.Order{}, errors.New("cart not found")
	}

	item, err := s.orderRepo.FindOrderItem(ctx, cart.ID, productID)
	if err != nil {
		logger.Error("Cart item not found for removal", err)
		return domain.Order{}, errors.New("product not in cart")
	}

	if err := s.orderRepo.DeleteOrderItem(ctx, item.ID); err != nil {
		logger.Error("Failed to delete cart item", err)
		return domain.Order{}, err
	}

	if len(cart.OrderItems) <= 1 {
		if err := s.orderRepo.DeleteOrder(ctx, cart.ID); err != nil {
			logger.Error("Failed to delete empty cart", err)
			return domain.Order{}, err
		}
		return domain.Order{
			UserID:     userID,
			Status:     domain.OrderStatusCart,
			OrderItems: []domain.OrderItem{},
		}, nil
	}

	cart.TotalPrice -= item.Price * float64(item.Quantity)
	if cart.TotalPrice < 0 {
		cart.TotalPrice = 0
	}
	if err := s.orderRepo.UpdateOrder(ctx, &cart); err != nil {
		logger.Error("Failed to update cart total", err)
		return domain.Order{}, err
	}

	return s.orderRepo.FindByID(ctx, cart.ID)
}

// Checkout turns the open cart into a pending order.
func (s *OrdersService) Checkout(ctx context.Context, userID uint) (domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return domain.Order{}, fmt.Errorf("context error: %w", err)
	}

	cart, err := s.orderRepo.FindByUserAndStatus(ctx, userID, domain.OrderStatusCart)
	if err != nil {
		logger.Error("No cart to check out", err)
		return domain.Order{}, errors.New("cart not found")
	}

	if len(cart.OrderItems) == 0 {
		return domain.Order{}, errors.New("cart is empty")
	}

	cart.Status = domain.OrderStatusPending
	if err := s.orderRepo.UpdateOrder(ctx, &cart); err != nil {
		logger.Error("Failed to check out cart", err)
		return domain.Order{}, err
	}

	logger.Info("cart checked out", cart.ID)

	return s.orderRepo.FindByID(ctx, cart.ID)
}

// CompleteOrder marks a pending order completed and decrements stock for
// every line. Only the order's owner may complete it.
func (s *OrdersService) CompleteOrder(ctx context.Context, userID uint, orderID uint64) (domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return domain.Order{}, fmt.Errorf("context error: %w", err)
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		logger.Error("Order not found for completion", err)
		return domain.Order{}, errors.New("order not found")
	}

	if order.UserID != userID {
		logger.Error("Order completion by non-owner", userID)
		return domain.Order{}, errors.New("unauthorized")
	}

	if order.Status != domain.OrderStatusPending {
		return domain.Order{}, errors.New("order is not pending")
	}

	for _, item := range order.OrderItems {
		product, err := s.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			logger.Warn("Product missing during completion", item.ProductID)
			continue
		}
		stock := product.Stock - item.Quantity
		if stock < 0 {
			stock = 0
		}
		if err := s.productRepo.UpdateStock(ctx, item.ProductID, stock); err != nil {
			logger.Error("Failed to decrement stock", err)
			return domain.Order{}, err
		}
	}

	order.Status = domain.OrderStatusCompleted
	if err := s.orderRepo.UpdateOrder(ctx, &order); err != nil {
		logger.Error("Failed to complete order", err)
		return domain.Order{}, err
	}

	logger.Info("order completed", order.ID)

	return s.orderRepo.FindByID(ctx, orderID)
}

func (s *OrdersService) GetUserOrders(ctx context.Context, userID uint) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	orders, err := s.orderRepo.FindAllByUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to load user orders", err)
		return nil, err
	}

	return orders, nil
}

func (s *OrdersService) GetOrder(ctx context.Context, userID uint, orderID uint64) (domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return domain.Order{}, fmt.Errorf("context error: %w", err)
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}

	if order.UserID != userID {
		return domain.Order{}, errors.New("unauthorized")
	}

	return order, nil
}
