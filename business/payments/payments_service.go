package payments

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Rhoda-NM/OneStopShop-Project/domain"
	"github.com/Rhoda-NM/OneStopShop-Project/internal/repository/mpesa"
	"github.com/Rhoda-NM/OneStopShop-Project/pkg/logger"
)

// OrdersRepository contract interface
type OrdersRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Order, error)
}

type PaymentsService struct {
	mpesaRepo *mpesa.MpesaRepository
	orderRepo OrdersRepository
}

func NewPaymentsService(mpesaRepo *mpesa.MpesaRepository, orderRepo OrdersRepository) *PaymentsService {
	return &PaymentsService{
		mpesaRepo: mpesaRepo,
		orderRepo: orderRepo,
	}
}

// InitiateSTKPush sends an M-PESA payment prompt to the customer's phone
// for a pending order. The amount is taken from the order, never from the
// request.
func (s *PaymentsService) InitiateSTKPush(ctx context.Context, userID uint, orderID uint64, phone string) (domain.STKPushResponse, error) {
	if err := ctx.Err(); err != nil {
		return domain.STKPushResponse{}, fmt.Errorf("context error: %w", err)
	}

	phone = normalizePhone(phone)
	if phone == "" {
		return domain.STKPushResponse{}, errors.New("invalid phone number")
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		logger.Error("Order not found for payment", err)
		return domain.STKPushResponse{}, errors.New("order not found")
	}

	if order.UserID != userID {
		logger.Error("Payment attempt by non-owner", userID)
		return domain.STKPushResponse{}, errors.New("unauthorized")
	}

	if order.Status != domain.OrderStatusPending {
		return domain.STKPushResponse{}, errors.New("order is not pending")
	}

	// Daraja wants a whole-shilling amount.
	amount := strconv.Itoa(int(order.TotalPrice + 0.5))
	accountReference := fmt.Sprintf("ORDER-%d", order.ID)

	resp, err := s.mpesaRepo.STKPush(phone, amount, accountReference)
	if err != nil {
		logger.Error("Failed to initiate STK push", err)
		return domain.STKPushResponse{}, err
	}

	logger.Info("STK push initiated", resp.CheckoutRequestID)

	return resp, nil
}

// HandleCallback processes the asynchronous Daraja result. A non-zero
// result code means the customer cancelled or the push failed.
func (s *PaymentsService) HandleCallback(ctx context.Context, envelope domain.MpesaCallbackEnvelope) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	callback := envelope.Body.STKCallback
	if callback.ResultCode != 0 {
		logger.Warn("STK push failed", callback.ResultDesc)
		return nil
	}

	logger.Info("payment confirmed", callback.CheckoutRequestID)

	return nil
}

// normalizePhone coerces local formats (07XXXXXXXX, +254...) into the
// 2547XXXXXXXX form Daraja expects. Returns "" when the number is
// unusable.
func normalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	phone = strings.TrimPrefix(phone, "+")

	if strings.HasPrefix(phone, "0") {
		phone = "254" + phone[1:]
	}

	if len(phone) != 12 || !strings.HasPrefix(phone, "254") {
		return ""
	}

	for _, r := range phone {
		if r < '0' || r > '9' {
			return ""
		}
	}

	return phone
}
