package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KianJanloo/burger-cafe-back/internal/domain"
	"github.com/KianJanloo/burger-cafe-back/internal/events"
	"github.com/KianJanloo/burger-cafe-back/internal/metrics"
	"github.com/KianJanloo/burger-cafe-back/internal/repository"
	"go.uber.org/zap"
)

// createAttempts bounds retries after an order number collision.
const createAttempts = 3

type OrderRepository interface {
	Repository[domain.Order]
	Find(ctx context.Context, f repository.OrderFilter) ([]*domain.Order, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error)
}

// EventPublisher receives order lifecycle events.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event events.OrderEvent) error
}

type OrderService struct {
	*Resource[domain.Order, domain.CreateOrder, domain.UpdateOrder]
	repo      OrderRepository
	numbers   *OrderNumbers
	publisher EventPublisher
	qr        QRGenerator
	logger    *zap.Logger
}

func NewOrderService(repo OrderRepository, numbers *OrderNumbers, publisher EventPublisher, qr QRGenerator, logger *zap.Logger) *OrderService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &OrderService{
		Resource: NewResource[domain.Order, domain.CreateOrder, domain.UpdateOrder](repo,
			BeforeCreate[domain.Order](func(_ context.Context, o *domain.Order) error {
				o.OrderNumber = numbers.Next()
				return nil
			}),
		),
		repo:      repo,
		numbers:   numbers,
		publisher: publisher,
		qr:        qr,
		logger:    logger,
	}
}

// Create places a pending order under a fresh order number.
func (s *OrderService) Create(ctx context.Context, cmd domain.CreateOrder) (*domain.Order, error) {
	var (
		order *domain.Order
		err   error
	)
	for attempt := 1; attempt <= createAttempts; attempt++ {
		order, err = s.Resource.Create(ctx, cmd)
		if !errors.Is(err, repository.ErrDuplicate) {
			break
		}
		s.logger.Warn("Order number collision, retrying", zap.Int("attempt", attempt))
	}
	if err != nil {
		return nil, err
	}

	metrics.OrdersPlaced.WithLabelValues(string(order.OrderType)).Inc()
	s.publish(ctx, events.OrderCreated, order, "")
	return order, nil
}

// Update merges patch and announces a status change when there is one.
func (s *OrderService) Update(ctx context.Context, id int64, patch domain.UpdateOrder) (*domain.Order, error) {
	var previous domain.OrderStatus
	if patch.Status != nil {
		current, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		previous = current.Status
	}

	order, err := s.Resource.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil && order.Status != previous {
		s.publish(ctx, events.OrderStatusChanged, order, previous)
	}
	return order, nil
}

func (s *OrderService) SetStatus(ctx context.Context, id int64, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s.Update(ctx, id, domain.UpdateOrder{Status: &status})
}

// Find lists orders, newest first, optionally by status and order type.
func (s *OrderService) Find(ctx context.Context, f repository.OrderFilter) ([]*domain.Order, error) {
	return s.repo.Find(ctx, f)
}

func (s *OrderService) FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	return s.repo.FindByOrderNumber(ctx, orderNumber)
}

// QRCode renders the receipt QR code of the order as a PNG.
func (s *OrderService) QRCode(ctx context.Context, id int64) ([]byte, error) {
	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	png, err := s.qr.Generate(order.OrderNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to generate qr code: %w", err)
	}
	return png, nil
}

// publish never fails the request; delivery problems are logged.
func (s *OrderService) publish(ctx context.Context, eventType string, order *domain.Order, previous domain.OrderStatus) {
	event := events.OrderEvent{
		Type:           eventType,
		OrderID:        order.ID,
		OrderNumber:    order.OrderNumber,
		OrderType:      string(order.OrderType),
		Status:         string(order.Status),
		PreviousStatus: string(previous),
		Total:          order.Total,
		Timestamp:      time.Now().UTC(),
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		s.logger.Warn("Order event not delivered",
			zap.String("type", eventType),
			zap.Int64("order_id", order.ID),
			zap.String("order_number", order.OrderNumber),
			zap.Error(err),
		)
	}
}
