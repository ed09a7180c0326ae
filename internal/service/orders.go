package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jask/threecourse/internal/checkout"
	"github.com/jask/threecourse/internal/database"
	"github.com/jask/threecourse/internal/database/repository"
)

// Receipt is what confirming an order produces.
type Receipt struct {
	Message   string
	OrderID   string
	Journaled bool
}

// OrderService confirms checkouts and, when Orders is set, journals them.
type OrderService struct {
	Orders *repository.OrderRepo
	Log    zerolog.Logger
	Now    func() time.Time
}

// Confirm always acknowledges the order. A journal failure is returned as
// the error next to a receipt that still carries the acknowledgement.
func (s *OrderService) Confirm(ctx context.Context, sum checkout.Summary) (Receipt, error) {
	receipt := Receipt{Message: sum.Confirm().Message}
	if s.Orders == nil {
		s.Log.Info().Int("items", len(sum.Items())).Msg("order confirmed")
		return receipt, nil
	}

	order := s.orderFrom(sum)
	if err := s.Orders.Insert(ctx, order); err != nil {
		s.Log.Error().Err(err).Str("order", order.ID).Msg("journal order")
		return receipt, fmt.Errorf("journal order: %w", err)
	}
	receipt.OrderID = order.ID
	receipt.Journaled = true
	s.Log.Info().Str("order", order.ID).Int("items", len(order.Lines)).Msg("order confirmed")
	return receipt, nil
}

// Journaling reports whether confirmed orders are recorded.
func (s *OrderService) Journaling() bool { return s.Orders != nil }

// Recent lists journaled orders, newest first.
func (s *OrderService) Recent(ctx context.Context, limit int) ([]repository.Order, error) {
	if s.Orders == nil {
		return nil, nil
	}
	return s.Orders.List(ctx, limit)
}

// FindByDish returns journaled orders holding a dish whose name matches query
// by substring or close spelling. limit <= 0 means no limit.
func (s *OrderService) FindByDish(ctx context.Context, query string, limit int) ([]repository.Order, error) {
	query = strings.TrimSpace(query)
	if s.Orders == nil || query == "" {
		return nil, nil
	}
	all, err := s.Orders.List(ctx, 0)
	if err != nil {
		return nil, err
	}
	var out []repository.Order
	for _, o := range all {
		for _, l := range o.Lines {
			if dishMatches(l.Name, query) {
				out = append(out, o)
				break
			}
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *OrderService) orderFrom(sum checkout.Summary) repository.Order {
	now := database.Now
	if s.Now != nil {
		now = s.Now
	}
	order := repository.Order{
		ID:        uuid.NewString(),
		Total:     sum.Total(),
		CreatedAt: now(),
	}
	for i, it := range sum.Items() {
		order.Lines = append(order.Lines, repository.OrderLine{
			ID:          uuid.NewString(),
			OrderID:     order.ID,
			Position:    i,
			MenuItemID:  it.ID,
			Name:        it.Name,
			Description: it.Description,
			Price:       it.Price,
		})
	}
	return order
}
