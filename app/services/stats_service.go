package services

import (
	"context"
	"fmt"

	"github.com/shashiranjanraj/bistro/app/models"
	"github.com/shashiranjanraj/bistro/app/repositories"
)

type StatsService struct {
	users    repositories.UserRepository
	menu     repositories.MenuRepository
	payments repositories.PaymentRepository
}

func NewStatsService(u repositories.UserRepository, m repositories.MenuRepository, p repositories.PaymentRepository) *StatsService {
	return &StatsService{users: u, menu: m, payments: p}
}

// AdminStats gathers the dashboard headline numbers. Counts are taken
// per collection and revenue is summed over all recorded payments; an
// empty payments collection reports zero revenue.
func (s *StatsService) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	items, err := s.menu.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count menu items: %w", err)
	}
	orders, err := s.payments.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}
	revenue, err := s.payments.TotalRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("total revenue: %w", err)
	}
	return &models.AdminStats{
		Users:     users,
		MenuItems: items,
		Orders:    orders,
		Revenue:   revenue,
	}, nil
}

// OrderStats breaks ordered items down by menu category, counting each
// occurrence of a menu item across all payments.
func (s *StatsService) OrderStats(ctx context.Context) ([]models.CategoryStat, error) {
	stats, err := s.payments.CategoryStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("category stats: %w", err)
	}
	return stats, nil
}
