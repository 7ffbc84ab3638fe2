package service

import (
	"context"
	"fmt"

	"github.com/artshowcase/showcase/internal/api"
	"github.com/artshowcase/showcase/internal/model"
)

type DashboardService struct {
	api *api.Client
}

func NewDashboardService(client *api.Client) *DashboardService {
	return &DashboardService{api: client}
}

func (s *DashboardService) Stats(ctx context.Context, sess *model.Session) (*model.DashboardStats, error) {
	if sess == nil {
		return nil, ErrLoginRequired
	}
	stats, err := s.api.WithToken(sess.Token).DashboardStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard stats: %w", err)
	}
	return stats, nil
}
