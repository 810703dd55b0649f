// console/audit/service.go
package audit

import (
	"context"
)

type Service interface {
	LogActivity(ctx context.Context, activity Activity) error
	QueryActivities(ctx context.Context, q ActivityQuery) ([]Activity, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) LogActivity(ctx context.Context, activity Activity) error {
	return s.repo.LogActivity(ctx, activity)
}

func (s *service) QueryActivities(ctx context.Context, q ActivityQuery) ([]Activity, error) {
	return s.repo.QueryActivities(ctx, q)
}
