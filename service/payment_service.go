// console/service/payment_service.go
package service

//go:generate mockgen -source=payment_service.go -destination=../test/service_mock/payment_service_mock.go -package=mock_service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dev-mohitbeniwal/aptmgr/console/cache"
	"github.com/dev-mohitbeniwal/aptmgr/console/dao"
	apt_errors "github.com/dev-mohitbeniwal/aptmgr/console/errors"
	"github.com/dev-mohitbeniwal/aptmgr/console/model"
	"github.com/dev-mohitbeniwal/aptmgr/console/util"
)

// IPaymentService defines the interface for payment operations
type IPaymentService interface {
	RecordPayment(ctx context.Context, req model.PaymentRequest) (*model.Payment, error)
	ListByFlat(ctx context.Context, flatID int64, dates model.DateRange, opts FetchOptions) ([]model.Payment, error)
	ListByBuilding(ctx context.Context, buildingID int64, dates model.DateRange, opts FetchOptions) ([]model.Payment, error)
	GetStatistics(ctx context.Context, buildingID int64, dates model.DateRange, opts FetchOptions) (*model.PaymentStatistics, error)
	GetOutstandingBalance(ctx context.Context, flatID int64, opts FetchOptions) (*model.FlatBalance, error)
	UpdatePayment(ctx context.Context, id int64, req model.PaymentRequest) (*model.Payment, error)
	DeletePayment(ctx context.Context, id int64) error
	ClearCache()
}

type PaymentService struct {
	paymentDAO      *dao.PaymentDAO
	validationUtil  *util.ValidationUtil
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus

	listCache    *cache.Cache[[]model.Payment]
	statsCache   *cache.Cache[*model.PaymentStatistics]
	balanceCache *cache.Cache[*model.FlatBalance]
}

var _ IPaymentService = &PaymentService{}

func NewPaymentService(paymentDAO *dao.PaymentDAO, settings CacheSettings, validationUtil *util.ValidationUtil, cacheService *util.CacheService, notificationSvc *util.NotificationService, eventBus *util.EventBus) *PaymentService {
	service := &PaymentService{
		paymentDAO:      paymentDAO,
		validationUtil:  validationUtil,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
		listCache:       cache.New[[]model.Payment]("payments", settings.ListTTL),
		statsCache:      cache.New[*model.PaymentStatistics]("payment-statistics", settings.StatsTTL),
		balanceCache:    cache.New[*model.FlatBalance]("flat-balances", settings.StatsTTL),
	}
	cacheService.Register(service.listCache, service.statsCache, service.balanceCache)

	// Generated or cancelled dues change outstanding balances
	eventBus.Subscribe(util.EventDuesChanged, func(ctx context.Context, event util.Event) error {
		service.balanceCache.InvalidateAll()
		return nil
	})

	return service
}

func (s *PaymentService) RecordPayment(ctx context.Context, req model.PaymentRequest) (*model.Payment, error) {
	if err := s.validationUtil.ValidatePayment(req); err != nil {
		return nil, err
	}
	payment, err := s.paymentDAO.RecordPayment(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	s.afterMutation(ctx, payment.ID)
	notifySuccess(ctx, s.notificationSvc, "Payment recorded successfully")
	return payment, nil
}

func (s *PaymentService) ListByFlat(ctx context.Context, flatID int64, dates model.DateRange, opts FetchOptions) ([]model.Payment, error) {
	if flatID <= 0 {
		return nil, apt_errors.ErrInvalidFlatID
	}
	key := "flat-" + strconv.FormatInt(flatID, 10) + dateKey(dates)
	return s.listCache.Get(ctx, key, opts.ForceRefresh, func(ctx context.Context) ([]model.Payment, error) {
		return s.paymentDAO.ListByFlat(ctx, flatID, dates)
	})
}

func (s *PaymentService) ListByBuilding(ctx context.Context, buildingID int64, dates model.DateRange, opts FetchOptions) ([]model.Payment, error) {
	if buildingID <= 0 {
		return nil, apt_errors.ErrInvalidBuildingID
	}
	key := buildingKey(buildingID) + dateKey(dates)
	return s.listCache.Get(ctx, key, opts.ForceRefresh, func(ctx context.Context) ([]model.Payment, error) {
		return s.paymentDAO.ListByBuilding(ctx, buildingID, dates)
	})
}

func (s *PaymentService) GetStatistics(ctx context.Context, buildingID int64, dates model.DateRange, opts FetchOptions) (*model.PaymentStatistics, error) {
	if buildingID <= 0 {
		return nil, apt_errors.ErrInvalidBuildingID
	}
	key := buildingKey(buildingID) + dateKey(dates)
	return s.statsCache.Get(ctx, key, opts.ForceRefresh, func(ctx context.Context) (*model.PaymentStatistics, error) {
		return s.paymentDAO.GetStatistics(ctx, buildingID, dates)
	})
}

func (s *PaymentService) GetOutstandingBalance(ctx context.Context, flatID int64, opts FetchOptions) (*model.FlatBalance, error) {
	if flatID <= 0 {
		return nil, apt_errors.ErrInvalidFlatID
	}
	return s.balanceCache.Get(ctx, strconv.FormatInt(flatID, 10), opts.ForceRefresh, func(ctx context.Context) (*model.FlatBalance, error) {
		return s.paymentDAO.GetOutstandingBalance(ctx, flatID)
	})
}

func (s *PaymentService) UpdatePayment(ctx context.Context, id int64, req model.PaymentRequest) (*model.Payment, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: payment id %d", apt_errors.ErrInvalidPaymentData, id)
	}
	if err := s.validationUtil.ValidatePayment(req); err != nil {
		return nil, err
	}
	payment, err := s.paymentDAO.UpdatePayment(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}
	s.afterMutation(ctx, id)
	notifySuccess(ctx, s.notificationSvc, "Payment updated successfully")
	return payment, nil
}

func (s *PaymentService) DeletePayment(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: payment id %d", apt_errors.ErrInvalidPaymentData, id)
	}
	if err := s.paymentDAO.DeletePayment(ctx, id); err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	s.afterMutation(ctx, id)
	notifySuccess(ctx, s.notificationSvc, "Payment deleted successfully")
	return nil
}

func (s *PaymentService) ClearCache() {
	s.listCache.InvalidateAll()
	s.statsCache.InvalidateAll()
	s.balanceCache.InvalidateAll()
}

func (s *PaymentService) afterMutation(ctx context.Context, paymentID int64) {
	s.ClearCache()
	s.eventBus.PublishSync(ctx, util.EventPaymentChanged, paymentID)
}

func dateKey(dates model.DateRange) string {
	if dates.StartDate == "" && dates.EndDate == "" {
		return ""
	}
	return "-" + dates.StartDate + "-" + dates.EndDate
}
