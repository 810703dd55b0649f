// console/service/services.go
package service

import (
	"context"
	"time"

	"github.com/dev-mohitbeniwal/aptmgr/console/dao"
	"github.com/dev-mohitbeniwal/aptmgr/console/db"
	"github.com/dev-mohitbeniwal/aptmgr/console/gateway"
	"github.com/dev-mohitbeniwal/aptmgr/console/util"
)

type Services struct {
	Auth      *AuthService
	Building  IBuildingService
	Flat      IFlatService
	Contract  IContractService
	Payment   IPaymentService
	Expense   IExpenseService
	Dues      IMonthlyDueService
	Dashboard IDashboardService
}

// Dependencies groups what the services share.
type Dependencies struct {
	Client          *gateway.Client
	Store           db.SessionStore
	Settings        CacheSettings
	Locker          Locker
	LockTTL         time.Duration
	ValidationUtil  *util.ValidationUtil
	CacheService    *util.CacheService
	NotificationSvc *util.NotificationService
	Navigator       *util.Navigator
	EventBus        *util.EventBus
}

func InitializeServices(deps Dependencies) (*Services, error) {
	client := deps.Client

	buildings := NewBuildingService(dao.NewBuildingDAO(client), deps.Settings, deps.CacheService, deps.NotificationSvc, deps.EventBus)
	flats := NewFlatService(dao.NewFlatDAO(client), deps.Settings, deps.CacheService, deps.NotificationSvc, deps.EventBus)
	contracts := NewContractService(dao.NewContractDAO(client), deps.Settings, deps.ValidationUtil, deps.CacheService, deps.NotificationSvc, deps.EventBus)
	payments := NewPaymentService(dao.NewPaymentDAO(client), deps.Settings, deps.ValidationUtil, deps.CacheService, deps.NotificationSvc, deps.EventBus)
	expenses := NewExpenseService(dao.NewExpenseDAO(client), deps.Settings, deps.ValidationUtil, deps.CacheService, deps.NotificationSvc, deps.EventBus)
	dues := NewMonthlyDueService(dao.NewMonthlyDueDAO(client), deps.Settings, deps.Locker, deps.LockTTL, deps.ValidationUtil, deps.CacheService, deps.NotificationSvc, deps.EventBus)

	auth := NewAuthService(dao.NewAuthDAO(client), deps.Store, deps.ValidationUtil, deps.CacheService, deps.Navigator, deps.EventBus)
	auth.AddPollingStoppers(buildings, flats, contracts, dues)

	services := &Services{
		Auth:      auth,
		Building:  buildings,
		Flat:      flats,
		Contract:  contracts,
		Payment:   payments,
		Expense:   expenses,
		Dues:      dues,
		Dashboard: NewDashboardService(flats, contracts, payments, dues, expenses),
	}

	return services, nil
}

// RedisLocker takes due generation locks in Redis.
type RedisLocker struct{}

func (RedisLocker) Lock(ctx context.Context, name string, ttl time.Duration) (bool, error) {
	return db.LockResource(ctx, name, ttl)
}

func (RedisLocker) Unlock(ctx context.Context, name string) error {
	return db.UnlockResource(ctx, name)
}
