// console/dao/contract_dao.go
package dao

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/aptmgr/console/gateway"
	logger "github.com/dev-mohitbeniwal/aptmgr/console/logging"
	"github.com/dev-mohitbeniwal/aptmgr/console/model"
)

const contractsPath = "/contracts"

type ContractDAO struct {
	Client *gateway.Client
}

func NewContractDAO(client *gateway.Client) *ContractDAO {
	return &ContractDAO{Client: client}
}

func (dao *ContractDAO) CreateContract(ctx context.Context, req model.ContractRequest) (*model.Contract, error) {
	start := time.Now()
	logger.Info("Creating new contract", zap.Int64("flatID", req.FlatID), zap.String("tenant", req.TenantName))
	var contract model.Contract
	if err := dao.Client.Post(ctx, contractsPath, req, &contract); err != nil {
		logger.Error("Failed to create contract", zap.Error(err), zap.Int64("flatID", req.FlatID))
		return nil, err
	}
	logger.Info("Contract created",
		zap.Int64("contractID", contract.ID),
		zap.Duration("duration", time.Since(start)))
	return &contract, nil
}

func (dao *ContractDAO) GetContract(ctx context.Context, id int64) (*model.Contract, error) {
	var contract model.Contract
	if err := dao.Client.Get(ctx, contractPath(id), &contract); err != nil {
		return nil, err
	}
	return &contract, nil
}

func (dao *ContractDAO) GetContractsByFlat(ctx context.Context, flatID int64) ([]model.ContractSummary, error) {
	var contracts []model.ContractSummary
	if err := dao.Client.Get(ctx, fmt.Sprintf("%s/flat/%d", contractsPath, flatID), &contracts); err != nil {
		return nil, err
	}
	return contracts, nil
}

// GetActiveContract returns the active contract of a flat. The backend
// answers 404 when there is none.
func (dao *ContractDAO) GetActiveContract(ctx context.Context, flatID int64) (*model.Contract, error) {
	var contract model.Contract
	if err := dao.Client.Get(ctx, fmt.Sprintf("%s/flat/%d/active", contractsPath, flatID), &contract); err != nil {
		return nil, err
	}
	return &contract, nil
}

func (dao *ContractDAO) GetContractsByBuilding(ctx context.Context, buildingID int64, page model.PageRequest, opts ...gateway.RequestOption) (*model.PaginatedResponse[model.ContractSummary], error) {
	params := map[string]interface{}{"page": page.Page, "size": page.Size}
	if page.Sort != "" {
		sortBy, direction := splitSort(page.Sort)
		params["sortBy"] = sortBy
		params["sortDirection"] = direction
	}
	opts = append(opts, gateway.WithParams(params))

	var result model.PaginatedResponse[model.ContractSummary]
	if err := dao.Client.Get(ctx, fmt.Sprintf("%s/building/%d", contractsPath, buildingID), &result, opts...); err != nil {
		logger.Error("Failed to get contracts by building", zap.Error(err), zap.Int64("buildingID", buildingID))
		return nil, err
	}
	return &result, nil
}

func (dao *ContractDAO) SearchContracts(ctx context.Context, tenantName string, page model.PageRequest) (*model.PaginatedResponse[model.ContractSummary], error) {
	var result model.PaginatedResponse[model.ContractSummary]
	err := dao.Client.Get(ctx, contractsPath+"/search", &result, gateway.WithParams(map[string]interface{}{
		"search": tenantName,
		"page":   page.Page,
		"size":   page.Size,
	}))
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (dao *ContractDAO) GetExpiringContracts(ctx context.Context, days int) ([]model.ContractSummary, error) {
	var contracts []model.ContractSummary
	err := dao.Client.Get(ctx, contractsPath+"/expiring", &contracts, gateway.WithParams(map[string]interface{}{"days": days}))
	return contracts, err
}

func (dao *ContractDAO) GetOverdueContracts(ctx context.Context) ([]model.ContractSummary, error) {
	var contracts []model.ContractSummary
	err := dao.Client.Get(ctx, contractsPath+"/overdue", &contracts)
	return contracts, err
}

func (dao *ContractDAO) GetRenewableContracts(ctx context.Context, daysAhead int) ([]model.ContractSummary, error) {
	var contracts []model.ContractSummary
	err := dao.Client.Get(ctx, contractsPath+"/renewable", &contracts, gateway.WithParams(map[string]interface{}{"daysAhead": daysAhead}))
	return contracts, err
}

func (dao *ContractDAO) RenewContract(ctx context.Context, id int64, req model.ContractRenewalRequest) (*model.Contract, error) {
	return dao.postAction(ctx, id, "renew", req)
}

func (dao *ContractDAO) CancelContract(ctx context.Context, id int64, req model.ContractCancellationRequest) (*model.Contract, error) {
	return dao.postAction(ctx, id, "cancel", req)
}

func (dao *ContractDAO) ModifyContract(ctx context.Context, id int64, req model.ContractModificationRequest) (*model.Contract, error) {
	return dao.postAction(ctx, id, "modify", req)
}

func (dao *ContractDAO) postAction(ctx context.Context, id int64, action string, body interface{}) (*model.Contract, error) {
	logger.Info("Submitting contract action", zap.Int64("contractID", id), zap.String("action", action))
	var contract model.Contract
	if err := dao.Client.Post(ctx, fmt.Sprintf("%s/%s", contractPath(id), action), body, &contract); err != nil {
		logger.Error("Contract action failed", zap.Error(err), zap.Int64("contractID", id), zap.String("action", action))
		return nil, err
	}
	return &contract, nil
}

func (dao *ContractDAO) GetStatistics(ctx context.Context, buildingID int64) (*model.ContractStatistics, error) {
	var stats model.ContractStatistics
	if err := dao.Client.Get(ctx, fmt.Sprintf("%s/building/%d/statistics", contractsPath, buildingID), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (dao *ContractDAO) GetTotalMonthlyRent(ctx context.Context, buildingID int64) (float64, error) {
	var total model.MonthlyRentTotal
	if err := dao.Client.Get(ctx, fmt.Sprintf("%s/building/%d/monthly-rent", contractsPath, buildingID), &total); err != nil {
		return 0, err
	}
	return total.TotalMonthlyRent, nil
}

func (dao *ContractDAO) GenerateExpiryNotifications(ctx context.Context) ([]model.ContractExpiryNotification, error) {
	var notifications []model.ContractExpiryNotification
	err := dao.Client.Post(ctx, contractsPath+"/notifications/expiry", nil, &notifications)
	return notifications, err
}

func (dao *ContractDAO) UpdateStatuses(ctx context.Context, opts ...gateway.RequestOption) error {
	return dao.Client.Post(ctx, contractsPath+"/update-statuses", nil, nil, opts...)
}

func contractPath(id int64) string {
	return fmt.Sprintf("%s/%d", contractsPath, id)
}

// splitSort turns "field,desc" into the backend's sortBy/sortDirection pair.
func splitSort(sort string) (string, string) {
	field, dir, _ := strings.Cut(sort, ",")
	if strings.EqualFold(dir, "asc") {
		return field, "ASC"
	}
	return field, "DESC"
}
