package postgres

import (
	"context"

	"gazexpress/internal/domain/entity"
	"gazexpress/internal/domain/repository"
	"gazexpress/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// reportRepository implements the repository.ReportRepository interface.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

// DashboardStats runs the dashboard aggregates. Couriers and stations are
// counted on approved profiles; revenue sums delivered orders.
func (repo *reportRepository) DashboardStats(ctx context.Context, windows repository.ReportWindows) (*entity.DashboardStats, error) {
	stats := &entity.DashboardStats{Revenue: decimal.Zero}
	db := repo.db.WithContext(ctx)

	counts := []struct {
		dst   *int64
		query *gorm.DB
	}{
		{&stats.TotalClients, db.Model(&model.UserModel{}).Where("role = ?", entity.RoleClient.String())},
		{&stats.TotalCouriers, db.Model(&model.CourierProfileModel{}).Where("is_approved = ?", true)},
		{&stats.TotalStations, db.Model(&model.StationProfileModel{}).Where("is_approved = ?", true)},
		{&stats.TotalOrders, db.Model(&model.OrderModel{})},
		{&stats.OrdersToday, db.Model(&model.OrderModel{}).Where("created_at >= ?", windows.DayStart)},
		{&stats.OrdersWeek, db.Model(&model.OrderModel{}).Where("created_at >= ?", windows.WeekStart)},
		{&stats.OrdersMonth, db.Model(&model.OrderModel{}).Where("created_at >= ?", windows.MonthStart)},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dst).Error; err != nil {
			return nil, errors.WithStack(err)
		}
	}

	var revenue struct {
		Revenue decimal.NullDecimal
	}
	if err := db.Model(&model.OrderModel{}).
		Select("SUM(grand_total) AS revenue").
		Where("status = ?", string(entity.OrderStatusDelivered)).
		Scan(&revenue).Error; err != nil {
		return nil, errors.WithStack(err)
	}
	if revenue.Revenue.Valid {
		stats.Revenue = revenue.Revenue.Decimal
	}

	return stats, nil
}
