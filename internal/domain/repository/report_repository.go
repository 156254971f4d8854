package repository

import (
	"context"
	"time"

	"gazexpress/internal/domain/entity"
)

// ReportWindows are the lower bounds of the dashboard order counts.
type ReportWindows struct {
	DayStart   time.Time
	WeekStart  time.Time
	MonthStart time.Time
}

// ReportRepository computes reporting aggregates.
type ReportRepository interface {
	DashboardStats(ctx context.Context, windows ReportWindows) (*entity.DashboardStats, error)
}
