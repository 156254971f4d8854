package entity

import "github.com/shopspring/decimal"

// DashboardStats are the admin reporting aggregates.
type DashboardStats struct {
	TotalClients  int64
	TotalCouriers int64 // approved couriers
	TotalStations int64 // approved stations
	TotalOrders   int64
	Revenue       decimal.Decimal // sum of grand totals of delivered orders
	OrdersToday   int64
	OrdersWeek    int64
	OrdersMonth   int64
}
