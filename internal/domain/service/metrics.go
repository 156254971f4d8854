package service

import "gazexpress/internal/domain/entity"

// MetricsRecorder counts business events.
type MetricsRecorder interface {
	OrderCreated()
	OrderStatusChanged(from, to entity.OrderStatus)
	CourierAssigned()
	ApprovalDecided(role entity.Role, approved bool)
	AccountRegistered(role entity.Role)
}
