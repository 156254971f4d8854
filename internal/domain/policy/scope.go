package policy

import (
	"gazexpress/internal/domain/entity"
	"gazexpress/internal/domain/repository"
)

// StationScope lists all stations to admins, their own to stations and the
// approved and active ones to everybody else.
func StationScope(c Caller) repository.StationFilter {
	switch {
	case IsAdmin(c):
		return repository.StationFilter{}
	case IsStation(c):
		id := c.Account.ID

		return repository.StationFilter{OwnerID: &id}
	default:
		return repository.StationFilter{PublicOnly: true}
	}
}

// CourierScope lists all couriers to admins, their own to couriers and the
// approved ones to everybody else.
func CourierScope(c Caller) repository.CourierFilter {
	switch {
	case IsAdmin(c):
		return repository.CourierFilter{}
	case IsCourier(c):
		id := c.Account.ID

		return repository.CourierFilter{OwnerID: &id}
	default:
		return repository.CourierFilter{ApprovedOnly: true}
	}
}

// AvailableCourierScope lists approved couriers currently available.
func AvailableCourierScope() repository.CourierFilter {
	return repository.CourierFilter{ApprovedOnly: true, AvailableOnly: true}
}

// ProductScope lists everything to admins and a station's own products to a
// station. A station whose profile is missing falls back to the public
// catalog, as does everyone else.
func ProductScope(c Caller) repository.ProductFilter {
	if IsAdmin(c) {
		return repository.ProductFilter{}
	}
	if IsStation(c) {
		if profile := c.StationProfile(); profile != nil {
			id := profile.ID

			return repository.ProductFilter{StationID: &id}
		}
	}

	return repository.ProductFilter{PublicOnly: true}
}

// OrderScope restricts orders to those the caller takes part in. A station
// or courier without a profile sees nothing.
func OrderScope(c Caller) repository.OrderFilter {
	switch {
	case IsAdmin(c):
		return repository.OrderFilter{}
	case IsClient(c):
		id := c.Account.ID

		return repository.OrderFilter{ClientID: &id}
	case IsStation(c):
		profile := c.StationProfile()
		if profile == nil {
			return repository.OrderFilter{None: true}
		}
		id := profile.ID

		return repository.OrderFilter{StationID: &id}
	case IsCourier(c):
		profile := c.CourierProfile()
		if profile == nil {
			return repository.OrderFilter{None: true}
		}
		id := profile.ID

		return repository.OrderFilter{CourierID: &id}
	default:
		return repository.OrderFilter{None: true}
	}
}

// PaymentScope restricts payments to those of orders the caller placed.
func PaymentScope(c Caller) repository.PaymentFilter {
	if IsAdmin(c) {
		return repository.PaymentFilter{}
	}
	if !c.IsAuthenticated() {
		return repository.PaymentFilter{None: true}
	}
	id := c.Account.ID

	return repository.PaymentFilter{ClientID: &id}
}

// CanSeeOrder applies OrderScope to a single loaded order.
func CanSeeOrder(c Caller, order *entity.Order) bool {
	scope := OrderScope(c)
	switch {
	case scope.None:
		return false
	case scope.ClientID != nil:
		return order.ClientID == *scope.ClientID
	case scope.StationID != nil:
		return order.StationID == *scope.StationID
	case scope.CourierID != nil:
		return order.CourierID != nil && *order.CourierID == *scope.CourierID
	default:
		return true
	}
}

// CanSeeStation applies StationScope to a single loaded station.
func CanSeeStation(c Caller, station *entity.StationProfile) bool {
	scope := StationScope(c)
	switch {
	case scope.OwnerID != nil:
		return station.UserID == *scope.OwnerID
	case scope.PublicOnly:
		return station.IsPublic()
	default:
		return true
	}
}

// CanSeeCourier applies CourierScope to a single loaded courier.
func CanSeeCourier(c Caller, courier *entity.CourierProfile) bool {
	scope := CourierScope(c)
	switch {
	case scope.OwnerID != nil:
		return courier.UserID == *scope.OwnerID
	case scope.ApprovedOnly:
		return courier.IsApproved
	default:
		return true
	}
}

// CanSeeProduct applies ProductScope to a single loaded product. station is
// the product's station and must be set for the public check.
func CanSeeProduct(c Caller, product *entity.Product, station *entity.StationProfile) bool {
	scope := ProductScope(c)
	switch {
	case scope.StationID != nil:
		return product.StationID == *scope.StationID
	case scope.PublicOnly:
		return product.Available && station != nil && station.IsApproved
	default:
		return true
	}
}

// CanChangeOrderStatus decides whether the caller may move order to status.
// The order's client may only cancel.
func CanChangeOrderStatus(c Caller, order *entity.Order, status entity.OrderStatus) bool {
	switch {
	case IsAdmin(c):
		return true
	case IsStation(c):
		profile := c.StationProfile()

		return profile != nil && order.StationID == profile.ID
	case IsCourier(c):
		profile := c.CourierProfile()

		return profile != nil && order.CourierID != nil && *order.CourierID == profile.ID
	case IsClient(c):
		return order.ClientID == c.Account.ID && status == entity.OrderStatusCancelled
	default:
		return false
	}
}

// CanAssignCourier decides whether the caller may assign a courier to order.
func CanAssignCourier(c Caller, order *entity.Order) bool {
	if IsAdmin(c) {
		return true
	}
	profile := c.StationProfile()

	return IsStation(c) && profile != nil && order.StationID == profile.ID
}
