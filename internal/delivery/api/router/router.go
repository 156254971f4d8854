// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gazexpress/internal/delivery/api/middleware"
	"gazexpress/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	AdminHandler   *handler.AdminHandler
	StationHandler *handler.StationHandler
	CourierHandler *handler.CourierHandler
	ZoneHandler    *handler.ZoneHandler
	ProductHandler *handler.ProductHandler
	OrderHandler   *handler.OrderHandler
	PaymentHandler *handler.PaymentHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	adminHandler   *handler.AdminHandler
	stationHandler *handler.StationHandler
	courierHandler *handler.CourierHandler
	zoneHandler    *handler.ZoneHandler
	productHandler *handler.ProductHandler
	orderHandler   *handler.OrderHandler
	paymentHandler *handler.PaymentHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		adminHandler:   params.AdminHandler,
		stationHandler: params.StationHandler,
		courierHandler: params.CourierHandler,
		zoneHandler:    params.ZoneHandler,
		productHandler: params.ProductHandler,
		orderHandler:   params.OrderHandler,
		paymentHandler: params.PaymentHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application. Role and
// ownership checks happen in the usecases; routes only decide whether a
// token is mandatory.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authenticated := r.authMiddleware.Authenticate
	optional := r.authMiddleware.OptionalAuthenticate

	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
		authGroup.POST("/refresh", r.accountHandler.RefreshToken)
		authGroup.POST("/logout", r.accountHandler.Logout)
		authGroup.GET("/profile", r.accountHandler.GetProfile, authenticated)
		authGroup.PUT("/profile", r.accountHandler.UpdateProfile, authenticated)
	}

	usersGroup := e.Group("/users", authenticated)
	{
		usersGroup.GET("", r.adminHandler.ListAccounts)
		usersGroup.GET("/:id", r.adminHandler.GetAccount)
		usersGroup.PUT("/:id", r.adminHandler.UpdateAccount)
		usersGroup.DELETE("/:id", r.adminHandler.DeleteAccount)
		usersGroup.POST("/:id/approve", r.adminHandler.ApproveAccount)
	}

	adminGroup := e.Group("/admin", authenticated)
	{
		adminGroup.GET("/pending-approvals", r.adminHandler.PendingApprovals)
		adminGroup.GET("/dashboard", r.adminHandler.Dashboard)
	}

	stationsGroup := e.Group("/stations")
	{
		stationsGroup.GET("", r.stationHandler.List, optional)
		stationsGroup.GET("/:id", r.stationHandler.Get, optional)
		stationsGroup.POST("", r.stationHandler.Create, authenticated)
		stationsGroup.PUT("/:id", r.stationHandler.Update, authenticated)
		stationsGroup.DELETE("/:id", r.stationHandler.Delete, authenticated)
		stationsGroup.POST("/:id/approve", r.stationHandler.Approve, authenticated)
	}

	couriersGroup := e.Group("/livreurs")
	{
		couriersGroup.GET("", r.courierHandler.List, optional)
		couriersGroup.GET("/disponibles", r.courierHandler.ListAvailable, authenticated)
		couriersGroup.GET("/:id", r.courierHandler.Get, optional)
		couriersGroup.POST("", r.courierHandler.Create, authenticated)
		couriersGroup.PUT("/:id", r.courierHandler.Update, authenticated)
		couriersGroup.DELETE("/:id", r.courierHandler.Delete, authenticated)
		couriersGroup.POST("/:id/approve", r.courierHandler.Approve, authenticated)
	}

	zonesGroup := e.Group("/zones", authenticated)
	{
		zonesGroup.GET("", r.zoneHandler.List)
		zonesGroup.GET("/:id", r.zoneHandler.Get)
		zonesGroup.POST("", r.zoneHandler.Create)
		zonesGroup.PUT("/:id", r.zoneHandler.Update)
		zonesGroup.DELETE("/:id", r.zoneHandler.Delete)
	}

	productsGroup := e.Group("/bouteilles")
	{
		productsGroup.GET("", r.productHandler.List, optional)
		productsGroup.GET("/:id", r.productHandler.Get, optional)
		productsGroup.POST("", r.productHandler.Create, authenticated)
		productsGroup.PUT("/:id", r.productHandler.Update, authenticated)
		productsGroup.DELETE("/:id", r.productHandler.Delete, authenticated)
	}

	ordersGroup := e.Group("/commandes", authenticated)
	{
		ordersGroup.GET("", r.orderHandler.List)
		ordersGroup.POST("", r.orderHandler.Create)
		ordersGroup.GET("/:id", r.orderHandler.Get)
		ordersGroup.PUT("/:id", r.orderHandler.Update)
		ordersGroup.POST("/:id/assign_livreur", r.orderHandler.AssignCourier)
		ordersGroup.POST("/:id/update_status", r.orderHandler.UpdateStatus)
	}

	paymentsGroup := e.Group("/paiements", authenticated)
	{
		paymentsGroup.GET("", r.paymentHandler.List)
		paymentsGroup.POST("", r.paymentHandler.Create)
		paymentsGroup.GET("/:id", r.paymentHandler.Get)
		paymentsGroup.PUT("/:id", r.paymentHandler.UpdateStatus)
	}
}
