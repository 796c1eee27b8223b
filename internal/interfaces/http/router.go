package http

import (
	"github.com/gin-gonic/gin"

	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/permission"
	"github.com/lorenzobigazzi0/cassa/internal/interfaces/http/middleware"
)

// SetupRoutes configures all HTTP routes
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))

	h := c.hdlrs
	perm := c.permissionMiddleware.RequirePermission

	c.engine.GET("/health", h.healthHandler.Health)
	c.engine.GET("/ws", h.realtimeHandler.Connect)

	api := c.engine.Group("/api")

	login := []gin.HandlerFunc{}
	if c.loginLimiter != nil {
		login = append(login, c.loginLimiter.Limit())
	}
	login = append(login, h.authHandler.Login)
	api.POST("/auth/login", login...)

	authed := api.Group("")
	authed.Use(c.authMiddleware.RequireAuth())
	{
		authed.GET("/me", h.authHandler.Me)
		authed.GET("/menu", perm(permission.ResourceMenu, permission.ActionRead), h.menuHandler.ListMenu)

		orders := authed.Group("/orders")
		orders.GET("", perm(permission.ResourceOrder, permission.ActionRead), h.orderHandler.ListOrders)
		orders.POST("", perm(permission.ResourceOrder, permission.ActionCreate), h.orderHandler.CreateOrder)
		orders.GET("/:public_id", perm(permission.ResourceOrder, permission.ActionRead), h.orderHandler.GetOrder)
		orders.PATCH("/:public_id/items/:item_id", perm(permission.ResourceOrderItem, permission.ActionUpdate), h.orderHandler.MarkItemDone)
		orders.POST("/:public_id/print", perm(permission.ResourceOrder, permission.ActionPrint), h.orderHandler.PrintOrder)

		calls := authed.Group("/calls")
		// Creation is checked per call type inside the handler.
		calls.POST("", h.callHandler.CreateCall)
		calls.POST("/:call_id/ack", perm(permission.ResourceCall, permission.ActionAck), h.callHandler.AckCall)
	}
}
