package http

import (
	"github.com/lorenzobigazzi0/cassa/internal/interfaces/http/handlers"
)

type allHandlers struct {
	authHandler     *handlers.AuthHandler
	menuHandler     *handlers.MenuHandler
	orderHandler    *handlers.OrderHandler
	callHandler     *handlers.CallHandler
	realtimeHandler *handlers.RealtimeHandler
	healthHandler   *handlers.HealthHandler
}

func (c *Container) newHandlers() *allHandlers {
	u := c.ucs
	return &allHandlers{
		authHandler:  handlers.NewAuthHandler(u.loginUC, u.getMeUC, c.log),
		menuHandler:  handlers.NewMenuHandler(u.listMenuUC),
		orderHandler: handlers.NewOrderHandler(u.createOrderUC, u.markItemDoneUC, u.listOrdersUC, u.getOrderUC, u.printOrderUC, c.log),
		callHandler:  handlers.NewCallHandler(u.createCallUC, u.ackCallUC, c.permissionMiddleware, c.log),
		realtimeHandler: handlers.NewRealtimeHandler(
			c.registry, c.jwtSvc, c.cfg.Realtime, c.cfg.Server.AllowedOrigins, c.log.Named("realtime"),
		),
		healthHandler: handlers.NewHealthHandler(c.ping, c.registry),
	}
}
