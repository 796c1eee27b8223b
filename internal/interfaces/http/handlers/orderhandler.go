package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lorenzobigazzi0/cassa/internal/application/order/usecases"
	printUsecases "github.com/lorenzobigazzi0/cassa/internal/application/printing/usecases"
	"github.com/lorenzobigazzi0/cassa/internal/interfaces/http/middleware"
	"github.com/lorenzobigazzi0/cassa/internal/shared/logger"
	"github.com/lorenzobigazzi0/cassa/internal/shared/utils"
)

type OrderHandler struct {
	createOrderUC  usecases.CreateOrderExecutor
	markItemDoneUC usecases.MarkItemDoneExecutor
	listOrdersUC   usecases.ListOrdersExecutor
	getOrderUC     usecases.GetOrderExecutor
	printOrderUC   printUsecases.PrintOrderExecutor
	logger         logger.Interface
}

func NewOrderHandler(
	createOrderUC usecases.CreateOrderExecutor,
	markItemDoneUC usecases.MarkItemDoneExecutor,
	listOrdersUC usecases.ListOrdersExecutor,
	getOrderUC usecases.GetOrderExecutor,
	printOrderUC printUsecases.PrintOrderExecutor,
	logger logger.Interface,
) *OrderHandler {
	return &OrderHandler{
		createOrderUC:  createOrderUC,
		markItemDoneUC: markItemDoneUC,
		listOrdersUC:   listOrdersUC,
		getOrderUC:     getOrderUC,
		printOrderUC:   printOrderUC,
		logger:         logger,
	}
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create order", "error", err)
		utils.ErrorResponseWithError(c, bindError(err))
		return
	}

	result, err := h.createOrderUC.Execute(c.Request.Context(), req.ToCommand(middleware.GetUserID(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Order, "Order created successfully")
}

// ListOrders handles GET /api/orders?status=
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.listOrdersUC.Execute(c.Request.Context(), usecases.ListOrdersQuery{Status: c.Query("status")})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", orders)
}

// GetOrder handles GET /api/orders/:public_id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	result, err := h.getOrderUC.Execute(c.Request.Context(), usecases.GetOrderQuery{PublicID: c.Param("public_id")})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// MarkItemDone handles PATCH /api/orders/:public_id/items/:item_id
func (h *OrderHandler) MarkItemDone(c *gin.Context) {
	itemID, err := utils.ParseUintParam(c, "item_id", "item")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req MarkItemDoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, bindError(err))
		return
	}

	result, err := h.markItemDoneUC.Execute(c.Request.Context(), usecases.MarkItemDoneCommand{
		PublicID: c.Param("public_id"),
		ItemID:   itemID,
		Done:     *req.IsDone,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Order)
}

// PrintOrder handles POST /api/orders/:public_id/print?printer_name=
// A failed transmission still answers 200; the body carries ok=false.
func (h *OrderHandler) PrintOrder(c *gin.Context) {
	result, err := h.printOrderUC.Execute(c.Request.Context(), printUsecases.PrintOrderCommand{
		PublicID:    c.Param("public_id"),
		PrinterName: c.Query("printer_name"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
