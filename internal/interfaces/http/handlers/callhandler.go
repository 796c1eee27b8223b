package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lorenzobigazzi0/cassa/internal/application/call/usecases"
	"github.com/lorenzobigazzi0/cassa/internal/domain/call"
	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/permission"
	"github.com/lorenzobigazzi0/cassa/internal/interfaces/http/middleware"
	"github.com/lorenzobigazzi0/cassa/internal/shared/errors"
	"github.com/lorenzobigazzi0/cassa/internal/shared/logger"
	"github.com/lorenzobigazzi0/cassa/internal/shared/utils"
)

type CallHandler struct {
	createCallUC usecases.CreateCallExecutor
	ackCallUC    usecases.AckCallExecutor
	permissions  *middleware.PermissionMiddleware
	logger       logger.Interface
}

func NewCallHandler(
	createCallUC usecases.CreateCallExecutor,
	ackCallUC usecases.AckCallExecutor,
	permissions *middleware.PermissionMiddleware,
	logger logger.Interface,
) *CallHandler {
	return &CallHandler{
		createCallUC: createCallUC,
		ackCallUC:    ackCallUC,
		permissions:  permissions,
		logger:       logger,
	}
}

// CreateCall handles POST /api/calls. Which roles may call depends on the
// call type, so the permission check runs after the body is read.
func (h *CallHandler) CreateCall(c *gin.Context) {
	var req CreateCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create call", "error", err)
		utils.ErrorResponseWithError(c, bindError(err))
		return
	}

	cmd := req.ToCommand(middleware.GetUserID(c))
	callType := call.CallType(cmd.CallType)
	if !callType.IsValid() {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid call type", req.CallType))
		return
	}
	if !h.permissions.Allowed(c, callType.PermissionResource(), permission.ActionCreate) {
		c.Abort()
		return
	}

	result, err := h.createCallUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Call created successfully")
}

// AckCall handles POST /api/calls/:call_id/ack
func (h *CallHandler) AckCall(c *gin.Context) {
	callID, err := utils.ParseUintParam(c, "call_id", "call")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.ackCallUC.Execute(c.Request.Context(), usecases.AckCallCommand{CallID: callID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
