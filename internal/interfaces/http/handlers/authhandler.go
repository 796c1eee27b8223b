package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lorenzobigazzi0/cassa/internal/application/user/usecases"
	"github.com/lorenzobigazzi0/cassa/internal/interfaces/http/middleware"
	"github.com/lorenzobigazzi0/cassa/internal/shared/logger"
	"github.com/lorenzobigazzi0/cassa/internal/shared/utils"
)

type AuthHandler struct {
	loginUC usecases.LoginExecutor
	getMeUC usecases.GetMeExecutor
	logger  logger.Interface
}

func NewAuthHandler(loginUC usecases.LoginExecutor, getMeUC usecases.GetMeExecutor, logger logger.Interface) *AuthHandler {
	return &AuthHandler{
		loginUC: loginUC,
		getMeUC: getMeUC,
		logger:  logger,
	}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, bindError(err))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Me handles GET /api/me
func (h *AuthHandler) Me(c *gin.Context) {
	result, err := h.getMeUC.Execute(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
