package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lorenzobigazzi0/cassa/internal/application/menu/usecases"
	"github.com/lorenzobigazzi0/cassa/internal/shared/utils"
)

type MenuHandler struct {
	listMenuUC usecases.ListMenuExecutor
}

func NewMenuHandler(listMenuUC usecases.ListMenuExecutor) *MenuHandler {
	return &MenuHandler{listMenuUC: listMenuUC}
}

// ListMenu handles GET /api/menu
func (h *MenuHandler) ListMenu(c *gin.Context) {
	items, err := h.listMenuUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", items)
}
