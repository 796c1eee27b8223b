package handlers

import (
	"strings"

	callUsecases "github.com/lorenzobigazzi0/cassa/internal/application/call/usecases"
	orderUsecases "github.com/lorenzobigazzi0/cassa/internal/application/order/usecases"
	userUsecases "github.com/lorenzobigazzi0/cassa/internal/application/user/usecases"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required,max=64"`
	Password string `json:"password" binding:"required,max=128"`
}

func (r *LoginRequest) ToCommand() userUsecases.LoginCommand {
	return userUsecases.LoginCommand{Username: r.Username, Password: r.Password}
}

type OrderLineRequest struct {
	MenuItemID uint   `json:"menu_item_id" binding:"required"`
	Qty        int    `json:"qty" binding:"required,min=1,max=50"`
	Note       string `json:"note" binding:"max=200"`
}

type CreateOrderRequest struct {
	TableNumber int                `json:"table_number" binding:"required,min=1,max=500"`
	Covers      int                `json:"covers" binding:"min=0,max=50"`
	Apericena   int                `json:"apericena" binding:"min=0,max=50"`
	Note        string             `json:"note" binding:"max=500"`
	Items       []OrderLineRequest `json:"items" binding:"required,min=1,dive"`
}

func (r *CreateOrderRequest) ToCommand(waiterID uint) orderUsecases.CreateOrderCommand {
	lines := make([]orderUsecases.CreateOrderLine, 0, len(r.Items))
	for _, it := range r.Items {
		lines = append(lines, orderUsecases.CreateOrderLine{
			MenuItemID: it.MenuItemID,
			Qty:        it.Qty,
			Note:       it.Note,
		})
	}
	return orderUsecases.CreateOrderCommand{
		TableNumber: r.TableNumber,
		WaiterID:    waiterID,
		Covers:      r.Covers,
		Apericena:   r.Apericena,
		Note:        r.Note,
		Lines:       lines,
	}
}

// MarkItemDoneRequest uses a pointer so a missing is_done is rejected
// instead of read as false.
type MarkItemDoneRequest struct {
	IsDone *bool `json:"is_done" binding:"required"`
}

type CreateCallRequest struct {
	CallType      string  `json:"call_type" binding:"required"`
	ToUserID      *uint   `json:"to_user_id"`
	TableNumber   *int    `json:"table_number"`
	OrderPublicID *string `json:"order_public_id"`
	Message       *string `json:"message"`
}

func (r *CreateCallRequest) ToCommand(fromUserID uint) callUsecases.CreateCallCommand {
	return callUsecases.CreateCallCommand{
		CallType:      strings.ToUpper(strings.TrimSpace(r.CallType)),
		FromUserID:    fromUserID,
		ToUserID:      r.ToUserID,
		TableNumber:   r.TableNumber,
		OrderPublicID: r.OrderPublicID,
		Message:       r.Message,
	}
}
