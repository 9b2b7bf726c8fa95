package api

import (
	"net/http"

	reqdto "drivethru/internal/handler/dto/request"
	resdto "drivethru/internal/handler/dto/response"
	"drivethru/internal/usecase/commands"
	"drivethru/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CashierHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewCashierHandler(cmds commands.OrderCommands, q queries.OrderQueries) *CashierHandler {
	return &CashierHandler{cmds: cmds, q: q}
}

// @Summary List orders
// @Description All orders, newest order id first
// @Tags cashier
// @Produce json
// @Success 200 {object} resdto.OrderListResponse
// @Router /cashier/orders [get]
func (h *CashierHandler) Orders(c *gin.Context) {
	items, err := h.q.ListForCashier(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderListItems(items))
}

// @Summary Confirm order total
// @Description Record items and total, then request payment from the customer
// @Tags cashier
// @Accept json
// @Produce json
// @Param order_id path string true "Order ID"
// @Param request body reqdto.ConfirmTotalRequest true "Confirm total request"
// @Success 200 {object} resdto.ConfirmTotalResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /cashier/order/{order_id}/confirm_total [post]
func (h *CashierHandler) ConfirmTotal(c *gin.Context) {
	var req reqdto.ConfirmTotalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	result, err := h.cmds.ConfirmTotal(c.Request.Context(), c.Param("order_id"), req.ItemsText, req.TotalCents)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConfirmTotalResult(result))
}
