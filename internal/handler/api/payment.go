package api

import (
	"net/http"

	reqdto "drivethru/internal/handler/dto/request"
	resdto "drivethru/internal/handler/dto/response"
	"drivethru/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	cmds commands.PaymentCommands
}

func NewPaymentHandler(cmds commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{cmds: cmds}
}

// @Summary Decline payment
// @Description Decline a pending payment session; settled sessions are returned unchanged
// @Tags payment
// @Produce json
// @Param pay_session_id path string true "Payment session ID"
// @Success 200 {object} resdto.DeclineResponse
// @Failure 404 {object} httperr.Response
// @Router /payment/{pay_session_id}/decline [post]
func (h *PaymentHandler) Decline(c *gin.Context) {
	result, err := h.cmds.Decline(c.Request.Context(), c.Param("pay_session_id"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDeclineResult(result))
}

// @Summary Pay
// @Description Complete a payment session with a saved card, a new card or a wallet
// @Tags payment
// @Accept json
// @Produce json
// @Param pay_session_id path string true "Payment session ID"
// @Param request body reqdto.PayRequest true "Pay request"
// @Success 200 {object} resdto.PayResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /payment/{pay_session_id}/pay [post]
func (h *PaymentHandler) Pay(c *gin.Context) {
	var req reqdto.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	result, err := h.cmds.Pay(c.Request.Context(), req.ToInput(c.Param("pay_session_id")))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPayResult(result))
}
