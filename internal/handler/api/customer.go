package api

import (
	"net/http"

	reqdto "drivethru/internal/handler/dto/request"
	resdto "drivethru/internal/handler/dto/response"
	"drivethru/internal/usecase/commands"
	"drivethru/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	cmds   commands.CustomerCommands
	wallet queries.WalletQueries
}

func NewCustomerHandler(cmds commands.CustomerCommands, wallet queries.WalletQueries) *CustomerHandler {
	return &CustomerHandler{cmds: cmds, wallet: wallet}
}

// @Summary Check in to a lane
// @Description Record that the customer is at a lane ("I'm Here")
// @Tags customer
// @Accept json
// @Produce json
// @Param request body reqdto.CheckInRequest true "Check-in request"
// @Success 200 {object} resdto.CheckInResponse
// @Failure 400 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /customer/checkin [post]
func (h *CustomerHandler) CheckIn(c *gin.Context) {
	var req reqdto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	result, err := h.cmds.CheckIn(c.Request.Context(), req.CustomerID, req.LaneID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckInResult(result))
}

// @Summary Connect to a lane
// @Description Verify the lane code shown at the station and open an order
// @Tags customer
// @Accept json
// @Produce json
// @Param request body reqdto.ConnectRequest true "Connect request"
// @Success 200 {object} resdto.ConnectResponse
// @Failure 400 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /customer/connect [post]
func (h *CustomerHandler) Connect(c *gin.Context) {
	var req reqdto.ConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	result, err := h.cmds.Connect(c.Request.Context(), req.CustomerID, req.LaneID, req.Code)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConnectResult(result))
}

// @Summary List saved cards
// @Description Saved wallet cards; the demo cards are added on first access
// @Tags customer
// @Produce json
// @Param customer_id path string true "Customer ID"
// @Success 200 {object} resdto.CardsResponse
// @Router /customer/{customer_id}/cards [get]
func (h *CustomerHandler) Cards(c *gin.Context) {
	customerID := c.Param("customer_id")
	cards, err := h.wallet.ListCards(c.Request.Context(), customerID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCardViews(customerID, cards))
}
