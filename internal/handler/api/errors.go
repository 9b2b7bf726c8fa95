package api

import (
	"net/http"

	"drivethru/internal/domain/checkin"
	"drivethru/internal/domain/lane"
	"drivethru/internal/domain/order"
	"drivethru/internal/domain/payment"
	"drivethru/internal/handler/httperr"
	"drivethru/internal/pkg/errs"
	"drivethru/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target error
	status int
	msg    string // empty means the sentinel's own text
}

var errorMappings = []errorMapping{
	{target: checkin.ErrCustomerRequired, status: http.StatusBadRequest},
	{target: queries.ErrCustomerRequired, status: http.StatusBadRequest},
	{target: lane.ErrInvalidLane, status: http.StatusBadRequest},
	{target: errs.ErrConnectFieldsRequired, status: http.StatusBadRequest},
	{target: errs.ErrNotCheckedIn, status: http.StatusBadRequest, msg: "Please click ‘I’m Here’ for this lane first."},
	{target: lane.ErrCodeExpired, status: http.StatusBadRequest, msg: "Code expired. Enter the new code shown."},
	{target: lane.ErrInvalidCode, status: http.StatusBadRequest, msg: "Invalid code. Check the lane display and try again."},
	{target: errs.ErrOrderNotFound, status: http.StatusNotFound},
	{target: order.ErrInvalidTotal, status: http.StatusBadRequest},
	{target: errs.ErrPaymentSessionNotFound, status: http.StatusNotFound},
	{target: errs.ErrCustomerMismatch, status: http.StatusForbidden},
	{target: payment.ErrInvalidSavedCard, status: http.StatusBadRequest},
	{target: payment.ErrInvalidNewCard, status: http.StatusBadRequest},
	{target: payment.ErrUnsupportedMode, status: http.StatusBadRequest},
}

func abortWithUsecaseError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			msg := m.msg
			if msg == "" {
				msg = m.target.Error()
			}
			httperr.AbortWithError(c, m.status, err, msg)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
}

func abortInvalidRequest(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
}
