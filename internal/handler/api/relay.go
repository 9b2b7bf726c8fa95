package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"drivethru/internal/domain/order"
	reqdto "drivethru/internal/handler/dto/request"
	"drivethru/internal/handler/httperr"
	"drivethru/internal/pkg/config"
	"drivethru/internal/pkg/errs"
	"drivethru/internal/relay"
	"drivethru/internal/usecase/commands"
	"drivethru/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const (
	invalidOrderNotice  = "Invalid order or customer mismatch."
	orderNotFoundNotice = "Order not found."
)

var (
	errInvalidRole    = errs.New("invalid call role")
	errMalformedFrame = errs.New("malformed relay frame")
)

// RelayHandler serves the websocket channels: customer push, order chat and call signaling.
type RelayHandler struct {
	hub       *relay.Hub
	customers commands.CustomerCommands
	orders    commands.OrderCommands
	cfg       config.RelayConfig
	logger    *slog.Logger
}

func NewRelayHandler(
	hub *relay.Hub,
	customers commands.CustomerCommands,
	orders commands.OrderCommands,
	cfg config.Config,
	logger *slog.Logger,
) *RelayHandler {
	return &RelayHandler{
		hub:       hub,
		customers: customers,
		orders:    orders,
		cfg:       cfg.Relay,
		logger:    logger,
	}
}

// @Summary Customer push channel
// @Description WebSocket for out-of-band customer notifications (info, payment_request)
// @Tags relay
// @Param customer_id path string true "Customer ID"
// @Router /ws/customer/{customer_id} [get]
func (h *RelayHandler) CustomerChannel(c *gin.Context) {
	customerID := pathID(c, "customer_id")
	conn, ok := h.upgrade(c)
	if !ok {
		return
	}
	defer conn.Close()

	h.hub.AttachCustomer(customerID, conn)
	defer h.hub.DetachCustomer(customerID, conn)

	if err := h.customers.OpenHome(c.Request.Context(), customerID); err != nil {
		h.logger.Error("failed to prepare customer home", "customer_id", customerID, "error", err)
	}
	conn.SendJSON(shared.NewInfoEvent(commands.HomeGreeting))

	// inbound frames carry nothing for the server
	h.serve(conn, "customer_id", customerID, func([]byte) error { return nil })
}

// @Summary Order chat channel (customer)
// @Description WebSocket chat between the customer and the cashier of an order
// @Tags relay
// @Param order_id path string true "Order ID"
// @Param customer_id query string true "Customer ID owning the order"
// @Router /ws/order/{order_id}/customer [get]
func (h *RelayHandler) OrderCustomerChannel(c *gin.Context) {
	orderID := pathID(c, "order_id")
	customerID := strings.TrimSpace(c.Query("customer_id"))
	conn, ok := h.upgrade(c)
	if !ok {
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()
	access, err := h.orders.JoinAsCustomer(ctx, orderID, customerID)
	if err != nil {
		h.logger.Info("order channel rejected", "order_id", orderID, "customer_id", customerID, "reason", err.Error())
		conn.SendJSON(shared.NewChatEvent(string(order.SenderSystem), invalidOrderNotice))
		return
	}

	h.hub.AttachOrder(access.OrderID, relay.RoleCustomer, conn)
	defer h.hub.DetachOrder(access.OrderID, relay.RoleCustomer, conn)

	conn.SendJSON(shared.NewOrderStateEvent(access.Status.String()))
	h.serve(conn, "order_id", access.OrderID, h.chatFrames(ctx, access.OrderID, order.SenderCustomer))
}

// @Summary Order chat channel (cashier)
// @Description WebSocket chat for the cashier; joining marks the order CASHIER_CONNECTED and replays recent chat before live frames
// @Tags relay
// @Param order_id path string true "Order ID"
// @Param cashier_id query string false "Cashier ID"
// @Router /ws/order/{order_id}/cashier [get]
func (h *RelayHandler) OrderCashierChannel(c *gin.Context) {
	orderID := pathID(c, "order_id")
	conn, ok := h.upgrade(c)
	if !ok {
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()
	joined, err := h.orders.JoinAsCashier(ctx, orderID, func(seated *commands.CashierJoinResult) {
		conn.SendJSON(seated.Snapshot)
		for _, line := range seated.History {
			conn.SendJSON(shared.NewChatEvent(string(line.From), line.Text))
		}
		h.hub.AttachOrder(seated.OrderID, relay.RoleCashier, conn)
	})
	if err != nil {
		if !errs.Is(err, errs.ErrOrderNotFound) {
			h.logger.Error("cashier join failed", "order_id", orderID, "error", err)
		}
		conn.SendJSON(shared.NewChatEvent(string(order.SenderSystem), orderNotFoundNotice))
		return
	}
	defer h.hub.DetachOrder(joined.OrderID, relay.RoleCashier, conn)
	h.logger.Info("cashier attached", "order_id", joined.OrderID, "cashier_id", c.Query("cashier_id"))

	h.serve(conn, "order_id", joined.OrderID, h.chatFrames(ctx, joined.OrderID, order.SenderCashier))
}

// @Summary Call signaling channel
// @Description WebSocket relaying opaque call signaling frames to the opposite role
// @Tags relay
// @Param order_id path string true "Order ID"
// @Param role path string true "customer or cashier"
// @Failure 403 {object} httperr.Response
// @Router /ws/call/{order_id}/{role} [get]
func (h *RelayHandler) CallChannel(c *gin.Context) {
	orderID := pathID(c, "order_id")
	role, valid := relay.ParseRole(c.Param("role"))
	if !valid {
		httperr.AbortWithError(c, http.StatusForbidden, errInvalidRole, "role must be customer or cashier")
		return
	}
	conn, ok := h.upgrade(c)
	if !ok {
		return
	}
	defer conn.Close()

	h.hub.AttachCall(orderID, role, conn)
	defer h.hub.DetachCall(orderID, role, conn)

	h.serve(conn, "order_id", orderID, func(payload []byte) error {
		if !json.Valid(payload) {
			return errMalformedFrame
		}
		h.hub.RelayCall(orderID, role, payload)
		return nil
	})
}

// pathID is the hub key for a path id; commands resolve ids the same way.
func pathID(c *gin.Context, name string) string {
	return strings.TrimSpace(c.Param(name))
}

func (h *RelayHandler) upgrade(c *gin.Context) (*relay.Conn, bool) {
	ws, err := relay.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// the upgrader has already answered with an HTTP error
		h.logger.Warn("websocket upgrade failed", "path", c.Request.URL.Path, "error", err)
		return nil, false
	}
	conn := relay.NewConn(ws, h.cfg, h.logger)
	go conn.WritePump()
	return conn, true
}

func (h *RelayHandler) serve(conn *relay.Conn, key, id string, handle func([]byte) error) {
	if err := conn.ReadPump(handle); err != nil {
		h.logger.Warn("relay channel closed", key, id, "error", err)
		return
	}
	h.logger.Debug("relay channel closed", key, id)
}

// chatFrames appends inbound chat to the order and relays it to both sides. Malformed JSON ends the channel.
func (h *RelayHandler) chatFrames(ctx context.Context, orderID string, from order.Sender) func([]byte) error {
	return func(payload []byte) error {
		var frame reqdto.ChatFrame
		if err := json.Unmarshal(payload, &frame); err != nil {
			return errs.Wrap(errMalformedFrame, err.Error())
		}
		text := frame.Message()
		if !frame.IsChat() || text == "" {
			return nil
		}
		return h.orders.PostChat(ctx, orderID, from, text)
	}
}
