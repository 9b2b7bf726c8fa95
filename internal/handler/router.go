package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"drivethru/internal/handler/api"
	"drivethru/internal/handler/middleware"
	"drivethru/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type handlers struct {
	Customer *api.CustomerHandler
	Cashier  *api.CashierHandler
	Payment  *api.PaymentHandler
	Lane     *api.LaneHandler
	Relay    *api.RelayHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	customerHandler *api.CustomerHandler,
	cashierHandler *api.CashierHandler,
	paymentHandler *api.PaymentHandler,
	laneHandler *api.LaneHandler,
	relayHandler *api.RelayHandler,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, handlers{
		Customer: customerHandler,
		Cashier:  cashierHandler,
		Payment:  paymentHandler,
		Lane:     laneHandler,
		Relay:    relayHandler,
	})
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	var limited []gin.HandlerFunc
	if rl := middleware.RateLimitFor(cfg.RateLimit); rl != nil {
		limited = append(limited, rl)
	}

	customer := engine.Group("/customer")
	{
		addRoutes(customer, []route{
			{Method: http.MethodPost, Path: "/checkin", Handler: h.Customer.CheckIn, Mw: limited},
			{Method: http.MethodPost, Path: "/connect", Handler: h.Customer.Connect, Mw: limited},
			{Method: http.MethodGet, Path: "/:customer_id/cards", Handler: h.Customer.Cards},
		})
	}

	cashier := engine.Group("/cashier")
	{
		addRoutes(cashier, []route{
			{Method: http.MethodGet, Path: "/orders", Handler: h.Cashier.Orders},
			{Method: http.MethodPost, Path: "/order/:order_id/confirm_total", Handler: h.Cashier.ConfirmTotal},
		})
	}

	pay := engine.Group("/payment")
	{
		addRoutes(pay, []route{
			{Method: http.MethodPost, Path: "/:pay_session_id/decline", Handler: h.Payment.Decline},
			{Method: http.MethodPost, Path: "/:pay_session_id/pay", Handler: h.Payment.Pay},
		})
	}

	lanes := engine.Group("/lane")
	{
		addRoutes(lanes, []route{
			{Method: http.MethodGet, Path: "/:lane_id", Handler: h.Lane.Page},
			{Method: http.MethodGet, Path: "/:lane_id/code", Handler: h.Lane.Code},
		})
	}

	ws := engine.Group("/ws")
	{
		addRoutes(ws, []route{
			{Method: http.MethodGet, Path: "/customer/:customer_id", Handler: h.Relay.CustomerChannel},
			{Method: http.MethodGet, Path: "/order/:order_id/customer", Handler: h.Relay.OrderCustomerChannel},
			{Method: http.MethodGet, Path: "/order/:order_id/cashier", Handler: h.Relay.OrderCashierChannel},
			{Method: http.MethodGet, Path: "/call/:order_id/:role", Handler: h.Relay.CallChannel},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
