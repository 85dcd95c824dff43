package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"resmap"
	"resmap/internal/api/handler/middleware"
	"resmap/internal/api/handler/resource"
	"resmap/internal/api/handler/response"
	"resmap/internal/api/service"
	"resmap/internal/events"
	"resmap/pkg"
)

type paymentHandler struct {
	paymentService *service.PaymentService
	logger         zerolog.Logger
	config         resmap.AppConfig
}

func newPaymentHandler(publisher *events.Publisher) *paymentHandler {
	return &paymentHandler{
		paymentService: service.NewPaymentService(publisher),
		logger:         resmap.Logger,
		config:         resmap.GetConfig(),
	}
}

func PaymentHandler(router *graceful.Graceful, publisher *events.Publisher) {
	h := newPaymentHandler(publisher)

	routes := router.Group("/api/v1/payments")
	routes.Use(middleware.AuthMiddleware(h.config))
	{
		routes.GET("", h.getAllForOrder)
		routes.GET("/:id", h.getByID)
		routes.POST("", h.record)
	}
}

// paymentMethod reads the settlement variant from the method query
// parameter; the default is card.
func paymentMethod(c *gin.Context) (string, bool) {
	method := c.DefaultQuery("method", "card")
	if method != "card" && method != "bank" {
		c.JSON(http.StatusBadRequest, response.APIError{Message: "Query parameter 'method' must be 'card' or 'bank'"})
		return "", false
	}
	return method, true
}

func (slf *paymentHandler) getAllForOrder(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Query("orderId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: "Query parameter 'orderId' is required"})
		return
	}

	payments, err := slf.paymentService.GetAllForOrder(uint(orderID))
	if err != nil {
		slf.logger.Error().Err(err).Uint64("orderId", orderID).Msg("Failed to list payments")
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to retrieve payments"})
		return
	}

	c.JSON(http.StatusOK, payments)
}

func (slf *paymentHandler) getByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: "Invalid ID"})
		return
	}
	method, ok := paymentMethod(c)
	if !ok {
		return
	}

	payment, err := slf.paymentService.GetByID(uint(id), method)
	if err != nil {
		slf.logger.Error().Err(err).Uint64("id", id).Msg("Failed to get payment")
		c.JSON(statusForError(err), response.APIError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, payment)
}

func (slf *paymentHandler) record(c *gin.Context) {
	method, ok := paymentMethod(c)
	if !ok {
		return
	}

	var res resource.Payment
	if err := pkg.ParseAndValidate(c, &res); err != nil {
		slf.logger.Error().Err(err).Msg("Failed to parse payment resource")
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	created, err := slf.paymentService.Record(c.Request.Context(), res, method)
	if err != nil {
		slf.logger.Error().Err(err).Str("method", method).Msg("Failed to record payment")
		c.JSON(statusForError(err), response.APIError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}
