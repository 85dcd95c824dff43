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

type orderHandler struct {
	orderService *service.OrderService
	logger       zerolog.Logger
	config       resmap.AppConfig
}

func newOrderHandler(publisher *events.Publisher) *orderHandler {
	return &orderHandler{
		orderService: service.NewOrderService(publisher),
		logger:       resmap.Logger,
		config:       resmap.GetConfig(),
	}
}

func OrderHandler(router *graceful.Graceful, publisher *events.Publisher) {
	h := newOrderHandler(publisher)

	routes := router.Group("/api/v1/orders")
	routes.Use(middleware.AuthMiddleware(h.config))
	{
		routes.GET("", h.getAllForCustomer)
		routes.GET("/:id", h.getByID)
		routes.POST("", h.create)
		routes.PUT("/:id", h.update)
		routes.DELETE("/:id", h.delete)
	}
}

// getAllForCustomer lists the orders of the customer named by the customerId
// query parameter.
func (slf *orderHandler) getAllForCustomer(c *gin.Context) {
	customerID, err := strconv.ParseUint(c.Query("customerId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: "Query parameter 'customerId' is required"})
		return
	}

	orders, err := slf.orderService.GetAllForCustomer(uint(customerID))
	if err != nil {
		slf.logger.Error().Err(err).Uint64("customerId", customerID).Msg("Failed to list orders")
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to retrieve orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

func (slf *orderHandler) getByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: "Invalid ID"})
		return
	}

	order, err := slf.orderService.GetByID(uint(id))
	if err != nil {
		slf.logger.Error().Err(err).Uint64("id", id).Msg("Failed to get order")
		c.JSON(statusForError(err), response.APIError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, order)
}

func (slf *orderHandler) create(c *gin.Context) {
	var res resource.Order
	if err := pkg.ParseAndValidate(c, &res); err != nil {
		slf.logger.Error().Err(err).Msg("Failed to parse order resource")
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	created, err := slf.orderService.Create(c.Request.Context(), res)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Failed to create order")
		c.JSON(statusForError(err), response.APIError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (slf *orderHandler) update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: "Invalid ID"})
		return
	}

	var res resource.Order
	if err := pkg.ParseAndValidate(c, &res); err != nil {
		slf.logger.Error().Err(err).Msg("Failed to parse order resource")
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	updated, err := slf.orderService.Update(c.Request.Context(), uint(id), res)
	if err != nil {
		slf.logger.Error().Err(err).Uint64("id", id).Msg("Failed to update order")
		c.JSON(statusForError(err), response.APIError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (slf *orderHandler) delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: "Invalid ID"})
		return
	}

	if err := slf.orderService.Delete(uint(id)); err != nil {
		slf.logger.Error().Err(err).Uint64("id", id).Msg("Failed to delete order")
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to delete order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "deleted": true})
}
