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

type customerHandler struct {
	customerService *service.CustomerService
	logger          zerolog.Logger
	config          resmap.AppConfig
}

func newCustomerHandler(publisher *events.Publisher) *customerHandler {
	return &customerHandler{
		customerService: service.NewCustomerService(publisher),
		logger:          resmap.Logger,
		config:          resmap.GetConfig(),
	}
}

func CustomerHandler(router *graceful.Graceful, publisher *events.Publisher) {
	h := newCustomerHandler(publisher)

	routes := router.Group("/api/v1/customers")
	routes.Use(middleware.AuthMiddleware(h.config))
	{
		routes.GET("", h.getAll)
		routes.GET("/:id", h.getByID)
		routes.POST("", h.create)
		routes.PUT("/:id", h.update)
		routes.DELETE("/:id", h.delete)
	}
}

func (slf *customerHandler) getAll(c *gin.Context) {
	customers, err := slf.customerService.GetAll()
	if err != nil {
		slf.logger.Error().Err(err).Msg("Failed to list customers")
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to retrieve customers"})
		return
	}

	c.JSON(http.StatusOK, customers)
}

func (slf *customerHandler) getByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: "Invalid ID"})
		return
	}

	customer, err := slf.customerService.GetByID(uint(id))
	if err != nil {
		slf.logger.Error().Err(err).Uint64("id", id).Msg("Failed to get customer")
		c.JSON(statusForError(err), response.APIError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, customer)
}

func (slf *customerHandler) create(c *gin.Context) {
	var res resource.Customer
	if err := pkg.ParseAndValidate(c, &res); err != nil {
		slf.logger.Error().Err(err).Msg("Failed to parse customer resource")
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	created, err := slf.customerService.Create(c.Request.Context(), res)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Failed to create customer")
		c.JSON(statusForError(err), response.APIError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (slf *customerHandler) update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: "Invalid ID"})
		return
	}

	var res resource.Customer
	if err := pkg.ParseAndValidate(c, &res); err != nil {
		slf.logger.Error().Err(err).Msg("Failed to parse customer resource")
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	updated, err := slf.customerService.Update(c.Request.Context(), uint(id), res)
	if err != nil {
		slf.logger.Error().Err(err).Uint64("id", id).Msg("Failed to update customer")
		c.JSON(statusForError(err), response.APIError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (slf *customerHandler) delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: "Invalid ID"})
		return
	}

	if err := slf.customerService.Delete(uint(id)); err != nil {
		slf.logger.Error().Err(err).Uint64("id", id).Msg("Failed to delete customer")
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to delete customer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "deleted": true})
}
