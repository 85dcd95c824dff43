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
	"resmap/internal/api/models"
	"resmap/internal/api/service"
	"resmap/internal/events"
	"resmap/pkg"
)

type productHandler struct {
	productService *service.ProductService
	logger         zerolog.Logger
	config         resmap.AppConfig
}

func newProductHandler(publisher *events.Publisher) *productHandler {
	return &productHandler{
		productService: service.NewProductService(publisher),
		logger:         resmap.Logger,
		config:         resmap.GetConfig(),
	}
}

func ProductHandler(router *graceful.Graceful, publisher *events.Publisher) {
	h := newProductHandler(publisher)

	routes := router.Group("/api/v1/products")
	routes.Use(middleware.AuthMiddleware(h.config))
	{
		routes.GET("", h.getAll)
		routes.GET("/:id", h.getByID)
	}

	// Catalog writes are an admin concern.
	admin := router.Group("/api/v1/products")
	admin.Use(middleware.AuthMiddleware(h.config))
	admin.Use(middleware.RequireRole(models.RoleAdmin))
	{
		admin.POST("", h.create)
		admin.PUT("/:id", h.update)
		admin.DELETE("/:id", h.delete)
	}
}

func (slf *productHandler) getAll(c *gin.Context) {
	products, err := slf.productService.GetAll()
	if err != nil {
		slf.logger.Error().Err(err).Msg("Failed to list products")
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to retrieve products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

func (slf *productHandler) getByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: "Invalid ID"})
		return
	}

	product, err := slf.productService.GetByID(uint(id))
	if err != nil {
		slf.logger.Error().Err(err).Uint64("id", id).Msg("Failed to get product")
		c.JSON(statusForError(err), response.APIError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, product)
}

func (slf *productHandler) create(c *gin.Context) {
	var res resource.Product
	if err := pkg.ParseAndValidate(c, &res); err != nil {
		slf.logger.Error().Err(err).Msg("Failed to parse product resource")
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	created, err := slf.productService.Create(c.Request.Context(), res)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Failed to create product")
		c.JSON(statusForError(err), response.APIError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (slf *productHandler) update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: "Invalid ID"})
		return
	}

	var res resource.Product
	if err := pkg.ParseAndValidate(c, &res); err != nil {
		slf.logger.Error().Err(err).Msg("Failed to parse product resource")
		c.JSON(http.StatusBadRequest, response.APIError{Message: err.Error()})
		return
	}

	updated, err := slf.productService.Update(c.Request.Context(), uint(id), res)
	if err != nil {
		slf.logger.Error().Err(err).Uint64("id", id).Msg("Failed to update product")
		c.JSON(statusForError(err), response.APIError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (slf *productHandler) delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.APIError{Message: "Invalid ID"})
		return
	}

	if err := slf.productService.Delete(uint(id)); err != nil {
		slf.logger.Error().Err(err).Uint64("id", id).Msg("Failed to delete product")
		c.JSON(http.StatusInternalServerError, response.APIError{Message: "Failed to delete product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "deleted": true})
}
