package properties

import (
	"errors"
	"net/http"
	"strconv"

	"primespace/internal/api"
	"primespace/internal/cache"
	"primespace/internal/database"
	"primespace/internal/middleware"
	"primespace/internal/model"
	"primespace/internal/service"
	"primespace/internal/store"
	"primespace/internal/worker"

	"github.com/labstack/echo/v4"
)

var (
	listProperties  = store.ListProperties
	getPropertyByID = store.GetPropertyByID
	createProperty  = store.CreateProperty
	updateProperty  = store.UpdateProperty
	deleteProperty  = store.DeleteProperty
)

// Defaults applied when a create request omits the optional fields.
const (
	defaultBedrooms  = 2
	defaultBathrooms = 1
)

// ListPropertiesHandler serves the public catalog with optional filters.
// @Summary     List properties
// @Description List all properties, newest first, optionally filtered
// @Tags        properties
// @Produce     json
// @Param       type     query string false "Sale or Rent"
// @Param       status   query string false "Available, Sold or Rented"
// @Param       location query string false "Case-insensitive location substring"
// @Success     200 {array}  model.Property
// @Failure     500 {object} api.ErrorResponse
// @Router      /properties [get]
func ListPropertiesHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		filter := store.PropertyFilter{
			Type:     c.QueryParam("type"),
			Status:   c.QueryParam("status"),
			Location: c.QueryParam("location"),
		}
		ctx := c.Request().Context()

		if body, err := cachedList(ctx, rdb, filter); err == nil {
			return c.JSONBlob(http.StatusOK, body)
		}

		properties, err := listProperties(ctx, db, filter)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Server error", Error: err.Error()})
		}
		storeList(ctx, rdb, filter, properties)
		return c.JSON(http.StatusOK, properties)
	}
}

// GetPropertyHandler serves a single listing.
// @Summary     Get a property
// @Description Fetch one property by id
// @Tags        properties
// @Produce     json
// @Param       id path int true "Property ID"
// @Success     200 {object} model.Property
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /properties/{id} [get]
func GetPropertyHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Property not found"})
		}
		property, err := getPropertyByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Property not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Server error", Error: err.Error()})
		}
		return c.JSON(http.StatusOK, property)
	}
}

// CreatePropertyHandler creates a listing on behalf of the authenticated
// admin.
// @Summary     Create a property
// @Description Create a new listing; requires the admin role
// @Tags        properties
// @Accept      json
// @Produce     json
// @Param       property body api.CreatePropertyRequest true "New listing"
// @Success     201 {object} model.Property
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /properties [post]
func CreatePropertyHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreatePropertyRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		property := model.Property{
			Title:       req.Title,
			Location:    req.Location,
			Price:       *req.Price,
			Description: req.Description,
			Type:        req.Type,
			Status:      model.StatusAvailable,
			Bedrooms:    defaultBedrooms,
			Bathrooms:   defaultBathrooms,
			Area:        *req.Area,
			Image:       model.DefaultImage,
			CreatedBy:   claims.UserID,
		}
		if req.Status != "" {
			property.Status = req.Status
		}
		if req.Bedrooms != nil {
			property.Bedrooms = *req.Bedrooms
		}
		if req.Bathrooms != nil {
			property.Bathrooms = *req.Bathrooms
		}
		if req.Image != "" {
			property.Image = req.Image
		}

		created, err := createProperty(c.Request().Context(), db, &property)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Server error", Error: err.Error()})
		}
		bumpListEpoch(rdb, wp)
		return c.JSON(http.StatusCreated, created)
	}
}

// UpdatePropertyHandler merges the provided fields into an existing
// listing. id, created_by and created_at never change.
// @Summary     Update a property
// @Description Merge fields into an existing listing; requires the admin role
// @Tags        properties
// @Accept      json
// @Produce     json
// @Param       id       path int                       true "Property ID"
// @Param       property body api.UpdatePropertyRequest true "Fields to change"
// @Success     200 {object} model.Property
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /properties/{id} [put]
func UpdatePropertyHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Property not found"})
		}

		var req api.UpdatePropertyRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		property, err := getPropertyByID(ctx, db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Property not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Server error", Error: err.Error()})
		}

		if req.Title != nil {
			property.Title = *req.Title
		}
		if req.Location != nil {
			property.Location = *req.Location
		}
		if req.Price != nil {
			property.Price = *req.Price
		}
		if req.Description != nil {
			property.Description = *req.Description
		}
		if req.Type != nil {
			property.Type = *req.Type
		}
		if req.Status != nil {
			property.Status = *req.Status
		}
		if req.Bedrooms != nil {
			property.Bedrooms = *req.Bedrooms
		}
		if req.Bathrooms != nil {
			property.Bathrooms = *req.Bathrooms
		}
		if req.Area != nil {
			property.Area = *req.Area
		}
		if req.Image != nil {
			property.Image = *req.Image
		}

		if err := updateProperty(ctx, db, property); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Property not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Server error", Error: err.Error()})
		}
		bumpListEpoch(rdb, wp)
		return c.JSON(http.StatusOK, property)
	}
}

// DeletePropertyHandler permanently removes a listing.
// @Summary     Delete a property
// @Description Permanently remove a listing; requires the admin role
// @Tags        properties
// @Produce     json
// @Param       id path int true "Property ID"
// @Success     200 {object} api.MessageResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /properties/{id} [delete]
func DeletePropertyHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Property not found"})
		}
		if err := deleteProperty(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Property not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Server error", Error: err.Error()})
		}
		bumpListEpoch(rdb, wp)
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Property removed successfully"})
	}
}
