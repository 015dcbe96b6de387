package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rmagtibay/barangay-service/internal/model"
)

// Fields only borrow/return (or the server itself) may touch; a PUT naming
// one of them is rejected outright rather than silently ignored.
var guardedPropertyFields = []string{"propertyUid", "availableQuantity", "borrowRecords", "dateAdded", "dateUpdated"}

func (h *Handler) CreateProperty(c echo.Context) error {
	var req model.CreatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	p, err := h.propertySvc.Create(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) GetProperty(c echo.Context) error {
	propertyUid := c.Param("propertyUid")
	p, err := h.propertySvc.Get(c.Request().Context(), propertyUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) ListProperties(c echo.Context) error {
	props, err := h.propertySvc.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, props)
}

func (h *Handler) UpdateProperty(c echo.Context) error {
	propertyUid := c.Param("propertyUid")

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	for _, field := range guardedPropertyFields {
		if _, ok := raw[field]; ok {
			return echo.NewHTTPError(http.StatusBadRequest, field+" cannot be updated directly")
		}
	}

	var req model.UpdatePropertyRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	p, err := h.propertySvc.Update(c.Request().Context(), propertyUid, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) DeleteProperty(c echo.Context) error {
	propertyUid := c.Param("propertyUid")
	if err := h.propertySvc.Delete(c.Request().Context(), propertyUid); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": true})
}

func (h *Handler) Borrow(c echo.Context) error {
	propertyUid := c.Param("propertyUid")

	var req model.BorrowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	p, err := h.propertySvc.Borrow(c.Request().Context(), propertyUid, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) Return(c echo.Context) error {
	propertyUid := c.Param("propertyUid")
	borrowUid := c.Param("borrowUid")

	p, err := h.propertySvc.Return(c.Request().Context(), propertyUid, borrowUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, p)
}
