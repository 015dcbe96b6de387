package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

type CrudService[T, C, U any] interface {
	Create(ctx context.Context, req C) (T, error)
	Get(ctx context.Context, uid string) (T, error)
	List(ctx context.Context) ([]T, error)
	Update(ctx context.Context, uid string, req U) (T, error)
	Delete(ctx context.Context, uid string) error
}

// RegisterCrud mounts the five standard verbs for a registry entity.
func RegisterCrud[T, C, U any](g *echo.Group, base string, svc CrudService[T, C, U]) {
	h := &crudHandler[T, C, U]{svc: svc}
	g.GET(base, h.list)
	g.POST(base, h.create)
	g.GET(base+"/:uid", h.get)
	g.PUT(base+"/:uid", h.update)
	g.DELETE(base+"/:uid", h.remove)
}

type crudHandler[T, C, U any] struct {
	svc CrudService[T, C, U]
}

func (h *crudHandler[T, C, U]) create(c echo.Context) error {
	var req C
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	item, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *crudHandler[T, C, U]) get(c echo.Context) error {
	item, err := h.svc.Get(c.Request().Context(), c.Param("uid"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *crudHandler[T, C, U]) list(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *crudHandler[T, C, U]) update(c echo.Context) error {
	var req U
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	item, err := h.svc.Update(c.Request().Context(), c.Param("uid"), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *crudHandler[T, C, U]) remove(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("uid")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": true})
}
