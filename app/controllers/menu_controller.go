package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/bistro/app/models"
	"github.com/shashiranjanraj/bistro/app/repositories"
	"github.com/shashiranjanraj/bistro/pkg/bind"
	"github.com/shashiranjanraj/bistro/pkg/cache"
	"github.com/shashiranjanraj/bistro/pkg/logger"
	"github.com/shashiranjanraj/bistro/pkg/response"
)

const (
	menuCacheKey = "menu:all"
	menuCacheTTL = 5 * time.Minute
)

type MenuController struct {
	menu repositories.MenuRepository
}

func NewMenuController(menu repositories.MenuRepository) *MenuController {
	return &MenuController{menu: menu}
}

// List serves the full menu, read through the cache. Writes invalidate
// the cached copy so stale reads last at most one TTL.
func (c *MenuController) List(w http.ResponseWriter, r *http.Request) {
	var items []models.MenuItem
	if cache.Get(r.Context(), menuCacheKey, &items) {
		response.OK(w, items)
		return
	}

	items, err := c.menu.All(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("list menu failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not load menu")
		return
	}

	if err := cache.Set(r.Context(), menuCacheKey, items, menuCacheTTL); err != nil {
		logger.WithCtx(r.Context()).Warn("menu cache write failed", "error", err)
	}
	response.OK(w, items)
}

func (c *MenuController) Show(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	item, err := c.menu.FindByID(r.Context(), id)
	if err == repositories.ErrNotFound {
		response.Error(w, http.StatusNotFound, "menu item not found")
		return
	}
	if err != nil {
		logger.WithCtx(r.Context()).Error("load menu item failed", "id", id, "error", err)
		response.Error(w, http.StatusInternalServerError, "could not load menu item")
		return
	}
	response.OK(w, item)
}

type menuItemRequest struct {
	Name     string  `json:"name" validate:"required"`
	Recipe   string  `json:"recipe" validate:"nullable"`
	Image    string  `json:"image" validate:"nullable"`
	Category string  `json:"category" validate:"required"`
	Price    float64 `json:"price" validate:"required,numeric,gte=0"`
}

func (c *MenuController) Create(w http.ResponseWriter, r *http.Request) {
	var body menuItemRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	res, err := c.menu.Create(r.Context(), models.MenuItem{
		Name:     body.Name,
		Recipe:   body.Recipe,
		Image:    body.Image,
		Category: body.Category,
		Price:    body.Price,
	})
	if err != nil {
		logger.WithCtx(r.Context()).Error("create menu item failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not create menu item")
		return
	}

	c.invalidate(r)
	response.JSON(w, http.StatusCreated, res)
}

func (c *MenuController) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body menuItemRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	res, err := c.menu.Update(r.Context(), id, models.MenuItem{
		Name:     body.Name,
		Recipe:   body.Recipe,
		Image:    body.Image,
		Category: body.Category,
		Price:    body.Price,
	})
	if err != nil {
		logger.WithCtx(r.Context()).Error("update menu item failed", "id", id, "error", err)
		response.Error(w, http.StatusInternalServerError, "could not update menu item")
		return
	}

	c.invalidate(r)
	response.OK(w, res)
}

func (c *MenuController) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	res, err := c.menu.Delete(r.Context(), id)
	if err != nil {
		logger.WithCtx(r.Context()).Error("delete menu item failed", "id", id, "error", err)
		response.Error(w, http.StatusInternalServerError, "could not delete menu item")
		return
	}

	c.invalidate(r)
	response.OK(w, res)
}

func (c *MenuController) invalidate(r *http.Request) {
	if err := cache.Del(r.Context(), menuCacheKey); err != nil {
		logger.WithCtx(r.Context()).Warn("menu cache invalidation failed", "error", err)
	}
}
