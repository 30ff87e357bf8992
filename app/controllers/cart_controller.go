package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/bistro/app/models"
	"github.com/shashiranjanraj/bistro/app/repositories"
	"github.com/shashiranjanraj/bistro/pkg/bind"
	"github.com/shashiranjanraj/bistro/pkg/logger"
	"github.com/shashiranjanraj/bistro/pkg/response"
)

type CartController struct {
	carts repositories.CartRepository
}

func NewCartController(carts repositories.CartRepository) *CartController {
	return &CartController{carts: carts}
}

// ListByEmail serves the cart rows for the email given in the query string.
func (c *CartController) ListByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	items, err := c.carts.FindByEmail(r.Context(), email)
	if err != nil {
		logger.WithCtx(r.Context()).Error("list cart failed", "email", email, "error", err)
		response.Error(w, http.StatusInternalServerError, "could not load cart")
		return
	}
	response.OK(w, items)
}

type cartItemRequest struct {
	MenuItemID string  `json:"menuItemId" validate:"required"`
	Email      string  `json:"email" validate:"required,email"`
	Name       string  `json:"name" validate:"required"`
	Image      string  `json:"image" validate:"nullable"`
	Price      float64 `json:"price" validate:"required,numeric,gte=0"`
}

func (c *CartController) Create(w http.ResponseWriter, r *http.Request) {
	var body cartItemRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	res, err := c.carts.Create(r.Context(), models.CartItem{
		MenuItemID: body.MenuItemID,
		Email:      body.Email,
		Name:       body.Name,
		Image:      body.Image,
		Price:      body.Price,
	})
	if err != nil {
		logger.WithCtx(r.Context()).Error("add cart item failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not add cart item")
		return
	}
	response.OK(w, res)
}

func (c *CartController) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	res, err := c.carts.Delete(r.Context(), id)
	if err != nil {
		logger.WithCtx(r.Context()).Error("delete cart item failed", "id", id, "error", err)
		response.Error(w, http.StatusInternalServerError, "could not delete cart item")
		return
	}
	response.OK(w, res)
}
