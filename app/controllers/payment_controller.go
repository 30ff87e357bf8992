package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/bistro/app/models"
	"github.com/shashiranjanraj/bistro/app/services"
	"github.com/shashiranjanraj/bistro/pkg/bind"
	"github.com/shashiranjanraj/bistro/pkg/logger"
	"github.com/shashiranjanraj/bistro/pkg/response"
)

type PaymentController struct {
	service *services.PaymentService
}

func NewPaymentController(service *services.PaymentService) *PaymentController {
	return &PaymentController{service: service}
}

type intentRequest struct {
	Price float64 `json:"price" validate:"required,numeric,gt=0"`
}

// CreateIntent asks the processor for a pending charge and hands the client
// secret back to the frontend.
func (c *PaymentController) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var body intentRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	secret, err := c.service.CreateIntent(r.Context(), body.Price)
	if err != nil {
		logger.WithCtx(r.Context()).Error("payment intent failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not create payment intent")
		return
	}
	response.OK(w, map[string]string{"clientSecret": secret})
}

type settleRequest struct {
	Email         string   `json:"email" validate:"required,email"`
	Price         float64  `json:"price" validate:"required,numeric,gt=0"`
	TransactionID string   `json:"transactionId" validate:"required"`
	CartIDs       []string `json:"cartIds"`
	MenuItemIDs   []string `json:"menuItemIds"`
	Status        string   `json:"status" validate:"nullable"`
}

// Settle records the payment and clears the paid cart rows. A settlement
// that recorded the payment but could not clear the cart responds 500 with
// the stored payment id so the client can surface the inconsistency.
func (c *PaymentController) Settle(w http.ResponseWriter, r *http.Request) {
	var body settleRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	status := body.Status
	if status == "" {
		status = "pending"
	}

	result, err := c.service.Settle(r.Context(), models.Payment{
		Email:         body.Email,
		Price:         body.Price,
		TransactionID: body.TransactionID,
		Date:          time.Now().UTC(),
		CartIDs:       body.CartIDs,
		MenuItemIDs:   body.MenuItemIDs,
		Status:        status,
	})
	if errors.Is(err, services.ErrPartialSettlement) {
		response.JSON(w, http.StatusInternalServerError, map[string]interface{}{
			"message":       "payment recorded but cart cleanup failed",
			"paymentResult": result.Payment,
		})
		return
	}
	if err != nil {
		logger.WithCtx(r.Context()).Error("settle payment failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not record payment")
		return
	}
	response.OK(w, result)
}

// History serves the payments recorded for the addressed email.
func (c *PaymentController) History(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	payments, err := c.service.History(r.Context(), email)
	if err != nil {
		logger.WithCtx(r.Context()).Error("payment history failed", "email", email, "error", err)
		response.Error(w, http.StatusInternalServerError, "could not load payments")
		return
	}
	response.OK(w, payments)
}
