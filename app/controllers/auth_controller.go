// Package controllers translates HTTP requests into service and repository
// calls. Handlers are plain http.HandlerFunc values wired by app/routes.
package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/bistro/pkg/auth"
	"github.com/shashiranjanraj/bistro/pkg/bind"
	"github.com/shashiranjanraj/bistro/pkg/logger"
	"github.com/shashiranjanraj/bistro/pkg/response"
)

type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

type tokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"nullable"`
}

// Token issues a signed access token for the posted identity. Tokens expire
// after auth.TokenTTL and carry only the email and display name.
func (c *AuthController) Token(w http.ResponseWriter, r *http.Request) {
	var body tokenRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	token, err := auth.GenerateToken(body.Email, body.Name)
	if err != nil {
		logger.WithCtx(r.Context()).Error("token generation failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not issue token")
		return
	}

	response.OK(w, map[string]string{"token": token})
}
