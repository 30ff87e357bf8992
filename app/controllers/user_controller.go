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

type UserController struct {
	users repositories.UserRepository
}

func NewUserController(users repositories.UserRepository) *UserController {
	return &UserController{users: users}
}

func (c *UserController) List(w http.ResponseWriter, r *http.Request) {
	users, err := c.users.All(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("list users failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not load users")
		return
	}
	response.OK(w, users)
}

// AdminFlag reports whether the addressed user holds the admin role.
// An unknown email reports false rather than an error.
func (c *UserController) AdminFlag(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	isAdmin, err := c.users.IsAdmin(r.Context(), email)
	if err != nil {
		logger.WithCtx(r.Context()).Error("admin lookup failed", "email", email, "error", err)
		response.Error(w, http.StatusInternalServerError, "could not check role")
		return
	}
	response.OK(w, map[string]bool{"admin": isAdmin})
}

type createUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// Create stores a user record unless one with the same email already
// exists, in which case the existing record is left untouched.
func (c *UserController) Create(w http.ResponseWriter, r *http.Request) {
	var body createUserRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	res, existed, err := c.users.CreateIfAbsent(r.Context(), models.User{
		Name:  body.Name,
		Email: body.Email,
		Role:  models.RoleUser,
	})
	if err != nil {
		logger.WithCtx(r.Context()).Error("create user failed", "email", body.Email, "error", err)
		response.Error(w, http.StatusInternalServerError, "could not create user")
		return
	}
	if existed {
		response.OK(w, map[string]interface{}{
			"message":    "user already exists",
			"insertedId": nil,
		})
		return
	}
	response.OK(w, res)
}

func (c *UserController) Promote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	res, err := c.users.PromoteToAdmin(r.Context(), id)
	if err != nil {
		logger.WithCtx(r.Context()).Error("promote user failed", "id", id, "error", err)
		response.Error(w, http.StatusInternalServerError, "could not update user")
		return
	}
	response.OK(w, res)
}

func (c *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	res, err := c.users.Delete(r.Context(), id)
	if err != nil {
		logger.WithCtx(r.Context()).Error("delete user failed", "id", id, "error", err)
		response.Error(w, http.StatusInternalServerError, "could not delete user")
		return
	}
	response.OK(w, res)
}
