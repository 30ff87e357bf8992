package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/bistro/app/repositories"
	"github.com/shashiranjanraj/bistro/pkg/logger"
	"github.com/shashiranjanraj/bistro/pkg/response"
)

// PublicController serves the unauthenticated content routes.
type PublicController struct {
	testimonials repositories.TestimonialRepository
	recommends   repositories.RecommendRepository
}

func NewPublicController(t repositories.TestimonialRepository, r repositories.RecommendRepository) *PublicController {
	return &PublicController{testimonials: t, recommends: r}
}

func (c *PublicController) Home(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]string{"message": "bistro api running"})
}

func (c *PublicController) Testimonials(w http.ResponseWriter, r *http.Request) {
	out, err := c.testimonials.All(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("list testimonials failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not load testimonials")
		return
	}
	response.OK(w, out)
}

func (c *PublicController) Recommendations(w http.ResponseWriter, r *http.Request) {
	out, err := c.recommends.All(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("list recommendations failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not load recommendations")
		return
	}
	response.OK(w, out)
}
