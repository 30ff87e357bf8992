// Package routes binds controllers to URL paths. Route names follow the
// controller.action convention and are listed by the routes command.
package routes

import (
	"github.com/shashiranjanraj/bistro/app/controllers"
	"github.com/shashiranjanraj/bistro/app/repositories"
	"github.com/shashiranjanraj/bistro/app/services"
	"github.com/shashiranjanraj/bistro/pkg/metrics"
	"github.com/shashiranjanraj/bistro/pkg/middleware"
	"github.com/shashiranjanraj/bistro/pkg/payments"
	"github.com/shashiranjanraj/bistro/pkg/router"
)

// Deps carries everything the route table needs. Repositories are
// interfaces so tests can mount the full table over in-memory stores.
type Deps struct {
	Users        repositories.UserRepository
	Menu         repositories.MenuRepository
	Carts        repositories.CartRepository
	Payments     repositories.PaymentRepository
	Testimonials repositories.TestimonialRepository
	Recommends   repositories.RecommendRepository
	Intents      payments.IntentClient
}

func RegisterAPI(r *router.Router, d Deps) {
	paymentService := services.NewPaymentService(d.Payments, d.Carts, d.Intents)
	statsService := services.NewStatsService(d.Users, d.Menu, d.Payments)

	authController := controllers.NewAuthController()
	userController := controllers.NewUserController(d.Users)
	menuController := controllers.NewMenuController(d.Menu)
	cartController := controllers.NewCartController(d.Carts)
	paymentController := controllers.NewPaymentController(paymentService)
	statsController := controllers.NewStatsController(statsService)
	publicController := controllers.NewPublicController(d.Testimonials, d.Recommends)

	admin := middleware.VerifyAdmin(d.Users)

	r.Get("/", "home", publicController.Home)
	r.Post("/jwt", "auth.token", authController.Token)

	r.Get("/menu", "menu.list", menuController.List)
	r.Get("/menu/{id}", "menu.show", menuController.Show)
	r.Post("/menu", "menu.create", menuController.Create, middleware.VerifyToken, admin)
	r.Patch("/menu/{id}", "menu.update", menuController.Update)
	r.Delete("/menu/{id}", "menu.delete", menuController.Delete, middleware.VerifyToken, admin)

	r.Get("/testimonials", "testimonial.list", publicController.Testimonials)
	r.Get("/chefsRecommend", "recommend.list", publicController.Recommendations)

	r.Get("/carts", "cart.list", cartController.ListByEmail)
	r.Post("/carts", "cart.create", cartController.Create)
	r.Delete("/carts/{id}", "cart.delete", cartController.Delete)

	r.Get("/users", "user.list", userController.List, middleware.VerifyToken, admin)
	r.Get("/users/admin/{email}", "user.adminFlag", userController.AdminFlag, middleware.VerifyToken, middleware.VerifySelf("email"))
	r.Post("/users", "user.create", userController.Create)
	r.Patch("/users/admin/{id}", "user.promote", userController.Promote, middleware.VerifyToken, admin)
	r.Delete("/users/{id}", "user.delete", userController.Delete, middleware.VerifyToken, admin)

	r.Post("/create-payment-intent", "payment.intent", paymentController.CreateIntent)
	r.Post("/payment", "payment.settle", paymentController.Settle)
	r.Get("/payment/{email}", "payment.history", paymentController.History, middleware.VerifyToken, middleware.VerifySelf("email"))

	r.Get("/admin-stats", "stats.admin", statsController.AdminStats, middleware.VerifyToken, admin)
	r.Get("/order-stats", "stats.orders", statsController.OrderStats, middleware.VerifyToken, admin)

	r.HandleFunc("/metrics", metrics.Handler().ServeHTTP)
}
