package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/authordash/docs"
	adminhandlers "github.com/GlebRadaev/authordash/internal/handlers/admin"
	authhandlers "github.com/GlebRadaev/authordash/internal/handlers/auth"
	bookhandlers "github.com/GlebRadaev/authordash/internal/handlers/books"
	notificationhandlers "github.com/GlebRadaev/authordash/internal/handlers/notifications"
	orderhandlers "github.com/GlebRadaev/authordash/internal/handlers/orders"
	payouthandlers "github.com/GlebRadaev/authordash/internal/handlers/payouts"
	"github.com/GlebRadaev/authordash/internal/service"
	"github.com/GlebRadaev/authordash/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	RequestKYCUpdate(w http.ResponseWriter, r *http.Request)
}

type PayoutHandler interface {
	GetState(w http.ResponseWriter, r *http.Request)
	SwitchTab(w http.ResponseWriter, r *http.Request)
	RequestPayout(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	Dismiss(w http.ResponseWriter, r *http.Request)
}

type BookHandler interface {
	GetBooks(w http.ResponseWriter, r *http.Request)
	GetBook(w http.ResponseWriter, r *http.Request)
	CreateBook(w http.ResponseWriter, r *http.Request)
	UpdateBook(w http.ResponseWriter, r *http.Request)
	DeleteBook(w http.ResponseWriter, r *http.Request)
	GetDashboard(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	GetUsers(w http.ResponseWriter, r *http.Request)
	GetUser(w http.ResponseWriter, r *http.Request)
	UpdateUser(w http.ResponseWriter, r *http.Request)
	DeleteUser(w http.ResponseWriter, r *http.Request)
	ChangeRole(w http.ResponseWriter, r *http.Request)
	GetUserStats(w http.ResponseWriter, r *http.Request)
	GetBooks(w http.ResponseWriter, r *http.Request)
	UpdateBook(w http.ResponseWriter, r *http.Request)
	DeleteBook(w http.ResponseWriter, r *http.Request)
}

type NotificationHandler interface {
	GetNotifications(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	MarkAllRead(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	PlaceOrder(w http.ResponseWriter, r *http.Request)
	VerifyPayment(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler         AuthHandler
	PayoutHandler       PayoutHandler
	BookHandler         BookHandler
	AdminHandler        AdminHandler
	NotificationHandler NotificationHandler
	OrderHandler        OrderHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:         authhandlers.New(s.AuthService),
		PayoutHandler:       payouthandlers.New(s.PayoutSessions),
		BookHandler:         bookhandlers.New(s.BookService),
		AdminHandler:        adminhandlers.New(s.AdminService),
		NotificationHandler: notificationhandlers.New(s.NotificationService),
		OrderHandler:        orderhandlers.New(s.OrderService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.AuthHandler.Register)
		r.Post("/auth/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/auth", func(r chi.Router) {
				r.Post("/logout", h.AuthHandler.Logout)
				r.Get("/profile", h.AuthHandler.GetProfile)
				r.Put("/profile", h.AuthHandler.UpdateProfile)
				r.Post("/kyc", h.AuthHandler.RequestKYCUpdate)
			})
			r.Route("/payouts", func(r chi.Router) {
				r.Get("/state", h.PayoutHandler.GetState)
				r.Post("/tab", h.PayoutHandler.SwitchTab)
				r.Post("/request", h.PayoutHandler.RequestPayout)
				r.Get("/history", h.PayoutHandler.GetHistory)
				r.Post("/dismiss", h.PayoutHandler.Dismiss)
			})
			r.Route("/books", func(r chi.Router) {
				r.Get("/", h.BookHandler.GetBooks)
				r.Post("/", h.BookHandler.CreateBook)
				r.Get("/dashboard", h.BookHandler.GetDashboard)
				r.Get("/{id}", h.BookHandler.GetBook)
				r.Put("/{id}", h.BookHandler.UpdateBook)
				r.Delete("/{id}", h.BookHandler.DeleteBook)
			})
			r.Route("/admin", func(r chi.Router) {
				r.Get("/users", h.AdminHandler.GetUsers)
				r.Get("/users/stats", h.AdminHandler.GetUserStats)
				r.Get("/users/{id}", h.AdminHandler.GetUser)
				r.Put("/users/{id}", h.AdminHandler.UpdateUser)
				r.Delete("/users/{id}", h.AdminHandler.DeleteUser)
				r.Patch("/users/{id}/role", h.AdminHandler.ChangeRole)
				r.Get("/books", h.AdminHandler.GetBooks)
				r.Put("/books/{id}", h.AdminHandler.UpdateBook)
				r.Delete("/books/{id}", h.AdminHandler.DeleteBook)
			})
			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.NotificationHandler.GetNotifications)
				r.Patch("/read", h.NotificationHandler.MarkAllRead)
				r.Patch("/{id}/read", h.NotificationHandler.MarkRead)
			})
			r.Route("/orders", func(r chi.Router) {
				r.Post("/", h.OrderHandler.PlaceOrder)
				r.Post("/verify-payment", h.OrderHandler.VerifyPayment)
			})
		})
	})

	return r
}
