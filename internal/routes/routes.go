package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/IftekherAziz/MaxCoach-Sever-Side/internal/auth"
	"github.com/IftekherAziz/MaxCoach-Sever-Side/internal/handlers"
	"github.com/IftekherAziz/MaxCoach-Sever-Side/internal/middleware"
	"github.com/IftekherAziz/MaxCoach-Sever-Side/internal/models"
	"github.com/IftekherAziz/MaxCoach-Sever-Side/internal/payments"
	"github.com/IftekherAziz/MaxCoach-Sever-Side/internal/store"
)

// SetupRouter wires every endpoint with its gate chain. Paths, verbs, and
// status codes are a stable public contract.
func SetupRouter(st *store.Store, tokens *auth.TokenService, provider payments.Provider) *mux.Router {
	router := mux.NewRouter()

	userHandler := handlers.NewUserHandler(st.Users, tokens)
	classHandler := handlers.NewClassHandler(st.Classes)
	cartHandler := handlers.NewCartHandler(st.Carts)
	paymentHandler := handlers.NewPaymentHandler(st.Payments, st.Carts, st.Classes, provider)
	contactHandler := handlers.NewContactHandler(st.Contacts)

	requireAuth := middleware.RequireAuth(tokens)
	requireAdmin := middleware.RequireRole(st.Users, models.RoleAdmin)
	requireInstructor := middleware.RequireRole(st.Users, models.RoleInstructor)

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("MaxCoach is running"))
	}).Methods("GET")

	router.HandleFunc("/jwt", userHandler.CreateToken).Methods("POST")

	router.HandleFunc("/users", middleware.Chain(userHandler.GetUsers, requireAuth, requireAdmin)).Methods("GET")
	router.HandleFunc("/users", userHandler.CreateUser).Methods("POST")
	router.HandleFunc("/users/{email}", userHandler.GetUserByEmail).Methods("GET")
	router.HandleFunc("/users/admin/{id}", middleware.Chain(userHandler.MakeAdmin, requireAuth, requireAdmin)).Methods("PATCH")
	router.HandleFunc("/users/instructor/{id}", middleware.Chain(userHandler.MakeInstructor, requireAuth, requireAdmin)).Methods("PATCH")
	router.HandleFunc("/instructors", userHandler.GetInstructors).Methods("GET")

	router.HandleFunc("/viewClasses", classHandler.GetApproved).Methods("GET")
	// Literal path before the {email} pattern so mux matches it first.
	router.HandleFunc("/classes/popular", classHandler.GetPopular).Methods("GET")
	router.HandleFunc("/classes", middleware.Chain(classHandler.GetAll, requireAuth, requireAdmin)).Methods("GET")
	router.HandleFunc("/classes", middleware.Chain(classHandler.Create, requireAuth, requireInstructor)).Methods("POST")
	router.HandleFunc("/classes/{email}", middleware.Chain(classHandler.GetByInstructor, requireAuth, requireInstructor)).Methods("GET")
	router.HandleFunc("/classes/approve/{id}", middleware.Chain(classHandler.Approve, requireAuth, requireAdmin)).Methods("PATCH")
	router.HandleFunc("/classes/deny/{id}", middleware.Chain(classHandler.Deny, requireAuth, requireAdmin)).Methods("PATCH")
	router.HandleFunc("/classes/feedback/{id}", middleware.Chain(classHandler.SetFeedback, requireAuth, requireAdmin)).Methods("PATCH")

	router.HandleFunc("/carts", middleware.Chain(cartHandler.GetCart, requireAuth)).Methods("GET")
	router.HandleFunc("/carts", middleware.Chain(cartHandler.AddItem, requireAuth)).Methods("POST")
	router.HandleFunc("/carts/{id}", middleware.Chain(cartHandler.GetItem, requireAuth)).Methods("GET")
	router.HandleFunc("/carts/{id}", middleware.Chain(cartHandler.RemoveItem, requireAuth)).Methods("DELETE")

	router.HandleFunc("/create-payment-intent", middleware.Chain(paymentHandler.CreateIntent, requireAuth)).Methods("POST")
	router.HandleFunc("/payment/{email}", middleware.Chain(paymentHandler.GetByEmail, requireAuth)).Methods("GET")
	router.HandleFunc("/payments", middleware.Chain(paymentHandler.Settle, requireAuth)).Methods("POST")

	router.HandleFunc("/contact", contactHandler.Create).Methods("POST")

	return router
}
