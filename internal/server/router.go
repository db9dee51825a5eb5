// Package server assembles the HTTP router: CORS policy, middleware, and the
// full route table.
package server

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"sharesurplus-backend/internal/handlers"
	"sharesurplus-backend/internal/middleware"
	"sharesurplus-backend/internal/repository"
	"sharesurplus-backend/internal/token"
)

// Deps carries everything the router needs, so tests can swap in fakes.
type Deps struct {
	Listings repository.ListingRepository
	Requests repository.RequestRepository
	Users    repository.UserRepository

	Tokens *token.Service
	Logger *slog.Logger

	CORSOrigins []string
	Production  bool
}

// NewRouter builds the gin engine with the complete route table.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(d.Logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     d.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	authHandler := handlers.NewAuthHandler(d.Tokens, d.Logger, d.Production)
	foodHandler := handlers.NewFoodHandler(d.Listings, d.Logger)
	requestHandler := handlers.NewRequestHandler(d.Requests, d.Logger)
	userHandler := handlers.NewUserHandler(d.Users, d.Logger)

	requireUser := middleware.RequireUser(d.Tokens)

	r.GET("/", handlers.Health)

	// Session
	r.POST("/jwt", authHandler.IssueSession)
	r.POST("/logout", authHandler.ClearSession)

	// Users
	r.POST("/users", userHandler.Register)
	r.GET("/users", userHandler.List)

	// Food listings
	r.POST("/foods", foodHandler.Create)
	r.GET("/foods", foodHandler.List)
	r.GET("/myfoods", requireUser, foodHandler.Mine)
	r.GET("/foods/:id", foodHandler.Get)
	r.PATCH("/foodupdate/:id", foodHandler.Update)
	r.PATCH("/foodstatus/:id", foodHandler.SetStatus)
	r.PATCH("/foodrequesttrack/:id", foodHandler.SetRequestTrack)
	r.DELETE("/foods/:id", foodHandler.Delete)

	// Food requests
	r.POST("/rqFoods", requestHandler.Create)
	r.GET("/rqFoods", requireUser, requestHandler.Mine)
	r.GET("/rqFoods/:id", requestHandler.GetByListing)
	r.PATCH("/reqfoodstatus/:id", requestHandler.SetStatus)
	r.DELETE("/rqFoods/:id", requestHandler.Delete)

	return r
}
