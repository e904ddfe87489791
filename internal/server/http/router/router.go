package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/ratedir/ratedir/internal/domain/model"
	"github.com/ratedir/ratedir/internal/server/http/handlers"
	"github.com/ratedir/ratedir/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware. Role checks
// live here so every route's allowed set is visible in one place.
func Setup(facade handlers.DirectoryFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	storeHandler := handlers.NewStoreHandler(facade)
	ratingHandler := handlers.NewRatingHandler(facade)
	userHandler := handlers.NewUserHandler(facade, facade)
	dashboardHandler := handlers.NewDashboardHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	api := engine.Group("/api")
	api.GET("/health", healthHandler.Check)

	auth := api.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)

	stores := api.Group("/stores")
	stores.GET("", middleware.OptionalAuth(facade), storeHandler.List)
	stores.GET("/:id", storeHandler.Get)

	ownerStores := stores.Group("")
	ownerStores.Use(middleware.AuthRequired(facade), middleware.RequireRoles(model.RoleOwner))
	ownerStores.POST("", storeHandler.Create)
	ownerStores.PUT("/:id", storeHandler.Update)
	ownerStores.DELETE("/:id", storeHandler.Delete)

	rating := api.Group("/rating")
	rating.Use(middleware.AuthRequired(facade))
	rating.POST("", middleware.RequireRoles(model.RoleUser), ratingHandler.Submit)
	rating.GET("/user", middleware.RequireRoles(model.RoleUser), ratingHandler.ListOwn)
	rating.GET("/store/:storeId", middleware.RequireRoles(model.RoleOwner, model.RoleAdmin), ratingHandler.ListByStore)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(facade), middleware.RequireRoles(model.RoleAdmin))
	admin.GET("/dashboard", dashboardHandler.Admin)

	owner := api.Group("/owner")
	owner.Use(middleware.AuthRequired(facade), middleware.RequireRoles(model.RoleOwner))
	owner.GET("/dashboard", dashboardHandler.Owner)

	user := api.Group("/user")
	user.Use(middleware.AuthRequired(facade))
	user.GET("/profile", userHandler.Profile)
	user.PUT("/update", userHandler.Update)
	user.GET("/stores", middleware.RequireRoles(model.RoleUser), userHandler.Stores)
	user.GET("", middleware.RequireRoles(model.RoleAdmin), dashboardHandler.ListUsers)
	user.DELETE("/:id", middleware.RequireRoles(model.RoleAdmin), dashboardHandler.DeleteUser)

	return engine
}
