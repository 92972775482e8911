package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/alexh7799/coderr/internal/server/http/handlers"
	"github.com/alexh7799/coderr/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.MarketFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	profileHandler := handlers.NewProfileHandler(facade)
	offerHandler := handlers.NewOfferHandler(facade, facade)
	orderHandler := handlers.NewOrderHandler(facade)
	reviewHandler := handlers.NewReviewHandler(facade)
	statsHandler := handlers.NewStatsHandler(facade)

	api := engine.Group("/api")
	api.POST("/registration/", authHandler.Register)
	api.POST("/login/", authHandler.Login)
	api.GET("/offers/", offerHandler.List)
	api.GET("/base-info/", statsHandler.BaseInfo)

	auth := api.Group("")
	auth.Use(middleware.AuthRequired(facade))
	auth.GET("/profile/:pk/", profileHandler.Get)
	auth.PATCH("/profile/:pk/", profileHandler.Update)
	auth.GET("/profiles/business/", profileHandler.ListBusiness)
	auth.GET("/profiles/customer/", profileHandler.ListCustomer)

	auth.POST("/offers/", offerHandler.Create)
	auth.GET("/offers/:pk/", offerHandler.Get)
	auth.PATCH("/offers/:pk/", offerHandler.Update)
	auth.DELETE("/offers/:pk/", offerHandler.Delete)
	auth.GET("/offerdetails/:pk/", offerHandler.Detail)

	auth.GET("/orders/", orderHandler.List)
	auth.POST("/orders/", orderHandler.Create)
	auth.GET("/orders/:pk/", orderHandler.Get)
	auth.PATCH("/orders/:pk/", orderHandler.Update)
	auth.DELETE("/orders/:pk/", orderHandler.Delete)
	auth.GET("/order-count/:business_user_id/", orderHandler.CountInProgress)
	auth.GET("/completed-order-count/:business_user_id/", orderHandler.CountCompleted)

	auth.GET("/reviews/", reviewHandler.List)
	auth.POST("/reviews/", reviewHandler.Create)
	auth.GET("/reviews/:pk/", reviewHandler.Get)
	auth.PATCH("/reviews/:pk/", reviewHandler.Update)
	auth.DELETE("/reviews/:pk/", reviewHandler.Delete)

	return engine
}
