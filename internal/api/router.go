package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"wanderlog/internal/api/controllers"
	"wanderlog/internal/config"
	"wanderlog/pkg/middleware"
	"wanderlog/pkg/utils"
)

type RouterParams struct {
	fx.In

	Config               *config.Config
	Logger               *zap.Logger
	Signer               *utils.TokenSigner
	TripController       *controllers.TripController
	ExpenseController    *controllers.ExpenseController
	AccountController    *controllers.AccountController
	InvitationController *controllers.InvitationController
}

func NewRouter(p RouterParams) *gin.Engine {
	// request bodies with fields we do not know are rejected, not ignored
	binding.EnableDecoderDisallowUnknownFields = true

	if p.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.ZapLogger(p.Logger))
	r.Use(middleware.ZapRecovery(p.Logger))
	r.Use(middleware.CORSMiddleware(p.Config.HTTP.CORSOrigins))

	RegisterRoutes(r, p)
	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	trips := p.TripController
	r.POST("/trip", trips.CreateTrip)
	r.GET("/trips/:id", aliasParam("id", "userId"), trips.GetTripsForUser)
	r.POST("/trips/:id/itinerary/:date", aliasParam("id", "tripId"), trips.AddActivity)
	r.PUT("/setBudget/:tripId", trips.SetBudget)

	tripGroup := r.Group("/trip/:tripId")
	tripGroup.POST("/addPlace", trips.AddPlace)
	tripGroup.GET("/placesToVisit", trips.GetPlacesToVisit)
	tripGroup.GET("/itinerary", trips.GetItinerary)
	tripGroup.DELETE("/itinerary/:date/:activityIndex", trips.RemoveActivity)
	tripGroup.GET("/note", trips.GetNote)
	tripGroup.PUT("/note", trips.SetNote)
	tripGroup.POST("/travelers", trips.AddTraveler)

	r.POST("/addExpense/:tripId", p.ExpenseController.AddExpense)
	r.GET("/getExpense/:tripId", p.ExpenseController.GetExpenses)

	r.POST("/google-login", p.AccountController.GoogleLogin)
	r.GET("/user/:userId", p.AccountController.GetUser)
	r.DELETE("/user/:userId", p.AccountController.DeleteUser)
	r.GET("/me", middleware.JWTAuthMiddleware(p.Signer), p.AccountController.Me)

	r.POST("/sendInviteEmail", p.InvitationController.SendInviteEmail)
	r.GET("/joinTrip", p.InvitationController.JoinTrip)
}

// aliasParam exposes path param from under the name to. Routes below /trips
// must share one wildcard name even though it holds a user id in one and a
// trip id in the other.
func aliasParam(from, to string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.AddParam(to, c.Param(from))
		c.Next()
	}
}
