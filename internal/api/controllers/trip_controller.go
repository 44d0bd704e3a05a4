package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wanderlog/internal/models/request_models"
	"wanderlog/internal/models/response_models"
	"wanderlog/internal/services"
	"wanderlog/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// CreateTrip godoc
// @Summary Create a trip
// @Description Create a trip with one itinerary day per date between start and end. The host becomes the first traveler.
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.CreateTripRequest true "Trip payload"
// @Success 201 {object} utils.APIResponse{data=response_models.TripResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trip [post]
func (t *TripController) CreateTrip(c *gin.Context) {
	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.CreateTrip(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, response_models.BuildTripResponse(trip), "Trip created successfully")
}

// GetTripsForUser godoc
// @Summary List a user's trips
// @Description Trips the user hosts or travels on, with travelers expanded
// @Tags Trips
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} utils.APIResponse{data=[]response_models.TripResponse}
// @Failure 400 {object} utils.APIResponse
// @Router /trips/{userId} [get]
func (t *TripController) GetTripsForUser(c *gin.Context) {
	trips, err := t.tripService.ListTripsForUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.BuildTripListResponse(trips), "Trips fetched successfully")
}

// AddPlace godoc
// @Summary Add a place to visit
// @Description Look up a Google place and append it to the trip's places to visit
// @Tags Places
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.AddPlaceRequest true "Place payload"
// @Success 200 {object} utils.APIResponse{data=response_models.TripResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /trip/{tripId}/addPlace [post]
func (t *TripController) AddPlace(c *gin.Context) {
	var req request_models.AddPlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.AddPlace(c.Request.Context(), c.Param("tripId"), req.PlaceID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.BuildTripResponse(trip), "Place added successfully")
}

// GetPlacesToVisit godoc
// @Summary List places to visit
// @Tags Places
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trip/{tripId}/placesToVisit [get]
func (t *TripController) GetPlacesToVisit(c *gin.Context) {
	places, err := t.tripService.GetPlacesToVisit(c.Request.Context(), c.Param("tripId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "")
}

// GetItinerary godoc
// @Summary Get the itinerary
// @Tags Itinerary
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trip/{tripId}/itinerary [get]
func (t *TripController) GetItinerary(c *gin.Context) {
	itinerary, err := t.tripService.GetItinerary(c.Request.Context(), c.Param("tripId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "")
}

// AddActivity godoc
// @Summary Add an activity to an itinerary day
// @Description The date must equal an itinerary date exactly. The day's place details are replaced by the activity's.
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param date path string true "Itinerary date (YYYY-MM-DD)"
// @Param request body request_models.AddActivityRequest true "Activity payload"
// @Success 200 {object} utils.APIResponse{data=response_models.TripResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{tripId}/itinerary/{date} [post]
func (t *TripController) AddActivity(c *gin.Context) {
	var req request_models.AddActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.AddActivityToDay(c.Request.Context(), c.Param("tripId"), c.Param("date"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.BuildTripResponse(trip), "Activity added successfully")
}

// RemoveActivity godoc
// @Summary Remove an activity by position
// @Tags Itinerary
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param date path string true "Itinerary date (YYYY-MM-DD)"
// @Param activityIndex path int true "Zero-based activity index"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trip/{tripId}/itinerary/{date}/{activityIndex} [delete]
func (t *TripController) RemoveActivity(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("activityIndex"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrInvalidActivityIndex)
		return
	}

	trip, err := t.tripService.RemoveActivity(c.Request.Context(), c.Param("tripId"), c.Param("date"), index)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip.Day(c.Param("date")), "Activity deleted successfully")
}

// SetBudget godoc
// @Summary Overwrite the trip budget
// @Tags Budget
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.SetBudgetRequest true "Budget payload"
// @Success 200 {object} utils.APIResponse{data=response_models.BudgetResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /setBudget/{tripId} [put]
func (t *TripController) SetBudget(c *gin.Context) {
	var req request_models.SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	budget, err := t.tripService.SetBudget(c.Request.Context(), c.Param("tripId"), req.Budget)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.BudgetResponse{Budget: budget}, "Budget updated!")
}

// GetNote godoc
// @Summary Get the trip notes
// @Tags Notes
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse{data=response_models.NoteResponse}
// @Failure 404 {object} utils.APIResponse
// @Router /trip/{tripId}/note [get]
func (t *TripController) GetNote(c *gin.Context) {
	note, err := t.tripService.GetNote(c.Request.Context(), c.Param("tripId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NoteResponse{Note: note}, "")
}

// SetNote godoc
// @Summary Overwrite the trip notes
// @Tags Notes
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.SetNoteRequest true "Note payload"
// @Success 200 {object} utils.APIResponse{data=response_models.NoteResponse}
// @Failure 404 {object} utils.APIResponse
// @Router /trip/{tripId}/note [put]
func (t *TripController) SetNote(c *gin.Context) {
	var req request_models.SetNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	note, err := t.tripService.SetNote(c.Request.Context(), c.Param("tripId"), req.Note)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NoteResponse{Note: note}, "Note updated")
}

// AddTraveler godoc
// @Summary Add a traveler to a trip
// @Tags Trips
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.AddTravelerRequest true "Traveler payload"
// @Success 200 {object} utils.APIResponse{data=response_models.TripResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trip/{tripId}/travelers [post]
func (t *TripController) AddTraveler(c *gin.Context) {
	var req request_models.AddTravelerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.AddTraveler(c.Request.Context(), c.Param("tripId"), req.UserID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.BuildTripResponse(trip), "Traveler added")
}
