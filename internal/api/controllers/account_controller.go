package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderlog/internal/models/request_models"
	"wanderlog/internal/models/response_models"
	"wanderlog/internal/services"
	"wanderlog/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// GoogleLogin godoc
// @Summary Sign in with Google
// @Description Exchange a Google ID token for a one-hour session token. First sign-in creates the user.
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.GoogleLoginRequest true "Google ID token"
// @Success 200 {object} utils.APIResponse{data=response_models.LoginResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /google-login [post]
func (a *AccountController) GoogleLogin(c *gin.Context) {
	var req request_models.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.accountService.LoginWithIdentityToken(c.Request.Context(), req.IDToken)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.LoginResponse{Token: token}, "Login successful")
}

// GetUser godoc
// @Summary Get a user
// @Tags Users
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} utils.APIResponse{data=response_models.UserResponse}
// @Failure 404 {object} utils.APIResponse
// @Router /user/{userId} [get]
func (a *AccountController) GetUser(c *gin.Context) {
	user, err := a.accountService.GetUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.BuildUserResponse(user), "")
}

// DeleteUser godoc
// @Summary Delete a user
// @Description Removes the user and its trip memberships
// @Tags Users
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /user/{userId} [delete]
func (a *AccountController) DeleteUser(c *gin.Context) {
	if err := a.accountService.DeleteUser(c.Request.Context(), c.Param("userId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "User account deleted successfully")
}

// Me godoc
// @Summary Get the signed-in user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=response_models.UserResponse}
// @Failure 401 {object} utils.APIResponse
// @Router /me [get]
func (a *AccountController) Me(c *gin.Context) {
	user, err := a.accountService.GetUser(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.BuildUserResponse(user), "")
}
