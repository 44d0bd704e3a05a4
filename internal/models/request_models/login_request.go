package request_models

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}
