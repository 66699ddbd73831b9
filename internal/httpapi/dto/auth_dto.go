package dto

type SignupRequest struct {
	Username string `json:"username" binding:"required,max=150"`
	Email    string `json:"email" binding:"required,email,max=254"`
}

type SignupResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type TokenRequest struct {
	Username         string `json:"username" binding:"required,max=150"`
	ConfirmationCode string `json:"confirmation_code" binding:"required,max=50"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
