package dto

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// LoginResponse carries the issued token and the caller's stored row
// (password stripped).
type LoginResponse struct {
	Token string      `json:"token"`
	Role  string      `json:"role"`
	Info  interface{} `json:"info"`
}
