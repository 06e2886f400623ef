package dto

// CreateUserRequest is the body for POST /api/users. Pointer fields let
// the handler distinguish a missing key from an empty string, which map
// to different validation messages.
type CreateUserRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Fullname string  `json:"fullname"`
}

// LoginRequest is the body for POST /api/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the signed bearer credential issued on a
// successful login.
type LoginResponse struct {
	AuthToken string `json:"authToken"`
}
