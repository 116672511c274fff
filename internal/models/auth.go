package models

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult is returned by POST /login.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	Role        string `json:"role"`
	Username    string `json:"username"`
}

// RegisterRequest is the body of POST /register. SecretCode is required by the API.
type RegisterRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	SecretCode string `json:"secret_code"`
}

// RoleAdmin is the role the API hands to administrators.
const RoleAdmin = "admin"
