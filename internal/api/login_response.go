package api

// LoginResponse is the flat profile-plus-token payload the client persists.
// swagger:model api.LoginResponse
type LoginResponse struct {
	ID       int    `json:"id" example:"1"`
	Username string `json:"username" example:"admin"`
	Email    string `json:"email" example:"admin@primespace.com"`
	Role     string `json:"role" example:"admin"`
	Token    string `json:"token"`
}
