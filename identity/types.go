package identity

// loginRequest is the POST /auth/login body.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the identity service's login payload. Only AccessToken is
// guaranteed; the profile fields are optional enrichments that, when
// present, take precedence over the token's claims.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	UserType    string `json:"user_type,omitempty"`
	Username    string `json:"username,omitempty"`
	UserID      int    `json:"user_id,omitempty"`
}
