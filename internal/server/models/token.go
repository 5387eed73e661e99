package models

// Token is the response body of a successful password grant.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Credentials is the password grant request.
type Credentials struct {
	Username string `json:"username" form:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" form:"password" validate:"required,min=1,max=72"`
}
