package api

import "context"

// authRequest matches POST /authenticate. The backend expects the account
// email in the username field.
type authRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
}

// RegisterRequest matches POST /register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Authenticate exchanges credentials for a bearer token. The token is
// returned opaque; decoding its payload is the session layer's concern.
func (c *Client) Authenticate(ctx context.Context, email, password string) (string, error) {
	var resp authResponse
	err := c.post(ctx, "/authenticate", authRequest{Username: email, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Register creates a new account. Registration never authenticates: no
// token is issued and the caller still has to log in.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.post(ctx, "/register", req, nil)
}
