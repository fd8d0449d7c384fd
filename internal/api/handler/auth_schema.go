package handler

// --- Request / Response types ---

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Response-only types owned by the transport layer. These are intentionally
// separate from domain types so the JSON contract is not coupled to internal
// changes; neither ever carries the password or its hash.

type registeredUserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type registerResponse struct {
	Message string                 `json:"message"`
	User    registeredUserResponse `json:"user"`
	Token   string                 `json:"token"`
}

type loginUserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type loginResponse struct {
	Message string            `json:"message"`
	Token   string            `json:"token"`
	User    loginUserResponse `json:"user"`
}

type profileResponse struct {
	User registeredUserResponse `json:"user"`
}

type accountListResponse struct {
	Accounts []registeredUserResponse `json:"accounts"`
	Total    int                      `json:"total"`
}
