package models

// SignInRequest is the credential payload for /auth/signIn.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInResponse is what the backend returns on a successful login.
type SignInResponse struct {
	JWT            string `json:"jwt"`
	Message        string `json:"message"`
	Role           string `json:"role"`
	UserID         uint   `json:"userId"`
	UserName       string `json:"userName"`
	UserEmail      string `json:"userEmail"`
	DashboardURL   string `json:"dashboardUrl,omitempty"`
	WelcomeMessage string `json:"welcomeMessage,omitempty"`
}
