package dto

// SignupAdminRequest payload for new administrators.
type SignupAdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// SignupMemberRequest payload for new support members.
type SignupMemberRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Role         string `json:"role"`
	Availability string `json:"availability"`
}

// SignupUserRequest payload for new end-users.
type SignupUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Company  string `json:"company"`
	Password string `json:"password"`
}

// LoginRequest payload shared by all three pools.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
