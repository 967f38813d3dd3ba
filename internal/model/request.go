package model

type SignupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateProfileRequest struct {
	FullName    string `json:"fullname"`
	PhoneNumber string `json:"phonenumber"`
	Address     string `json:"address"`
	Bio         string `json:"bio"`
	UserID      string `json:"userid"`
}
