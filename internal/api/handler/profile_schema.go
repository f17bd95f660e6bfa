package handler

// --- Request / Response types ---

// updateProfileRequest enumerates the writable profile fields. Pointer
// fields distinguish "absent" from "set to zero value". The identifier and
// the verified flag have no input representation: they cannot be written
// through this endpoint regardless of payload contents.
type updateProfileRequest struct {
	Email            *string `json:"email"            validate:"omitempty,email"`
	FirstName        *string `json:"firstName"        validate:"omitempty,max=150"`
	LastName         *string `json:"lastName"         validate:"omitempty,max=150"`
	ProfilePicture   *string `json:"profilePicture"   validate:"omitempty,max=512"`
	TwoFactorEnabled *bool   `json:"isTwoFactorEnabled"`

	// Write-only: accepted on input, never echoed back.
	CurrentPassword string `json:"currentPassword" validate:"omitempty,max=128"`
	NewPassword     string `json:"newPassword"     validate:"omitempty,min=8,max=128"`
}

type registerRequest struct {
	Email     string `json:"email"     validate:"required,email"`
	FirstName string `json:"firstName" validate:"required,max=150"`
	LastName  string `json:"lastName"  validate:"required,max=150"`
	Password  string `json:"password"  validate:"required,min=8,max=128"`
}

// profileResponse is the JSON contract for profile reads and updates.
// Password material is structurally absent.
type profileResponse struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	EmailVerified    bool   `json:"isEmailVerified"`
	TwoFactorEnabled bool   `json:"isTwoFactorEnabled"`
	ProfilePicture   string `json:"profilePicture,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}
