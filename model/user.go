package model

import (
	"time"

	"github.com/srisatyasai136/review/constant"
)

// UserEntity represents the user table entity
type UserEntity struct {
	ID           uint64     `db:"id" json:"id"`
	Name         string     `db:"name" json:"name"`
	Email        string     `db:"email" json:"email"`
	Phone        string     `db:"phone" json:"phone"`
	PasswordHash string     `db:"password_hash" json:"-"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// UserFilter for querying users
type UserFilter struct {
	ID    uint64
	Email string
}

// Workflow is a pending registration or password reset, stored in Redis under
// its token until it succeeds or expires.
type Workflow struct {
	Token        string                 `json:"token"`
	Flow         constant.WorkflowFlow  `json:"flow"`
	State        constant.WorkflowState `json:"state"`
	Email        string                 `json:"email"`
	Name         string                 `json:"name,omitempty"`
	Phone        string                 `json:"phone,omitempty"`
	PasswordHash string                 `json:"password_hash,omitempty"`
	Code         string                 `json:"code,omitempty"`
	Attempts     int                    `json:"attempts"`
	LastSentAt   time.Time              `json:"last_sent_at"`
	CreatedAt    time.Time              `json:"created_at"`
	ExpiresAt    time.Time              `json:"expires_at"`
}

// Session is an authenticated login bound to a JWT id.
type Session struct {
	UserID    uint64
	SessionID string
}

// RegisterRequest for user registration
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Mobile   string `json:"mobile" validate:"required,max=15"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest for user login by email
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type VerifyOTPRequest struct {
	Token string `json:"token" validate:"required"`
	OTP   string `json:"otp" validate:"required"`
}

type ResendOTPRequest struct {
	Token string `json:"token" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token           string `json:"token" validate:"required"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type LoginResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
	Next  string `json:"next"`
}

// OTPChallengeResponse is returned whenever a code has been issued.
type OTPChallengeResponse struct {
	Token     string                 `json:"token"`
	Flow      constant.WorkflowFlow  `json:"flow"`
	State     constant.WorkflowState `json:"state"`
	Email     string                 `json:"email"`
	ExpiresAt time.Time              `json:"expires_at"`
	Next      string                 `json:"next"`
}

type VerifyOTPResponse struct {
	Token string                 `json:"token,omitempty"`
	Flow  constant.WorkflowFlow  `json:"flow"`
	State constant.WorkflowState `json:"state"`
	Email string                 `json:"email"`
	Next  string                 `json:"next"`
}

// WorkflowStatusResponse carries what the verify and reset forms display.
type WorkflowStatusResponse struct {
	Flow      constant.WorkflowFlow  `json:"flow"`
	State     constant.WorkflowState `json:"state"`
	Email     string                 `json:"email"`
	ExpiresAt time.Time              `json:"expires_at"`
}

type NextResponse struct {
	Next string `json:"next"`
}

type AccountResponse struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
