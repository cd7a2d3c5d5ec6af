package constant

type WorkflowFlow string

const (
	FlowRegistration  WorkflowFlow = "registration"
	FlowPasswordReset WorkflowFlow = "password_reset"
)

type WorkflowState string

const (
	StatePendingRegistrationOTP WorkflowState = "pending_registration_otp"
	StateRegistered             WorkflowState = "registered"
	StatePendingResetOTP        WorkflowState = "pending_reset_otp"
	StateResetComplete          WorkflowState = "reset_complete"
)

// Redirect targets returned to the client as the next step of a flow.
const (
	PathLogin          = "/login"
	PathRegister       = "/register"
	PathVerifyOTP      = "/verify-otp"
	PathForgotPassword = "/forgot-password"
	PathResetPassword  = "/reset-password"
)

const OTPLength = 6
