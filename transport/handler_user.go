package transport

import (
	stderrors "errors"
	"net/http"

	"github.com/srisatyasai136/review/constant"
	"github.com/srisatyasai136/review/model"
	utilsContext "github.com/srisatyasai136/review/utils/context"
	"github.com/srisatyasai136/review/utils/errors"
)

// Register handler
// @Summary Register user
// @Description Start a registration. The account is created once the emailed OTP is verified.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.OTPChallengeResponse
// @Failure 400 {object} Response
// @Failure 503 {object} Response
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Register(r.Context(), &req)
	writeChallenge(w, res, err)
}

// Login handler
// @Summary Login user
// @Description Login with email and password and receive a JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 401 {object} Response
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// VerifyOTPForm handler
// @Summary Pending workflow
// @Description Data shown on the OTP form. A missing or expired workflow answers 303 to /login.
// @Tags Auth
// @Produce json
// @Param token query string true "Workflow token"
// @Success 200 {object} model.WorkflowStatusResponse
// @Failure 303 {object} Response
// @Router /verify-otp [get]
func (s *RestHandler) VerifyOTPForm(w http.ResponseWriter, r *http.Request) {
	res, err := s.UserApp.GetWorkflow(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// VerifyOTP handler
// @Summary Verify OTP
// @Description Check the emailed code for a registration or password reset
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.VerifyOTPRequest true "Verify Request"
// @Success 200 {object} model.VerifyOTPResponse
// @Failure 400 {object} Response
// @Failure 303 {object} Response
// @Failure 429 {object} Response
// @Router /verify-otp [post]
func (s *RestHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req model.VerifyOTPRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.VerifyOTP(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ResendOTP handler
// @Summary Resend OTP
// @Description Issue a new code; the previous one stops working
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.ResendOTPRequest true "Resend Request"
// @Success 200 {object} model.OTPChallengeResponse
// @Failure 303 {object} Response
// @Failure 429 {object} Response
// @Router /resend-otp [post]
func (s *RestHandler) ResendOTP(w http.ResponseWriter, r *http.Request) {
	var req model.ResendOTPRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.ResendOTP(r.Context(), &req)
	writeChallenge(w, res, err)
}

// ForgotPassword handler
// @Summary Forgot password
// @Description Email a password reset code to a registered address
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.ForgotPasswordRequest true "Forgot Password Request"
// @Success 200 {object} model.OTPChallengeResponse
// @Failure 404 {object} Response
// @Router /forgot-password [post]
func (s *RestHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req model.ForgotPasswordRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.ForgotPassword(r.Context(), &req)
	writeChallenge(w, res, err)
}

// ResetPasswordForm handler
// @Summary Reset form
// @Description Only available once the reset code was verified
// @Tags Auth
// @Produce json
// @Param token query string true "Workflow token"
// @Success 200 {object} model.WorkflowStatusResponse
// @Failure 303 {object} Response
// @Failure 409 {object} Response
// @Router /reset-password [get]
func (s *RestHandler) ResetPasswordForm(w http.ResponseWriter, r *http.Request) {
	res, err := s.UserApp.GetWorkflow(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		var ce errors.CustomError
		if stderrors.As(err, &ce) && ce.Type() == constant.ErrWorkflowNotFound {
			err = errors.SetRedirectError(constant.ErrWorkflowNotFound, constant.PathForgotPassword)
		}
		writeError(w, err)
		return
	}
	if res.State != constant.StateResetComplete {
		writeError(w, errors.SetCustomError(constant.ErrInvalidWorkflowState))
		return
	}
	writeSuccess(w, res)
}

// ResetPassword handler
// @Summary Reset password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.ResetPasswordRequest true "Reset Request"
// @Success 200 {object} model.NextResponse
// @Failure 400 {object} Response
// @Failure 303 {object} Response
// @Router /reset-password [post]
func (s *RestHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req model.ResetPasswordRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.ResetPassword(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.NextResponse
// @Router /logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := utilsContext.GetSessionID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	if err := s.UserApp.Logout(r.Context(), sessionID); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, &model.NextResponse{Next: constant.PathLogin})
}

// Me handler
// @Summary Current account
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.AccountResponse
// @Router /me [get]
func (s *RestHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := utilsContext.GetUserID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.UserApp.GetAccount(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// writeChallenge keeps the workflow token in the reply when only the email
// dispatch failed, so the client can call resend.
func writeChallenge(w http.ResponseWriter, res *model.OTPChallengeResponse, err error) {
	if err != nil {
		if res != nil {
			writeErrorWithData(w, err, res)
			return
		}
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
