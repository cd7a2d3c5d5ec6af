package user

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/srisatyasai136/review/constant"
	"github.com/srisatyasai136/review/model"
	redisrepo "github.com/srisatyasai136/review/repository/redis"
	userrepo "github.com/srisatyasai136/review/repository/user"
	"github.com/srisatyasai136/review/thirdparty/mailer"
	"github.com/srisatyasai136/review/utils/errors"
	"github.com/srisatyasai136/review/utils/logger"
	"github.com/srisatyasai136/review/utils/otp"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	subjectVerifyEmail   = "Verify Email OTP"
	subjectResendOTP     = "New OTP Code"
	subjectPasswordReset = "Password Reset OTP"
)

// Register stores a pending registration and emails its code. No account is
// created until VerifyOTP succeeds. When the email cannot be sent the
// workflow is kept and both the challenge and ErrNotificationFailed are
// returned, so the client can resend.
func (s *UserAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.OTPChallengeResponse, error) {
	email := normalizeEmail(req.Email)

	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: email})
	if err != nil {
		logger.Error("[Register] err userRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrCredentialExists)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	wf, err := s.newWorkflow(constant.FlowRegistration, constant.StatePendingRegistrationOTP, email)
	if err != nil {
		logger.Error("[Register] err newWorkflow", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	wf.Name = req.Name
	wf.Phone = req.Mobile
	wf.PasswordHash = string(hashedPassword)

	return s.issue(ctx, "Register", wf, subjectVerifyEmail, "Your OTP is: %s")
}

// ForgotPassword starts a password reset for a registered email.
func (s *UserAppImpl) ForgotPassword(ctx context.Context, req *model.ForgotPasswordRequest) (*model.OTPChallengeResponse, error) {
	email := normalizeEmail(req.Email)

	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: email})
	if err != nil {
		logger.Error("[ForgotPassword] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	wf, err := s.newWorkflow(constant.FlowPasswordReset, constant.StatePendingResetOTP, user.Email)
	if err != nil {
		logger.Error("[ForgotPassword] err newWorkflow", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return s.issue(ctx, "ForgotPassword", wf, subjectPasswordReset, "Your OTP is: %s")
}

// VerifyOTP checks the code of a pending workflow. A registration match
// creates the account; a reset match only unlocks ResetPassword.
func (s *UserAppImpl) VerifyOTP(ctx context.Context, req *model.VerifyOTPRequest) (*model.VerifyOTPResponse, error) {
	wf, err := s.loadWorkflow(ctx, "VerifyOTP", req.Token, constant.PathLogin)
	if err != nil {
		return nil, err
	}
	if !isPending(wf.State) {
		return nil, errors.SetCustomError(constant.ErrInvalidWorkflowState)
	}

	if !otp.Equal(wf.Code, req.OTP) {
		return nil, s.recordFailedAttempt(ctx, wf)
	}

	if wf.Flow == constant.FlowRegistration {
		return s.completeRegistration(ctx, wf)
	}

	wf.State = constant.StateResetComplete
	wf.Code = ""
	wf.Attempts = 0
	if err := s.redisRepo.UpdateWorkflow(ctx, wf); err != nil {
		return nil, s.workflowWriteError("VerifyOTP", err, constant.PathForgotPassword)
	}

	return &model.VerifyOTPResponse{
		Token: wf.Token,
		Flow:  wf.Flow,
		State: wf.State,
		Email: wf.Email,
		Next:  constant.PathResetPassword,
	}, nil
}

// ResendOTP replaces the pending code; the previous one stops matching.
func (s *UserAppImpl) ResendOTP(ctx context.Context, req *model.ResendOTPRequest) (*model.OTPChallengeResponse, error) {
	wf, err := s.loadWorkflow(ctx, "ResendOTP", req.Token, constant.PathRegister)
	if err != nil {
		return nil, err
	}
	if !isPending(wf.State) {
		return nil, errors.SetCustomError(constant.ErrInvalidWorkflowState)
	}

	cooldown := s.config.OTP.ResendCooldown
	if cooldown > 0 && !wf.LastSentAt.IsZero() && time.Since(wf.LastSentAt) < cooldown {
		return nil, errors.SetCustomError(constant.ErrResendTooSoon)
	}

	code, err := otp.Generate()
	if err != nil {
		logger.Error("[ResendOTP] err otp.Generate", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	wf.Code = code
	wf.Attempts = 0
	wf.ExpiresAt = time.Now().UTC().Add(s.config.OTP.TTL)

	return s.issue(ctx, "ResendOTP", wf, subjectResendOTP, "Your new OTP is: %s")
}

// ResetPassword sets the new password once the reset code was verified.
func (s *UserAppImpl) ResetPassword(ctx context.Context, req *model.ResetPasswordRequest) (*model.NextResponse, error) {
	wf, err := s.loadWorkflow(ctx, "ResetPassword", req.Token, constant.PathForgotPassword)
	if err != nil {
		return nil, err
	}
	if wf.Flow != constant.FlowPasswordReset || wf.State != constant.StateResetComplete {
		return nil, errors.SetCustomError(constant.ErrInvalidWorkflowState)
	}
	if req.Password != req.ConfirmPassword {
		return nil, errors.SetCustomError(constant.ErrPasswordMismatch)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[ResetPassword] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.userRepo.UpdatePassword(ctx, wf.Email, string(hashedPassword)); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[ResetPassword] err userRepo.UpdatePassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.deleteWorkflow(ctx, "ResetPassword", wf.Token)

	return &model.NextResponse{Next: constant.PathLogin}, nil
}

// GetWorkflow describes a live workflow for the verify and reset forms.
func (s *UserAppImpl) GetWorkflow(ctx context.Context, token string) (*model.WorkflowStatusResponse, error) {
	wf, err := s.loadWorkflow(ctx, "GetWorkflow", token, constant.PathLogin)
	if err != nil {
		return nil, err
	}

	return &model.WorkflowStatusResponse{
		Flow:      wf.Flow,
		State:     wf.State,
		Email:     wf.Email,
		ExpiresAt: wf.ExpiresAt,
	}, nil
}

func (s *UserAppImpl) completeRegistration(ctx context.Context, wf *model.Workflow) (*model.VerifyOTPResponse, error) {
	_, err := s.userRepo.Create(ctx, &model.UserEntity{
		Name:         wf.Name,
		Email:        wf.Email,
		Phone:        wf.Phone,
		PasswordHash: wf.PasswordHash,
	})
	if err != nil {
		if stderrors.Is(err, userrepo.ErrDuplicateEmail) {
			// registered through another workflow meanwhile
			s.deleteWorkflow(ctx, "VerifyOTP", wf.Token)
			return nil, errors.SetCustomError(constant.ErrCredentialExists)
		}
		logger.Error("[VerifyOTP] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.deleteWorkflow(ctx, "VerifyOTP", wf.Token)

	return &model.VerifyOTPResponse{
		Flow:  wf.Flow,
		State: constant.StateRegistered,
		Email: wf.Email,
		Next:  constant.PathLogin,
	}, nil
}

// recordFailedAttempt keeps the pending fields and the code, counting the
// miss. Reaching the configured limit discards the workflow. Without a limit
// the stored workflow is not touched.
func (s *UserAppImpl) recordFailedAttempt(ctx context.Context, wf *model.Workflow) error {
	limit := s.config.OTP.MaxVerifyAttempts
	if limit <= 0 {
		return errors.SetCustomError(constant.ErrInvalidOTP)
	}

	wf.Attempts++
	if wf.Attempts >= limit {
		logger.Warn("[VerifyOTP] too many attempts",
			zap.String("email", wf.Email),
			zap.String("flow", string(wf.Flow)),
			zap.Int("attempts", wf.Attempts))
		s.deleteWorkflow(ctx, "VerifyOTP", wf.Token)
		return errors.SetRedirectError(constant.ErrTooManyAttempts, entryPoint(wf.Flow))
	}

	if err := s.redisRepo.UpdateWorkflow(ctx, wf); err != nil {
		return s.workflowWriteError("VerifyOTP", err, constant.PathLogin)
	}
	return errors.SetCustomError(constant.ErrInvalidOTP)
}

func (s *UserAppImpl) newWorkflow(flow constant.WorkflowFlow, state constant.WorkflowState, email string) (*model.Workflow, error) {
	token, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}
	code, err := otp.Generate()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &model.Workflow{
		Token:     token.String(),
		Flow:      flow,
		State:     state,
		Email:     email,
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(s.config.OTP.TTL),
	}, nil
}

// issue persists the workflow with a fresh TTL and then emails its code. The
// send time is recorded only after the gateway accepted the message so a
// failed send never starts the resend cooldown.
func (s *UserAppImpl) issue(ctx context.Context, op string, wf *model.Workflow, subject, bodyFormat string) (*model.OTPChallengeResponse, error) {
	if err := s.redisRepo.SaveWorkflow(ctx, wf, s.config.OTP.TTL); err != nil {
		logger.Error("["+op+"] err redisRepo.SaveWorkflow", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	res := &model.OTPChallengeResponse{
		Token:     wf.Token,
		Flow:      wf.Flow,
		State:     wf.State,
		Email:     wf.Email,
		ExpiresAt: wf.ExpiresAt,
		Next:      constant.PathVerifyOTP,
	}

	body := fmt.Sprintf(bodyFormat, wf.Code)
	result, err := s.mailer.Send(ctx, mailer.Email{
		To:       []string{wf.Email},
		Subject:  subject,
		Body:     body,
		HTMLBody: "<p>" + body + "</p>",
	})
	if err != nil {
		logger.Error("["+op+"] err mailer.Send",
			zap.String("email", wf.Email),
			zap.String("flow", string(wf.Flow)),
			zap.String("error", err.Error()))
		return res, errors.SetCustomError(constant.ErrNotificationFailed)
	}
	logger.Info("["+op+"] otp sent",
		zap.String("email", wf.Email),
		zap.String("flow", string(wf.Flow)),
		zap.Int("status_code", result.StatusCode))

	wf.LastSentAt = time.Now().UTC()
	if err := s.redisRepo.UpdateWorkflow(ctx, wf); err != nil {
		logger.Warn("["+op+"] err redisRepo.UpdateWorkflow last_sent_at", zap.String("error", err.Error()))
	}

	return res, nil
}

// loadWorkflow returns ErrWorkflowNotFound redirecting to entry when the token
// is unknown or past its expiry.
func (s *UserAppImpl) loadWorkflow(ctx context.Context, op, token, entry string) (*model.Workflow, error) {
	if token == "" {
		return nil, errors.SetRedirectError(constant.ErrWorkflowNotFound, entry)
	}

	wf, err := s.redisRepo.GetWorkflow(ctx, token)
	if err != nil {
		logger.Error("["+op+"] err redisRepo.GetWorkflow", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if wf == nil {
		return nil, errors.SetRedirectError(constant.ErrWorkflowNotFound, entry)
	}
	if !wf.ExpiresAt.IsZero() && time.Now().After(wf.ExpiresAt) {
		s.deleteWorkflow(ctx, op, wf.Token)
		return nil, errors.SetRedirectError(constant.ErrWorkflowNotFound, entry)
	}
	return wf, nil
}

func (s *UserAppImpl) deleteWorkflow(ctx context.Context, op, token string) {
	if err := s.redisRepo.DeleteWorkflow(ctx, token); err != nil {
		logger.Error("["+op+"] err redisRepo.DeleteWorkflow", zap.String("error", err.Error()))
	}
}

func (s *UserAppImpl) workflowWriteError(op string, err error, entry string) error {
	if stderrors.Is(err, redisrepo.ErrWorkflowExpired) {
		return errors.SetRedirectError(constant.ErrWorkflowNotFound, entry)
	}
	logger.Error("["+op+"] err redisRepo.UpdateWorkflow", zap.String("error", err.Error()))
	return errors.SetCustomError(constant.ErrInternal)
}

func isPending(state constant.WorkflowState) bool {
	return state == constant.StatePendingRegistrationOTP || state == constant.StatePendingResetOTP
}

func entryPoint(flow constant.WorkflowFlow) string {
	if flow == constant.FlowPasswordReset {
		return constant.PathForgotPassword
	}
	return constant.PathRegister
}
