package user_test

import (
	"context"
	"database/sql"
	"errors"
	"reflect"
	"regexp"
	"strings"
	"testing"
	"time"

	appuser "github.com/srisatyasai136/review/application/user"
	"github.com/srisatyasai136/review/constant"
	redismocks "github.com/srisatyasai136/review/mocks/repository/redis"
	usermocks "github.com/srisatyasai136/review/mocks/repository/user"
	mailermocks "github.com/srisatyasai136/review/mocks/thirdparty/mailer"
	"github.com/srisatyasai136/review/model"
	redisrepo "github.com/srisatyasai136/review/repository/redis"
	userrepo "github.com/srisatyasai136/review/repository/user"
	"github.com/srisatyasai136/review/thirdparty/mailer"
	cerr "github.com/srisatyasai136/review/utils/errors"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

var otpBody = regexp.MustCompile(`^Your (new )?OTP is: [0-9]{6}$`)

type otpFields struct {
	userRepo  *usermocks.UserRepository
	redisRepo *redismocks.RedisRepository
	mailer    *mailermocks.Gateway
}

func newOTPFields(t *testing.T) otpFields {
	return otpFields{
		userRepo:  usermocks.NewUserRepository(t),
		redisRepo: redismocks.NewRedisRepository(t),
		mailer:    mailermocks.NewGateway(t),
	}
}

func (f otpFields) app() appuser.UserApp {
	return appuser.NewUserApp(testConfig(), f.userRepo, f.redisRepo, f.mailer)
}

func pendingRegistration() *model.Workflow {
	now := time.Now().UTC()
	return &model.Workflow{
		Token:        "wf-1",
		Flow:         constant.FlowRegistration,
		State:        constant.StatePendingRegistrationOTP,
		Email:        "asha@example.com",
		Name:         "Asha",
		Phone:        "9000000000",
		PasswordHash: "$2a$10$hash",
		Code:         "123456",
		LastSentAt:   now.Add(-time.Minute),
		CreatedAt:    now.Add(-time.Minute),
		ExpiresAt:    now.Add(9 * time.Minute),
	}
}

func pendingReset() *model.Workflow {
	wf := pendingRegistration()
	wf.Flow = constant.FlowPasswordReset
	wf.State = constant.StatePendingResetOTP
	wf.Name, wf.Phone, wf.PasswordHash = "", "", ""
	return wf
}

func resetComplete() *model.Workflow {
	wf := pendingReset()
	wf.State = constant.StateResetComplete
	wf.Code = ""
	return wf
}

func assertRedirect(t *testing.T, err error, want string) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.Redirect() != want {
		t.Fatalf("redirect = %q, want %q", ce.Redirect(), want)
	}
}

func TestUserApp_Register(t *testing.T) {
	req := &model.RegisterRequest{
		Name:     "Asha",
		Email:    "Asha@Example.com",
		Mobile:   "9000000000",
		Password: "secret1",
	}
	tests := []struct {
		name     string
		mockCall func(f otpFields)
		wantResp bool
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: pending workflow stored and code sent",
			mockCall: func(f otpFields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "asha@example.com"}).Return(nil, nil).Once()
				f.redisRepo.On("SaveWorkflow", mock.Anything, mock.MatchedBy(func(wf *model.Workflow) bool {
					return wf.Flow == constant.FlowRegistration &&
						wf.State == constant.StatePendingRegistrationOTP &&
						wf.Email == "asha@example.com" &&
						wf.Name == "Asha" &&
						wf.Phone == "9000000000" &&
						len(wf.Code) == constant.OTPLength &&
						wf.LastSentAt.IsZero() &&
						bcrypt.CompareHashAndPassword([]byte(wf.PasswordHash), []byte("secret1")) == nil
				}), 10*time.Minute).Return(nil).Once()
				f.mailer.On("Send", mock.Anything, mock.MatchedBy(func(e mailer.Email) bool {
					return reflect.DeepEqual(e.To, []string{"asha@example.com"}) &&
						e.Subject == "Verify Email OTP" &&
						otpBody.MatchString(e.Body)
				})).Return(&mailer.DispatchResult{StatusCode: mailer.StatusOK}, nil).Once()
				f.redisRepo.On("UpdateWorkflow", mock.Anything, mock.MatchedBy(func(wf *model.Workflow) bool {
					return !wf.LastSentAt.IsZero()
				})).Return(nil).Once()
			},
			wantResp: true,
		},
		{
			name: "error: email already registered",
			mockCall: func(f otpFields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "asha@example.com"}).
					Return(&model.UserEntity{ID: 1, Email: "asha@example.com"}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: gateway failure keeps workflow",
			mockCall: func(f otpFields) {
				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil).Once()
				f.redisRepo.On("SaveWorkflow", mock.Anything, mock.Anything, 10*time.Minute).Return(nil).Once()
				f.mailer.On("Send", mock.Anything, mock.Anything).Return(nil, mailer.ErrMissingCredentials).Once()
			},
			wantResp: true,
			wantErr:  true,
			errCode:  constant.ErrNotificationFailed,
		},
		{
			name: "error: workflow store failure",
			mockCall: func(f otpFields) {
				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil).Once()
				f.redisRepo.On("SaveWorkflow", mock.Anything, mock.Anything, 10*time.Minute).Return(errors.New("redis down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: repository failure",
			mockCall: func(f otpFields) {
				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newOTPFields(t)
			tt.mockCall(f)

			got, err := f.app().Register(context.Background(), req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Register() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
			if (got != nil) != tt.wantResp {
				t.Fatalf("Register() response = %+v, wantResp %v", got, tt.wantResp)
			}
			if got != nil {
				if got.Token == "" || got.Next != constant.PathVerifyOTP || got.Email != "asha@example.com" {
					t.Fatalf("Register() = %+v", got)
				}
			}
		})
	}
}

func TestUserApp_VerifyOTP(t *testing.T) {
	tests := []struct {
		name         string
		req          *model.VerifyOTPRequest
		mockCall     func(f otpFields)
		want         *model.VerifyOTPResponse
		wantErr      bool
		errCode      constant.ErrorType
		wantRedirect string
	}{
		{
			name: "success: registration creates the account",
			req:  &model.VerifyOTPRequest{Token: "wf-1", OTP: "123456"},
			mockCall: func(f otpFields) {
				f.redisRepo.On("GetWorkflow", mock.Anything, "wf-1").Return(pendingRegistration(), nil).Once()
				f.userRepo.On("Create", mock.Anything, &model.UserEntity{
					Name:         "Asha",
					Email:        "asha@example.com",
					Phone:        "9000000000",
					PasswordHash: "$2a$10$hash",
				}).Return(&model.UserEntity{ID: 10}, nil).Once()
				f.redisRepo.On("DeleteWorkflow", mock.Anything, "wf-1").Return(nil).Once()
			},
			want: &model.VerifyOTPResponse{
				Flow:  constant.FlowRegistration,
				State: constant.StateRegistered,
				Email: "asha@example.com",
				Next:  constant.PathLogin,
			},
		},
		{
			name: "success: reset code unlocks reset form",
			req:  &model.VerifyOTPRequest{Token: "wf-1", OTP: "123456"},
			mockCall: func(f otpFields) {
				f.redisRepo.On("GetWorkflow", mock.Anything, "wf-1").Return(pendingReset(), nil).Once()
				f.redisRepo.On("UpdateWorkflow", mock.Anything, mock.MatchedBy(func(wf *model.Workflow) bool {
					return wf.State == constant.StateResetComplete && wf.Code == ""
				})).Return(nil).Once()
			},
			want: &model.VerifyOTPResponse{
				Token: "wf-1",
				Flow:  constant.FlowPasswordReset,
				State: constant.StateResetComplete,
				Email: "asha@example.com",
				Next:  constant.PathResetPassword,
			},
		},
		{
			name: "error: wrong code counts the attempt and keeps the code",
			req:  &model.VerifyOTPRequest{Token: "wf-1", OTP: "654321"},
			mockCall: func(f otpFields) {
				f.redisRepo.On("GetWorkflow", mock.Anything, "wf-1").Return(pendingRegistration(), nil).Once()
				f.redisRepo.On("UpdateWorkflow", mock.Anything, mock.MatchedBy(func(wf *model.Workflow) bool {
					return wf.Attempts == 1 && wf.Code == "123456" && wf.State == constant.StatePendingRegistrationOTP
				})).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidOTP,
		},
		{
			name: "error: last allowed attempt discards the workflow",
			req:  &model.VerifyOTPRequest{Token: "wf-1", OTP: "654321"},
			mockCall: func(f otpFields) {
				wf := pendingRegistration()
				wf.Attempts = 4
				f.redisRepo.On("GetWorkflow", mock.Anything, "wf-1").Return(wf, nil).Once()
				f.redisRepo.On("DeleteWorkflow", mock.Anything, "wf-1").Return(nil).Once()
			},
			wantErr:      true,
			errCode:      constant.ErrTooManyAttempts,
			wantRedirect: constant.PathRegister,
		},
		{
			name: "error: workflow expired between read and write",
			req:  &model.VerifyOTPRequest{Token: "wf-1", OTP: "654321"},
			mockCall: func(f otpFields) {
				f.redisRepo.On("GetWorkflow", mock.Anything, "wf-1").Return(pendingRegistration(), nil).Once()
				f.redisRepo.On("UpdateWorkflow", mock.Anything, mock.Anything).Return(redisrepo.ErrWorkflowExpired).Once()
			},
			wantErr:      true,
			errCode:      constant.ErrWorkflowNotFound,
			wantRedirect: constant.PathLogin,
		},
		{
			name: "error: missing workflow redirects to login",
			req:  &model.VerifyOTPRequest{Token: "gone", OTP: "123456"},
			mockCall: func(f otpFields) {
				f.redisRepo.On("GetWorkflow", mock.Anything, "gone").Return(nil, nil).Once()
			},
			wantErr:      true,
			errCode:      constant.ErrWorkflowNotFound,
			wantRedirect: constant.PathLogin,
		},
		{
			name: "error: expired workflow is removed",
			req:  &model.VerifyOTPRequest{Token: "wf-1", OTP: "123456"},
			mockCall: func(f otpFields) {
				wf := pendingRegistration()
				wf.ExpiresAt = time.Now().Add(-time.Second)
				f.redisRepo.On("GetWorkflow", mock.Anything, "wf-1").Return(wf, nil).Once()
				f.redisRepo.On("DeleteWorkflow", mock.Anything, "wf-1").Return(nil).Once()
			},
			wantErr:      true,
			errCode:      constant.ErrWorkflowNotFound,
			wantRedirect: constant.PathLogin,
		},
		{
			name: "error: reset already verified",
			req:  &model.VerifyOTPRequest{Token: "wf-1", OTP: "123456"},
			mockCall: func(f otpFields) {
				f.redisRepo.On("GetWorkflow", mock.Anything, "wf-1").Return(resetComplete(), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidWorkflowState,
		},
		{
			name: "error: email registered meanwhile",
			req:  &model.VerifyOTPRequest{Token: "wf-1", OTP: "123456"},
			mockCall: func(f otpFields) {
				f.redisRepo.On("GetWorkflow", mock.Anything, "wf-1").Return(pendingRegistration(), nil).Once()
				f.userRepo.On("Create", mock.Anything, mock.Anything).Return(nil, userrepo.ErrDuplicateEmail).Once()
				f.redisRepo.On("DeleteWorkflow", mock.Anything, "wf-1").Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: workflow store failure",
			req:  &model.VerifyOTPRequest{Token: "wf-1", OTP: "123456"},
			mockCall: func(f otpFields) {
				f.redisRepo.On("GetWorkflow", mock.Anything, "wf-1").Return(nil, errors.New("redis down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newOTPFields(t)
			tt.mockCall(f)

			got, err := f.app().VerifyOTP(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("VerifyOTP() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				if tt.wantRedirect != "" {
					assertRedirect(t, err, tt.wantRedirect)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("VerifyOTP() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUserApp_VerifyOTP_NoAttemptLimit(t *testing.T) {
	for _, code := range []string{"654321", "12ab", "1234567"} {
		code := code
		t.Run(code, func(t *testing.T) {
			f := newOTPFields(t)
			stored := pendingRegistration()
			f.redisRepo.On("GetWorkflow", mock.Anything, "wf-1").Return(stored, nil).Once()

			cfg := testConfig()
			cfg.OTP.MaxVerifyAttempts = 0
			app := appuser.NewUserApp(cfg, f.userRepo, f.redisRepo, f.mailer)

			_, err := app.VerifyOTP(context.Background(), &model.VerifyOTPRequest{Token: "wf-1", OTP: code})
			assertErrCode(t, err, constant.ErrInvalidOTP)
			f.redisRepo.AssertNotCalled(t, "UpdateWorkflow", mock.Anything, mock.Anything)
			f.redisRepo.AssertNotCalled(t, "DeleteWorkflow", mock.Anything, mock.Anything)
			if stored.Attempts != 0 {
				t.Fatalf("workflow attempts = %d, want 0", stored.Attempts)
			}
		})
	}
}

func TestUserApp_VerifyOTP_MalformedCodeCountsAttempt(t *testing.T) {
	f := newOTPFields(t)
	f.redisRepo.On("GetWorkflow", mock.Anything, "wf-1").Return(pendingRegistration(), nil).Once()
	f.redisRepo.On("UpdateWorkflow", mock.Anything, mock.MatchedBy(func(wf *model.Workflow) bool {
		return wf.Attempts == 1 && wf.Code == "123456"
	})).Return(nil).Once()

	_, err := f.app().VerifyOTP(context.Background(), &model.VerifyOTPRequest{Token: "wf-1", OTP: "12ab"})
	assertErrCode(t, err, constant.ErrInvalidOTP)
}

func TestUserApp_ResendOTP(t *testing.T) {
	tests := []struct {
		name         string
		mockCall     func(f otpFields)
		wantErr      bool
		errCode      constant.ErrorType
		wantRedirect string
	}{
		{
			name: "success: new code replaces the old one",
			mockCall: func(f otpFields) {
				wf := pendingRegistration()
				wf.Attempts = 2
				f.redisRepo.On("GetWorkflow", mock.Anything, "wf-1").Return(wf, nil).Once()
				f.redisRepo.On("SaveWorkflow", mock.Anything, mock.MatchedBy(func(wf *model.Workflow) bool {
					return wf.Attempts == 0 &&
						wf.Code != "123456" &&
						len(wf.Code) == constant.OTPLength &&
						time.Until(wf.ExpiresAt) > 9*time.Minute
				}), 10*time.Minute).Return(nil).Once()
				f.mailer.On("Send", mock.Anything, mock.MatchedBy(func(e mailer.Email) bool {
					return e.Subject == "New OTP Code" && strings.HasPrefix(e.Body, "Your new OTP is: ")
				})).Return(&mailer.DispatchResult{StatusCode: mailer.StatusOK}, nil).Once()
				f.redisRepo.On("UpdateWorkflow", mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name: "error: resend inside cooldown",
			mockCall: func(f otpFields) {
				wf := pendingRegistration()
				wf.LastSentAt = time.Now().UTC().Add(-5 * time.Second)
				f.redisRepo.On("GetWorkflow", mock.Anything, "wf-1").Return(wf, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrResendTooSoon,
		},
		{
			name: "error: missing workflow redirects to register",
			mockCall: func(f otpFields) {
				f.redisRepo.On("GetWorkflow", mock.Anything, "wf-1").Return(nil, nil).Once()
			},
			wantErr:      true,
			errCode:      constant.ErrWorkflowNotFound,
			wantRedirect: constant.PathRegister,
		},
		{
			name: "error: nothing pending",
			mockCall: func(f otpFields) {
				f.redisRepo.On("GetWorkflow", mock.Anything, "wf-1").Return(resetComplete(), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidWorkflowState,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newOTPFields(t)
			tt.mockCall(f)

			got, err := f.app().ResendOTP(context.Background(), &model.ResendOTPRequest{Token: "wf-1"})
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResendOTP() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				if tt.wantRedirect != "" {
					assertRedirect(t, err, tt.wantRedirect)
				}
				return
			}
			if got.Token != "wf-1" || got.Next != constant.PathVerifyOTP {
				t.Fatalf("ResendOTP() = %+v", got)
			}
		})
	}
}

func TestUserApp_ForgotPassword(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(f otpFields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: reset code sent",
			mockCall: func(f otpFields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "asha@example.com"}).
					Return(&model.UserEntity{ID: 1, Email: "asha@example.com"}, nil).Once()
				f.redisRepo.On("SaveWorkflow", mock.Anything, mock.MatchedBy(func(wf *model.Workflow) bool {
					return wf.Flow == constant.FlowPasswordReset &&
						wf.State == constant.StatePendingResetOTP &&
						wf.PasswordHash == ""
				}), 10*time.Minute).Return(nil).Once()
				f.mailer.On("Send", mock.Anything, mock.MatchedBy(func(e mailer.Email) bool {
					return e.Subject == "Password Reset OTP" && otpBody.MatchString(e.Body)
				})).Return(&mailer.DispatchResult{StatusCode: mailer.StatusOK}, nil).Once()
				f.redisRepo.On("UpdateWorkflow", mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name: "error: unknown email",
			mockCall: func(f otpFields) {
				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newOTPFields(t)
			tt.mockCall(f)

			got, err := f.app().ForgotPassword(context.Background(), &model.ForgotPasswordRequest{Email: "asha@example.com"})
			if (err != nil) != tt.wantErr {
				t.Fatalf("ForgotPassword() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.Flow != constant.FlowPasswordReset || got.Next != constant.PathVerifyOTP {
				t.Fatalf("ForgotPassword() = %+v", got)
			}
		})
	}
}

func TestUserApp_ResetPassword(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.ResetPasswordRequest
		mockCall func(f otpFields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: password replaced",
			req:  &model.ResetPasswordRequest{Token: "wf-1", Password: "newpass1", ConfirmPassword: "newpass1"},
			mockCall: func(f otpFields) {
				f.redisRepo.On("GetWorkflow", mock.Anything, "wf-1").Return(resetComplete(), nil).Once()
				f.userRepo.On("UpdatePassword", mock.Anything, "asha@example.com", mock.MatchedBy(func(hash string) bool {
					return bcrypt.CompareHashAndPassword([]byte(hash), []byte("newpass1")) == nil
				})).Return(nil).Once()
				f.redisRepo.On("DeleteWorkflow", mock.Anything, "wf-1").Return(nil).Once()
			},
		},
		{
			name: "error: passwords differ",
			req:  &model.ResetPasswordRequest{Token: "wf-1", Password: "newpass1", ConfirmPassword: "newpass2"},
			mockCall: func(f otpFields) {
				f.redisRepo.On("GetWorkflow", mock.Anything, "wf-1").Return(resetComplete(), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrPasswordMismatch,
		},
		{
			name: "error: code not verified yet",
			req:  &model.ResetPasswordRequest{Token: "wf-1", Password: "newpass1", ConfirmPassword: "newpass1"},
			mockCall: func(f otpFields) {
				f.redisRepo.On("GetWorkflow", mock.Anything, "wf-1").Return(pendingReset(), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidWorkflowState,
		},
		{
			name: "error: account vanished",
			req:  &model.ResetPasswordRequest{Token: "wf-1", Password: "newpass1", ConfirmPassword: "newpass1"},
			mockCall: func(f otpFields) {
				f.redisRepo.On("GetWorkflow", mock.Anything, "wf-1").Return(resetComplete(), nil).Once()
				f.userRepo.On("UpdatePassword", mock.Anything, "asha@example.com", mock.Anything).Return(sql.ErrNoRows).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: missing workflow",
			req:  &model.ResetPasswordRequest{Token: "wf-1", Password: "newpass1", ConfirmPassword: "newpass1"},
			mockCall: func(f otpFields) {
				f.redisRepo.On("GetWorkflow", mock.Anything, "wf-1").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrWorkflowNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newOTPFields(t)
			tt.mockCall(f)

			got, err := f.app().ResetPassword(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResetPassword() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.Next != constant.PathLogin {
				t.Fatalf("ResetPassword() next = %s, want %s", got.Next, constant.PathLogin)
			}
		})
	}
}

func TestUserApp_GetWorkflow(t *testing.T) {
	f := newOTPFields(t)
	wf := pendingReset()
	f.redisRepo.On("GetWorkflow", mock.Anything, "wf-1").Return(wf, nil).Once()
	f.redisRepo.On("GetWorkflow", mock.Anything, "gone").Return(nil, nil).Once()

	got, err := f.app().GetWorkflow(context.Background(), "wf-1")
	if err != nil {
		t.Fatalf("GetWorkflow() error = %v", err)
	}
	want := &model.WorkflowStatusResponse{Flow: wf.Flow, State: wf.State, Email: wf.Email, ExpiresAt: wf.ExpiresAt}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("GetWorkflow() = %+v, want %+v", got, want)
	}

	_, err = f.app().GetWorkflow(context.Background(), "gone")
	assertErrCode(t, err, constant.ErrWorkflowNotFound)

	_, err = f.app().GetWorkflow(context.Background(), "")
	assertErrCode(t, err, constant.ErrWorkflowNotFound)
}
