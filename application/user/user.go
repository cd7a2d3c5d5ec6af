package user

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/srisatyasai136/review/cmd/config"
	"github.com/srisatyasai136/review/constant"
	"github.com/srisatyasai136/review/model"
	redisrepo "github.com/srisatyasai136/review/repository/redis"
	userrepo "github.com/srisatyasai136/review/repository/user"
	"github.com/srisatyasai136/review/thirdparty/mailer"
	"github.com/srisatyasai136/review/utils/errors"
	"github.com/srisatyasai136/review/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// PathClasses is where a freshly logged in user lands.
const PathClasses = "/classes"

type UserApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.OTPChallengeResponse, error)
	VerifyOTP(ctx context.Context, req *model.VerifyOTPRequest) (*model.VerifyOTPResponse, error)
	ResendOTP(ctx context.Context, req *model.ResendOTPRequest) (*model.OTPChallengeResponse, error)
	ForgotPassword(ctx context.Context, req *model.ForgotPasswordRequest) (*model.OTPChallengeResponse, error)
	ResetPassword(ctx context.Context, req *model.ResetPasswordRequest) (*model.NextResponse, error)
	GetWorkflow(ctx context.Context, token string) (*model.WorkflowStatusResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Logout(ctx context.Context, sessionID string) error
	ValidateToken(ctx context.Context, tokenString string) (*model.Session, error)
	GetAccount(ctx context.Context, userID uint64) (*model.AccountResponse, error)
}

type UserAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	redisRepo redisrepo.Repository
	mailer    mailer.Gateway
}

func NewUserApp(config *config.Config, userRepo userrepo.UserRepository, redisRepo redisrepo.Repository, mailer mailer.Gateway) UserApp {
	return &UserAppImpl{
		config:    config,
		userRepo:  userRepo,
		redisRepo: redisRepo,
		mailer:    mailer,
	}
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: normalizeEmail(req.Email)})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// unknown email and wrong password share one error
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidCredential)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidCredential)
	}

	token, jti, err := s.generateJWT(user.ID)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	err = s.redisRepo.SetSession(ctx, jti, user.ID, s.config.Auth.SessionExpTime)
	if err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		Name:  user.Name,
		Email: user.Email,
		Token: token,
		Next:  PathClasses,
	}, nil
}

func (s *UserAppImpl) Logout(ctx context.Context, sessionID string) error {
	if err := s.redisRepo.DeleteSession(ctx, sessionID); err != nil {
		logger.Error("[Logout] err DeleteSession", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (*model.Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid user id in token")
	}

	jti := claims.ID
	if jti == "" {
		return nil, fmt.Errorf("token missing jti")
	}

	redisUserID, err := s.redisRepo.GetSession(ctx, jti)
	if err != nil {
		return nil, fmt.Errorf("invalid or expired session")
	}
	if redisUserID != userID {
		return nil, fmt.Errorf("token does not match user session")
	}

	return &model.Session{UserID: userID, SessionID: jti}, nil
}

func (s *UserAppImpl) GetAccount(ctx context.Context, userID uint64) (*model.AccountResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[GetAccount] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	return &model.AccountResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
	}, nil
}

// generateJWT creates a JWT token for the user
func (s *UserAppImpl) generateJWT(userID uint64) (string, string, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return "", "", fmt.Errorf("failed to generate jti: %w", err)
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
