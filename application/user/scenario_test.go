package user_test

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	appuser "github.com/srisatyasai136/review/application/user"
	"github.com/srisatyasai136/review/constant"
	"github.com/srisatyasai136/review/model"
	redisrepo "github.com/srisatyasai136/review/repository/redis"
	userrepo "github.com/srisatyasai136/review/repository/user"
	"github.com/srisatyasai136/review/thirdparty/mailer"
)

type memUsers struct {
	mu     sync.Mutex
	nextID uint64
	users  map[string]*model.UserEntity
}

func (m *memUsers) Create(_ context.Context, u *model.UserEntity) (*model.UserEntity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[u.Email]; ok {
		return nil, userrepo.ErrDuplicateEmail
	}
	m.nextID++
	stored := *u
	stored.ID = m.nextID
	m.users[u.Email] = &stored
	return &stored, nil
}

func (m *memUsers) Get(_ context.Context, f *model.UserFilter) (*model.UserEntity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if (f.Email != "" && u.Email == f.Email) || (f.ID != 0 && u.ID == f.ID) {
			found := *u
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memUsers) UpdatePassword(_ context.Context, email, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		return sql.ErrNoRows
	}
	u.PasswordHash = hash
	return nil
}

type memRedis struct {
	mu        sync.Mutex
	sessions  map[string]uint64
	workflows map[string]model.Workflow
}

func (m *memRedis) SetSession(_ context.Context, id string, userID uint64, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = userID
	return nil
}

func (m *memRedis) GetSession(_ context.Context, id string) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	userID, ok := m.sessions[id]
	if !ok {
		return 0, errors.New("session not found")
	}
	return userID, nil
}

func (m *memRedis) DeleteSession(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *memRedis) SaveWorkflow(_ context.Context, wf *model.Workflow, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.workflows[wf.Token] = *wf
	return nil
}

func (m *memRedis) UpdateWorkflow(_ context.Context, wf *model.Workflow) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.workflows[wf.Token]; !ok {
		return redisrepo.ErrWorkflowExpired
	}
	m.workflows[wf.Token] = *wf
	return nil
}

func (m *memRedis) GetWorkflow(_ context.Context, token string) (*model.Workflow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	wf, ok := m.workflows[token]
	if !ok {
		return nil, nil
	}
	return &wf, nil
}

func (m *memRedis) DeleteWorkflow(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.workflows, token)
	return nil
}

type memGateway struct {
	sent []mailer.Email
}

func (g *memGateway) Send(_ context.Context, e mailer.Email) (*mailer.DispatchResult, error) {
	g.sent = append(g.sent, e)
	return &mailer.DispatchResult{StatusCode: mailer.StatusOK}, nil
}

// lastCode reads the code from the most recent email body.
func (g *memGateway) lastCode(t *testing.T) string {
	t.Helper()
	if len(g.sent) == 0 {
		t.Fatalf("no email sent")
	}
	body := g.sent[len(g.sent)-1].Body
	return body[len(body)-constant.OTPLength:]
}

type harness struct {
	app     appuser.UserApp
	users   *memUsers
	redis   *memRedis
	gateway *memGateway
}

func newHarness() *harness {
	cfg := testConfig()
	cfg.OTP.ResendCooldown = 0
	h := &harness{
		users:   &memUsers{users: map[string]*model.UserEntity{}},
		redis:   &memRedis{sessions: map[string]uint64{}, workflows: map[string]model.Workflow{}},
		gateway: &memGateway{},
	}
	h.app = appuser.NewUserApp(cfg, h.users, h.redis, h.gateway)
	return h
}

func wrongCode(code string) string {
	if code == "000000" {
		return "111111"
	}
	return "000000"
}

func TestScenario_RegisterVerifyLogin(t *testing.T) {
	ctx := context.Background()
	h := newHarness()

	challenge, err := h.app.Register(ctx, &model.RegisterRequest{
		Name: "Asha", Email: "asha@example.com", Mobile: "9000000000", Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if got := h.gateway.sent[0].Subject; got != "Verify Email OTP" {
		t.Fatalf("subject = %q", got)
	}
	if u, _ := h.users.Get(ctx, &model.UserFilter{Email: "asha@example.com"}); u != nil {
		t.Fatalf("account created before verification")
	}

	code := h.gateway.lastCode(t)
	_, err = h.app.VerifyOTP(ctx, &model.VerifyOTPRequest{Token: challenge.Token, OTP: wrongCode(code)})
	assertErrCode(t, err, constant.ErrInvalidOTP)
	if u, _ := h.users.Get(ctx, &model.UserFilter{Email: "asha@example.com"}); u != nil {
		t.Fatalf("account created on a wrong code")
	}

	verified, err := h.app.VerifyOTP(ctx, &model.VerifyOTPRequest{Token: challenge.Token, OTP: code})
	if err != nil {
		t.Fatalf("VerifyOTP() error = %v", err)
	}
	if verified.State != constant.StateRegistered || verified.Next != constant.PathLogin {
		t.Fatalf("VerifyOTP() = %+v", verified)
	}
	if wf, _ := h.redis.GetWorkflow(ctx, challenge.Token); wf != nil {
		t.Fatalf("workflow kept after registration")
	}

	_, err = h.app.Register(ctx, &model.RegisterRequest{
		Name: "Asha", Email: "asha@example.com", Mobile: "9000000000", Password: "secret1",
	})
	assertErrCode(t, err, constant.ErrCredentialExists)

	login, err := h.app.Login(ctx, &model.LoginRequest{Email: "asha@example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	session, err := h.app.ValidateToken(ctx, login.Token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if err := h.app.Logout(ctx, session.SessionID); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if _, err := h.app.ValidateToken(ctx, login.Token); err == nil {
		t.Fatalf("token still valid after logout")
	}
}

func TestScenario_ResendInvalidatesPreviousCode(t *testing.T) {
	ctx := context.Background()
	h := newHarness()

	challenge, err := h.app.Register(ctx, &model.RegisterRequest{
		Name: "Ravi", Email: "ravi@example.com", Mobile: "9111111111", Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	first := h.gateway.lastCode(t)

	if _, err := h.app.ResendOTP(ctx, &model.ResendOTPRequest{Token: challenge.Token}); err != nil {
		t.Fatalf("ResendOTP() error = %v", err)
	}
	second := h.gateway.lastCode(t)
	if h.gateway.sent[1].Subject != "New OTP Code" {
		t.Fatalf("subject = %q", h.gateway.sent[1].Subject)
	}

	if first != second {
		_, err = h.app.VerifyOTP(ctx, &model.VerifyOTPRequest{Token: challenge.Token, OTP: first})
		assertErrCode(t, err, constant.ErrInvalidOTP)
	}
	if _, err := h.app.VerifyOTP(ctx, &model.VerifyOTPRequest{Token: challenge.Token, OTP: second}); err != nil {
		t.Fatalf("VerifyOTP() error = %v", err)
	}
}

func TestScenario_ForgotAndResetPassword(t *testing.T) {
	ctx := context.Background()
	h := newHarness()
	if _, err := h.users.Create(ctx, &model.UserEntity{Name: "Meera", Email: "meera@example.com", PasswordHash: hashPassword(t, "oldpass")}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	_, err := h.app.ForgotPassword(ctx, &model.ForgotPasswordRequest{Email: "unknown@example.com"})
	assertErrCode(t, err, constant.ErrNotFound)

	challenge, err := h.app.ForgotPassword(ctx, &model.ForgotPasswordRequest{Email: "meera@example.com"})
	if err != nil {
		t.Fatalf("ForgotPassword() error = %v", err)
	}

	// the reset form stays locked until the code is verified
	_, err = h.app.ResetPassword(ctx, &model.ResetPasswordRequest{Token: challenge.Token, Password: "newpass", ConfirmPassword: "newpass"})
	assertErrCode(t, err, constant.ErrInvalidWorkflowState)

	verified, err := h.app.VerifyOTP(ctx, &model.VerifyOTPRequest{Token: challenge.Token, OTP: h.gateway.lastCode(t)})
	if err != nil {
		t.Fatalf("VerifyOTP() error = %v", err)
	}
	if verified.Next != constant.PathResetPassword {
		t.Fatalf("next = %s", verified.Next)
	}
	if _, err := h.app.Login(ctx, &model.LoginRequest{Email: "meera@example.com", Password: "oldpass"}); err != nil {
		t.Fatalf("password changed by verification alone: %v", err)
	}

	_, err = h.app.ResetPassword(ctx, &model.ResetPasswordRequest{Token: challenge.Token, Password: "newpass", ConfirmPassword: "other"})
	assertErrCode(t, err, constant.ErrPasswordMismatch)

	if _, err := h.app.ResetPassword(ctx, &model.ResetPasswordRequest{Token: challenge.Token, Password: "newpass", ConfirmPassword: "newpass"}); err != nil {
		t.Fatalf("ResetPassword() error = %v", err)
	}

	_, err = h.app.Login(ctx, &model.LoginRequest{Email: "meera@example.com", Password: "oldpass"})
	assertErrCode(t, err, constant.ErrInvalidCredential)
	if _, err := h.app.Login(ctx, &model.LoginRequest{Email: "meera@example.com", Password: "newpass"}); err != nil {
		t.Fatalf("Login() with new password error = %v", err)
	}

	_, err = h.app.ResetPassword(ctx, &model.ResetPasswordRequest{Token: challenge.Token, Password: "again1", ConfirmPassword: "again1"})
	assertErrCode(t, err, constant.ErrWorkflowNotFound)
}
