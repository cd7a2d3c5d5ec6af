package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	redisclient "github.com/srisatyasai136/review/cmd/redis"
	"github.com/srisatyasai136/review/model"
)

const (
	sessionPrefix  = "session:"
	workflowPrefix = "workflow:"
)

var errNoClient = errors.New("redis client not initialized")

// ErrWorkflowExpired is returned by UpdateWorkflow when the key is gone.
var ErrWorkflowExpired = errors.New("workflow expired")

// Repository defines methods for interacting with Redis key-values
type Repository interface {
	SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	DeleteSession(ctx context.Context, sessionID string) error
	SaveWorkflow(ctx context.Context, wf *model.Workflow, ttl time.Duration) error
	UpdateWorkflow(ctx context.Context, wf *model.Workflow) error
	GetWorkflow(ctx context.Context, token string) (*model.Workflow, error)
	DeleteWorkflow(ctx context.Context, token string) error
}

type redis struct {
	client func() *goredis.Client
}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{client: redisclient.Get}
}

// SetSession stores a session with userID and TTL
func (r *redis) SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error {
	client := r.client()
	if client == nil {
		return errNoClient
	}
	return client.Set(ctx, sessionPrefix+sessionID, userID, ttl).Err()
}

// GetSession retrieves userID from session
func (r *redis) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	client := r.client()
	if client == nil {
		return 0, errNoClient
	}
	val, err := client.Get(ctx, sessionPrefix+sessionID).Uint64()
	if err != nil {
		return 0, err
	}
	return val, nil
}

// DeleteSession removes a session from Redis
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	client := r.client()
	if client == nil {
		return errNoClient
	}
	return client.Del(ctx, sessionPrefix+sessionID).Err()
}

// SaveWorkflow writes the workflow and (re)sets its expiry.
func (r *redis) SaveWorkflow(ctx context.Context, wf *model.Workflow, ttl time.Duration) error {
	client := r.client()
	if client == nil {
		return errNoClient
	}
	body, err := json.Marshal(wf)
	if err != nil {
		return fmt.Errorf("marshal workflow: %w", err)
	}
	return client.Set(ctx, workflowPrefix+wf.Token, body, ttl).Err()
}

// UpdateWorkflow overwrites the workflow keeping the remaining TTL. A key that
// expired in the meantime is not recreated.
func (r *redis) UpdateWorkflow(ctx context.Context, wf *model.Workflow) error {
	client := r.client()
	if client == nil {
		return errNoClient
	}
	body, err := json.Marshal(wf)
	if err != nil {
		return fmt.Errorf("marshal workflow: %w", err)
	}
	err = client.SetArgs(ctx, workflowPrefix+wf.Token, body, goredis.SetArgs{
		Mode:    "XX",
		KeepTTL: true,
	}).Err()
	if errors.Is(err, goredis.Nil) {
		return ErrWorkflowExpired
	}
	return err
}

// GetWorkflow returns nil without error when the token is unknown or expired.
func (r *redis) GetWorkflow(ctx context.Context, token string) (*model.Workflow, error) {
	client := r.client()
	if client == nil {
		return nil, errNoClient
	}
	body, err := client.Get(ctx, workflowPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var wf model.Workflow
	if err := json.Unmarshal(body, &wf); err != nil {
		return nil, fmt.Errorf("unmarshal workflow: %w", err)
	}
	return &wf, nil
}

func (r *redis) DeleteWorkflow(ctx context.Context, token string) error {
	client := r.client()
	if client == nil {
		return errNoClient
	}
	return client.Del(ctx, workflowPrefix+token).Err()
}
