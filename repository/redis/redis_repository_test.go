package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/srisatyasai136/review/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_NoClient(t *testing.T) {
	r := &redis{client: func() *goredis.Client { return nil }}
	ctx := context.Background()

	assert.ErrorIs(t, r.SetSession(ctx, "jti", 1, time.Minute), errNoClient)
	_, err := r.GetSession(ctx, "jti")
	assert.ErrorIs(t, err, errNoClient)
	assert.ErrorIs(t, r.DeleteSession(ctx, "jti"), errNoClient)

	wf := &model.Workflow{Token: "t"}
	assert.ErrorIs(t, r.SaveWorkflow(ctx, wf, time.Minute), errNoClient)
	assert.ErrorIs(t, r.UpdateWorkflow(ctx, wf), errNoClient)
	_, err = r.GetWorkflow(ctx, "t")
	assert.ErrorIs(t, err, errNoClient)
	assert.ErrorIs(t, r.DeleteWorkflow(ctx, "t"), errNoClient)
}

func newMiniredisRepo(t *testing.T) (*redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return &redis{client: func() *goredis.Client { return client }}, mr
}

func TestRepository_Workflow(t *testing.T) {
	ctx := context.Background()
	key := workflowPrefix + "wf-1"

	tests := []struct {
		name string
		run  func(t *testing.T, r *redis, mr *miniredis.Miniredis)
	}{
		{
			name: "save sets the key ttl",
			run: func(t *testing.T, r *redis, mr *miniredis.Miniredis) {
				require.NoError(t, r.SaveWorkflow(ctx, &model.Workflow{Token: "wf-1", Code: "123456"}, 10*time.Minute))
				assert.Equal(t, 10*time.Minute, mr.TTL(key))

				got, err := r.GetWorkflow(ctx, "wf-1")
				require.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, "123456", got.Code)
			},
		},
		{
			name: "update keeps the remaining ttl",
			run: func(t *testing.T, r *redis, mr *miniredis.Miniredis) {
				require.NoError(t, r.SaveWorkflow(ctx, &model.Workflow{Token: "wf-1"}, 10*time.Minute))
				mr.FastForward(4 * time.Minute)

				require.NoError(t, r.UpdateWorkflow(ctx, &model.Workflow{Token: "wf-1", Attempts: 1}))
				assert.Equal(t, 6*time.Minute, mr.TTL(key))

				got, err := r.GetWorkflow(ctx, "wf-1")
				require.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, 1, got.Attempts)
			},
		},
		{
			name: "update does not recreate an expired key",
			run: func(t *testing.T, r *redis, mr *miniredis.Miniredis) {
				require.NoError(t, r.SaveWorkflow(ctx, &model.Workflow{Token: "wf-1"}, time.Minute))
				mr.FastForward(2 * time.Minute)

				err := r.UpdateWorkflow(ctx, &model.Workflow{Token: "wf-1", Attempts: 1})
				assert.ErrorIs(t, err, ErrWorkflowExpired)
				assert.False(t, mr.Exists(key))
			},
		},
		{
			name: "update of an unknown token fails",
			run: func(t *testing.T, r *redis, mr *miniredis.Miniredis) {
				err := r.UpdateWorkflow(ctx, &model.Workflow{Token: "wf-1"})
				assert.ErrorIs(t, err, ErrWorkflowExpired)
				assert.False(t, mr.Exists(key))
			},
		},
		{
			name: "get of an unknown token returns nil",
			run: func(t *testing.T, r *redis, mr *miniredis.Miniredis) {
				got, err := r.GetWorkflow(ctx, "missing")
				require.NoError(t, err)
				assert.Nil(t, got)
			},
		},
		{
			name: "get after expiry returns nil",
			run: func(t *testing.T, r *redis, mr *miniredis.Miniredis) {
				require.NoError(t, r.SaveWorkflow(ctx, &model.Workflow{Token: "wf-1"}, time.Minute))
				mr.FastForward(time.Minute + time.Second)

				got, err := r.GetWorkflow(ctx, "wf-1")
				require.NoError(t, err)
				assert.Nil(t, got)
			},
		},
		{
			name: "get of a corrupt value fails",
			run: func(t *testing.T, r *redis, mr *miniredis.Miniredis) {
				require.NoError(t, mr.Set(key, "{not json"))

				_, err := r.GetWorkflow(ctx, "wf-1")
				assert.Error(t, err)
			},
		},
		{
			name: "delete removes the workflow",
			run: func(t *testing.T, r *redis, mr *miniredis.Miniredis) {
				require.NoError(t, r.SaveWorkflow(ctx, &model.Workflow{Token: "wf-1"}, time.Minute))
				require.NoError(t, r.DeleteWorkflow(ctx, "wf-1"))
				assert.False(t, mr.Exists(key))
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r, mr := newMiniredisRepo(t)
			tt.run(t, r, mr)
		})
	}
}

func TestRepository_Session(t *testing.T) {
	ctx := context.Background()
	r, mr := newMiniredisRepo(t)

	require.NoError(t, r.SetSession(ctx, "jti", 42, time.Hour))
	assert.Equal(t, time.Hour, mr.TTL(sessionPrefix+"jti"))

	got, err := r.GetSession(ctx, "jti")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), got)

	require.NoError(t, r.DeleteSession(ctx, "jti"))
	_, err = r.GetSession(ctx, "jti")
	assert.ErrorIs(t, err, goredis.Nil)
}
