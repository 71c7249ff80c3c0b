package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set, skipping redis session store test")
	}

	client, err := NewRedisClient(context.Background(), addr, os.Getenv("REDIS_TEST_PASSWORD"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisStore(client, nil, []byte(testSecret))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	sess, err := store.New(req, Name)
	require.NoError(t, err)
	assert.True(t, sess.IsNew)

	sess.Values["token"] = "tok"
	rec := httptest.NewRecorder()
	require.NoError(t, store.Save(req, rec, sess))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	next.AddCookie(cookies[0])
	loaded, err := store.New(next, Name)
	require.NoError(t, err)
	assert.False(t, loaded.IsNew)
	assert.Equal(t, "tok", loaded.Values["token"])

	loaded.Options.MaxAge = -1
	require.NoError(t, store.Save(next, httptest.NewRecorder(), loaded))

	gone, err := store.New(next, Name)
	require.NoError(t, err)
	assert.True(t, gone.IsNew)
}
