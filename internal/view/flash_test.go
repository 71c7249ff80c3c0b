package view_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/nfrund/learnhub/internal/notify"
	"github.com/nfrund/learnhub/internal/view"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

func setupTestContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	store := sessions.NewCookieStore([]byte(testSessionSecret))

	var c echo.Context
	handler := func(ctx echo.Context) error { c = ctx; return nil }
	_ = session.Middleware(store)(handler)(e.NewContext(req, rec))
	return c
}

func TestFlashMessages(t *testing.T) {
	t.Run("success flash is read once", func(t *testing.T) {
		c := setupTestContext()
		view.SetFlashSuccess(c, "It worked!")

		flashes := view.GetFlashData(c)
		assert.Equal(t, []string{"It worked!"}, flashes.Success)
		assert.Empty(t, flashes.Error)

		assert.True(t, view.GetFlashData(c).Empty(), "flashes are cleared after being read")
	})

	t.Run("all kinds", func(t *testing.T) {
		c := setupTestContext()
		view.SetFlashSuccess(c, "s")
		view.SetFlashError(c, "e")
		view.SetFlashWarning(c, "w")
		view.SetFlashInfo(c, "i")

		msgs := view.GetFlashData(c).Messages()
		assert.Equal(t, []view.Message{
			{Kind: notify.Error, Text: "e"},
			{Kind: notify.Warning, Text: "w"},
			{Kind: notify.Info, Text: "i"},
			{Kind: notify.Success, Text: "s"},
		}, msgs)
	})

	t.Run("notice keeps its kind", func(t *testing.T) {
		c := setupTestContext()
		view.Flash(c, notify.Notice{Kind: notify.Warning, Message: "log in"})
		assert.Equal(t, []string{"log in"}, view.GetFlashData(c).Warning)
	})

	t.Run("no flashes", func(t *testing.T) {
		c := setupTestContext()
		assert.True(t, view.GetFlashData(c).Empty())
	})

	t.Run("form value survives one read", func(t *testing.T) {
		c := setupTestContext()
		view.KeepFormValue(c, "username", "mai")
		assert.Equal(t, "mai", view.FormValue(c, "username"))
		assert.Empty(t, view.FormValue(c, "username"))
	})
}
