package view

import (
	"github.com/labstack/echo/v4"

	"github.com/nfrund/learnhub/internal/notify"
	"github.com/nfrund/learnhub/internal/session"
)

const (
	flashSessionName = "flash-session"
	formValuePrefix  = "form_"
)

// FlashData holds the flash messages of one request, by kind.
type FlashData struct {
	Success []string
	Error   []string
	Warning []string
	Info    []string
}

// Message is a single flash with its kind, in display order.
type Message struct {
	Kind notify.Kind
	Text string
}

// Messages flattens the flashes: errors first, then warnings, info and
// successes.
func (f FlashData) Messages() []Message {
	var out []Message
	add := func(kind notify.Kind, texts []string) {
		for _, t := range texts {
			out = append(out, Message{Kind: kind, Text: t})
		}
	}
	add(notify.Error, f.Error)
	add(notify.Warning, f.Warning)
	add(notify.Info, f.Info)
	add(notify.Success, f.Success)
	return out
}

func (f FlashData) Empty() bool {
	return len(f.Success)+len(f.Error)+len(f.Warning)+len(f.Info) == 0
}

func setFlash(c echo.Context, kind notify.Kind, message string) {
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		c.Logger().Warnf("flash session unavailable: %v", err)
		return
	}
	sess.AddFlash(message, string(kind))
	_ = sess.Save(c.Request(), c.Response())
}

func SetFlashSuccess(c echo.Context, message string) { setFlash(c, notify.Success, message) }
func SetFlashError(c echo.Context, message string)   { setFlash(c, notify.Error, message) }
func SetFlashWarning(c echo.Context, message string) { setFlash(c, notify.Warning, message) }
func SetFlashInfo(c echo.Context, message string)    { setFlash(c, notify.Info, message) }

// Flash stores a notice as a flash of its kind.
func Flash(c echo.Context, n notify.Notice) {
	setFlash(c, n.Kind, n.Message)
}

// GetFlashData retrieves and clears the flash messages.
func GetFlashData(c echo.Context) FlashData {
	var data FlashData
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return data
	}

	data.Success = toStrings(sess.Flashes(string(notify.Success)))
	data.Error = toStrings(sess.Flashes(string(notify.Error)))
	data.Warning = toStrings(sess.Flashes(string(notify.Warning)))
	data.Info = toStrings(sess.Flashes(string(notify.Info)))

	if !data.Empty() {
		_ = sess.Save(c.Request(), c.Response())
	}
	return data
}

// KeepFormValue remembers a submitted field for the next render of a form.
func KeepFormValue(c echo.Context, field, value string) {
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return
	}
	sess.AddFlash(value, formValuePrefix+field)
	_ = sess.Save(c.Request(), c.Response())
}

// FormValue returns and clears a value kept with KeepFormValue.
func FormValue(c echo.Context, field string) string {
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return ""
	}
	values := toStrings(sess.Flashes(formValuePrefix + field))
	if len(values) == 0 {
		return ""
	}
	_ = sess.Save(c.Request(), c.Response())
	return values[0]
}

func toStrings(values []interface{}) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
