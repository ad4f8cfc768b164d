// Package notify carries the one-at-a-time toast shown after an action.
//
// A notification rides in a single flash cookie between the POST that
// produced it and the page that shows it. Setting a new one replaces any
// pending one; reading it clears the slot.
package notify

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
)

type Level string

const (
	Success Level = "success"
	Error   Level = "error"
	Warning Level = "warning"
	Info    Level = "info"
)

// DismissAfter is how long a notification stays on screen.
const DismissAfter = 5 * time.Second

const cookieName = "portfolio_notice"

type Notification struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

func New(level Level, message string) Notification {
	return Notification{Level: level, Message: message}
}

// OK reports whether the notification announces a completed action.
func (n Notification) OK() bool { return n.Level == Success }

// Icon is the font-awesome class for the level.
func (l Level) Icon() string {
	switch l {
	case Success:
		return "fa-check-circle"
	case Error:
		return "fa-exclamation-circle"
	case Warning:
		return "fa-exclamation-triangle"
	default:
		return "fa-info-circle"
	}
}

// Set stores n as the pending notification, replacing any previous one.
func Set(c *gin.Context, n Notification) {
	data, err := json.Marshal(n)
	if err != nil {
		return
	}
	c.SetCookie(cookieName, base64.RawURLEncoding.EncodeToString(data), int(time.Minute.Seconds()), "/", "", false, true)
}

// Pop returns the pending notification, if any, and clears it.
func Pop(c *gin.Context) *Notification {
	raw, err := c.Cookie(cookieName)
	if err != nil || raw == "" {
		return nil
	}
	c.SetCookie(cookieName, "", -1, "/", "", false, true)

	data, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	var n Notification
	if err := json.Unmarshal(data, &n); err != nil {
		return nil
	}
	return &n
}
