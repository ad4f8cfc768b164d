// Package handlers maps HTTP routes onto the services. Every POST answers
// with a flash notification and a 303 redirect back to its section.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Zachkp/portfolio/internal/notify"
	"github.com/Zachkp/portfolio/internal/views"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const genericFailure = "Something went wrong. Please try again."

var errBadID = errors.New("invalid record id")

type responder struct {
	log *zap.SugaredLogger
}

// redirect flashes n, or a generic error when err is set, and sends the
// browser to path.
func (r responder) redirect(c *gin.Context, path string, n notify.Notification, err error) {
	if err != nil {
		r.log.Errorw("request failed", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
		_ = c.Error(err)
		n = notify.New(notify.Error, genericFailure)
	}
	notify.Set(c, n)
	c.Redirect(http.StatusSeeOther, path)
}

// fail renders the error page for a failed read.
func (r responder) fail(c *gin.Context, status int, err error, back string) {
	r.log.Errorw("request failed", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
	_ = c.Error(err)
	message := genericFailure
	if status == http.StatusNotFound {
		message = "The page you requested does not exist."
	}
	c.HTML(status, "error.html", views.ErrorView{Status: status, Message: message, Back: back})
}

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errBadID
	}
	return id, nil
}
