package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marai-app/marai/internal/infrastructure/activitylog"
	"github.com/marai-app/marai/internal/shared/constants"
)

// ActivityTrail records successful mutating requests to the activity
// log. Reads are not recorded.
type ActivityTrail struct {
	recorder *activitylog.Recorder
}

// NewActivityTrail creates a new activity trail middleware
func NewActivityTrail(recorder *activitylog.Recorder) *ActivityTrail {
	return &ActivityTrail{recorder: recorder}
}

// Record returns the middleware handler
func (m *ActivityTrail) Record() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			return
		}
		if c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		var userID *uint
		if id := c.GetUint(constants.ContextKeyUserID); id != 0 {
			userID = &id
		}

		detail := fmt.Sprintf("%s %s -> %d", c.Request.Method, c.Request.URL.Path, c.Writer.Status())
		m.recorder.Record(c.Request.Context(), userID, c.Request.Method, c.FullPath(), detail)
	}
}
