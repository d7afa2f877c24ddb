// Package activitylog records an audit trail of tenant actions. Writes
// happen off the request path; a lost entry must never fail the
// operation it describes.
package activitylog

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/marai-app/marai/internal/infrastructure/persistence/models"
	"github.com/marai-app/marai/internal/shared/db"
	"github.com/marai-app/marai/internal/shared/goroutine"
	"github.com/marai-app/marai/internal/shared/logger"
	"github.com/marai-app/marai/internal/shared/scope"
)

// Recorder writes activity entries asynchronously.
type Recorder struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewRecorder creates a new activity log recorder
func NewRecorder(gdb *gorm.DB, log logger.Interface) *Recorder {
	return &Recorder{db: gdb, logger: log}
}

// Record persists one activity entry in the background. The tenant
// binding is captured from the request context before the goroutine
// detaches, so the entry lands in the right tenant even after the
// request finishes.
func (r *Recorder) Record(ctx context.Context, userID *uint, action, resource, detail string) {
	if _, ok := scope.FromContext(ctx); !ok {
		// No tenant bound (platform-level action); nothing to attribute.
		return
	}

	entry := &models.ActivityLogModel{
		UserID:   userID,
		Action:   action,
		Resource: resource,
		Detail:   detail,
	}
	db.InjectScope(ctx, entry)

	goroutine.SafeGo(r.logger, "activitylog.record", func() {
		writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := r.db.WithContext(writeCtx).Create(entry).Error; err != nil {
			r.logger.Errorw("failed to write activity log",
				"error", err,
				"action", action,
				"resource", resource)
		}
	})
}
