package reconciliation

import (
	"company-registry/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Reconciliation feature. client may be nil when
// the report archive is disabled.
func NewFeature(db *gorm.DB, logger *zap.Logger, client storage.Client, bucket string) *Feature {
	var archive *Archive
	if client != nil {
		archive = NewArchive(client, bucket, logger)
	}
	svc := NewService(db, logger, archive)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "reconciliation"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
