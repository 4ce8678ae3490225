package geocoding

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultMonthlyLimit is applied when no limit is configured.
const DefaultMonthlyLimit = 1000

// Service handles geocoding cache, quota and lot lookup operations.
type Service struct {
	db           *gorm.DB
	logger       *zap.Logger
	monthlyLimit int
	now          func() time.Time
}

// NewService creates a new geocoding service.
func NewService(db *gorm.DB, logger *zap.Logger, monthlyLimit int) *Service {
	if monthlyLimit <= 0 {
		monthlyLimit = DefaultMonthlyLimit
	}
	return &Service{
		db:           db,
		logger:       logger,
		monthlyLimit: monthlyLimit,
		now:          time.Now,
	}
}
