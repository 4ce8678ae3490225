package reconciliation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"company-registry/core/storage"
	"company-registry/feature/reconciliation/models"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Archive persists reconciliation reports to object storage for audit.
type Archive struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewArchive creates a report archive writing to the given bucket.
func NewArchive(client storage.Client, bucket string, logger *zap.Logger) *Archive {
	return &Archive{client: client, bucket: bucket, logger: logger}
}

// Store serializes the report and uploads it under a timestamped key.
// The bucket is created on first use.
func (a *Archive) Store(ctx context.Context, uf string, report *models.Report) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check archive bucket: %w", err)
	}
	if !exists {
		if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create archive bucket: %w", err)
		}
	}

	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}

	objectName := fmt.Sprintf("importacao/%s/%s-%s.json",
		time.Now().UTC().Format("2006/01/02"), uf, uuid.NewString())

	_, err = a.client.PutObject(ctx, a.bucket, objectName,
		bytes.NewReader(payload), int64(len(payload)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("failed to upload report: %w", err)
	}

	a.logger.Info("Reconciliation report archived",
		zap.String("bucket", a.bucket),
		zap.String("object", objectName))
	return nil
}
