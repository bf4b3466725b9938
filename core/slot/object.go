package slot

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"item-matcher/core/reconcile"
	"item-matcher/core/storage"

	"github.com/minio/minio-go/v7"
)

// ObjectSlot stores the payload as an object in a bucket.
type ObjectSlot struct {
	client storage.Client
	bucket string
	object string
}

// NewObjectSlot creates a slot for bucket/object.
func NewObjectSlot(client storage.Client, bucket, object string) *ObjectSlot {
	return &ObjectSlot{client: client, bucket: bucket, object: object}
}

func isNotFound(err error) bool {
	code := minio.ToErrorResponse(err).Code
	return code == "NoSuchKey" || code == "NoSuchObject"
}

// Read implements reconcile.Slot. The object is read fully, since GetObject only reports
// a missing key on the first read.
func (s *ObjectSlot) Read(ctx context.Context) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		if isNotFound(err) {
			return nil, reconcile.ErrSlotEmpty
		}
		return nil, fmt.Errorf("failed to get slot object: %w", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if isNotFound(err) {
			return nil, reconcile.ErrSlotEmpty
		}
		return nil, fmt.Errorf("failed to read slot object: %w", err)
	}
	return data, nil
}

// Write implements reconcile.Slot.
func (s *ObjectSlot) Write(ctx context.Context, data []byte) error {
	_, err := s.client.PutObject(ctx, s.bucket, s.object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to put slot object: %w", err)
	}
	return nil
}

// Clear implements reconcile.Slot. Removing a missing object is not an error in S3.
func (s *ObjectSlot) Clear(ctx context.Context) error {
	if err := s.client.RemoveObject(ctx, s.bucket, s.object, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove slot object: %w", err)
	}
	return nil
}
