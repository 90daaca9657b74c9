// Package backup stores ledger snapshots in S3-compatible object storage.
package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"time"

	"megabot/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	log "github.com/sirupsen/logrus"
)

// putObjectAPI is the part of the S3 client the store uses
type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3SnapshotStore writes ledger snapshots as JSON objects
type S3SnapshotStore struct {
	client putObjectAPI
	bucket string
	prefix string
}

// NewS3SnapshotStore creates a store for the bucket. If endpoint is non-empty,
// path-style addressing is enabled (for MinIO and similar).
func NewS3SnapshotStore(ctx context.Context, bucket, prefix, region, endpoint string) (*S3SnapshotStore, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var s3opts []func(*s3.Options)
	if endpoint != "" {
		s3opts = append(s3opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		})
	}

	return newS3SnapshotStore(s3.NewFromConfig(cfg, s3opts...), bucket, prefix), nil
}

func newS3SnapshotStore(client putObjectAPI, bucket, prefix string) *S3SnapshotStore {
	return &S3SnapshotStore{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// Save uploads the snapshot and returns its s3:// location
func (s *S3SnapshotStore) Save(ctx context.Context, snapshot *entities.LedgerSnapshot) (string, error) {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	key := SnapshotKey(s.prefix, snapshot.GuildID, snapshot.TakenAt)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload snapshot to s3://%s/%s: %w", s.bucket, key, err)
	}

	location := fmt.Sprintf("s3://%s/%s", s.bucket, key)
	log.WithFields(log.Fields{
		"guildID":  snapshot.GuildID,
		"location": location,
		"size":     len(data),
	}).Info("Uploaded ledger snapshot")

	return location, nil
}

// SnapshotKey builds <prefix>/guild-<id>/<RFC3339 timestamp>.json
func SnapshotKey(prefix string, guildID int64, takenAt time.Time) string {
	return path.Join(prefix, fmt.Sprintf("guild-%d", guildID), takenAt.UTC().Format(time.RFC3339)+".json")
}
