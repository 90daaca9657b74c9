package backup

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"megabot/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.input = params
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.body = body
	return &s3.PutObjectOutput{}, nil
}

func TestSnapshotKey(t *testing.T) {
	t.Parallel()
	takenAt := time.Date(2024, 3, 9, 14, 30, 0, 0, time.FixedZone("CET", 3600))

	tests := []struct {
		name   string
		prefix string
		want   string
	}{
		{"with prefix", "megabot", "megabot/guild-42/2024-03-09T13:30:00Z.json"},
		{"nested prefix", "backups/prod/", "backups/prod/guild-42/2024-03-09T13:30:00Z.json"},
		{"no prefix", "", "guild-42/2024-03-09T13:30:00Z.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, SnapshotKey(tt.prefix, 42, takenAt))
		})
	}
}

func TestS3SnapshotStore_Save(t *testing.T) {
	t.Parallel()
	client := &fakeS3{}
	store := newS3SnapshotStore(client, "ledger-backups", "megabot")

	snapshot := &entities.LedgerSnapshot{
		GuildID:  42,
		TakenAt:  time.Date(2024, 3, 9, 13, 30, 0, 0, time.UTC),
		Accounts: []entities.SnapshotAccount{{DiscordID: 1, Balance: 1500}},
		Inventory: []entities.SnapshotItem{
			{DiscordID: 1, ItemName: "padlock", ItemType: entities.ItemTypeSecurity, Quantity: 2},
		},
	}

	location, err := store.Save(context.Background(), snapshot)
	require.NoError(t, err)
	assert.Equal(t, "s3://ledger-backups/megabot/guild-42/2024-03-09T13:30:00Z.json", location)

	assert.Equal(t, "ledger-backups", aws.ToString(client.input.Bucket))
	assert.Equal(t, "application/json", aws.ToString(client.input.ContentType))

	var uploaded entities.LedgerSnapshot
	require.NoError(t, json.Unmarshal(client.body, &uploaded))
	assert.Equal(t, *snapshot, uploaded)
}

func TestS3SnapshotStore_SaveError(t *testing.T) {
	t.Parallel()
	store := newS3SnapshotStore(&fakeS3{err: errors.New("access denied")}, "ledger-backups", "megabot")

	_, err := store.Save(context.Background(), &entities.LedgerSnapshot{GuildID: 1, TakenAt: time.Now()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}
