package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/Dosada05/swiss-tournament/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryUploader struct {
	objects map[string][]byte
	types   map[string]string
	err     error
}

func newMemoryUploader() *memoryUploader {
	return &memoryUploader{objects: map[string][]byte{}, types: map[string]string{}}
}

func (m *memoryUploader) Upload(_ context.Context, key, contentType string, reader io.Reader) (*UploadResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	m.objects[key] = body
	m.types[key] = contentType
	return &UploadResult{Key: key, Location: m.GetPublicURL(key)}, nil
}

func (m *memoryUploader) Delete(_ context.Context, key string) error {
	delete(m.objects, key)
	return nil
}

func (m *memoryUploader) GetPublicURL(key string) string {
	return PublicURL("https://cdn.example.com", key)
}

func TestStandingsArchiver_ArchiveRound(t *testing.T) {
	uploader := newMemoryUploader()
	archiver := NewStandingsArchiver(uploader)

	res, err := archiver.ArchiveRound(context.Background(), RoundSnapshot{
		TournamentID: 3,
		RoundNumber:  2,
		Standings:    []models.StandingRow{{Rank: 1, Competitor: models.Competitor{ID: 9, Name: "Alice", Score: 1}}},
	})
	require.NoError(t, err)
	assert.Equal(t, "tournaments/3/rounds/2/standings.json", res.Key)
	assert.Equal(t, "https://cdn.example.com/tournaments/3/rounds/2/standings.json", res.Location)
	assert.Equal(t, "application/json", uploader.types[res.Key])

	var stored RoundSnapshot
	require.NoError(t, json.Unmarshal(uploader.objects[res.Key], &stored))
	assert.Equal(t, 2, stored.RoundNumber)
	require.Len(t, stored.Standings, 1)
	assert.Equal(t, "Alice", stored.Standings[0].Competitor.Name)
}

func TestStandingsArchiver_RemoveRound(t *testing.T) {
	uploader := newMemoryUploader()
	archiver := NewStandingsArchiver(uploader)

	_, err := archiver.ArchiveRound(context.Background(), RoundSnapshot{TournamentID: 4, RoundNumber: 1})
	require.NoError(t, err)
	require.Contains(t, uploader.objects, SnapshotKey(4, 1))

	require.NoError(t, archiver.RemoveRound(context.Background(), 4, 1))
	assert.NotContains(t, uploader.objects, SnapshotKey(4, 1))
}

func TestStandingsArchiver_PropagatesUploadError(t *testing.T) {
	uploader := newMemoryUploader()
	uploader.err = errors.New("bucket unavailable")

	_, err := NewStandingsArchiver(uploader).ArchiveRound(context.Background(), RoundSnapshot{TournamentID: 1, RoundNumber: 1})
	assert.EqualError(t, err, "bucket unavailable")
}

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/a/b.json", PublicURL("https://cdn.example.com/", "/a/b.json"))
	assert.Equal(t, "https://cdn.example.com/base/a.json", PublicURL("https://cdn.example.com/base", "a.json"))
	assert.Empty(t, PublicURL("", "a.json"))
	assert.Empty(t, PublicURL("https://cdn.example.com", ""))
}

func TestCloudflareR2UploaderConfig_Enabled(t *testing.T) {
	assert.False(t, CloudflareR2UploaderConfig{AccountID: "acc"}.Enabled())
	assert.True(t, CloudflareR2UploaderConfig{
		AccountID: "acc", AccessKeyID: "key", SecretAccessKey: "secret", BucketName: "bucket", PublicBaseURL: "https://cdn",
	}.Enabled())
}
