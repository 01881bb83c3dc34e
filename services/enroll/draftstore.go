package enroll

import (
	"context"
	"encoding/json"
	"fmt"

	"teacherdekho/models"
	"teacherdekho/utils"

	"github.com/go-redis/redis/v8"
)

// DraftStore holds in-progress enrollment drafts. Every save refreshes the
// TTL so an active wizard never expires under the student.
type DraftStore interface {
	Save(ctx context.Context, draft *models.EnrollmentDraft) error
	Get(ctx context.Context, draftID string) (*models.EnrollmentDraft, error)
	Delete(ctx context.Context, draftID string) error
}

const draftKeyPrefix = "draft:"

// RedisDraftStore is the production DraftStore backed by the draft cache DB.
type RedisDraftStore struct {
	client *redis.Client
}

// NewRedisDraftStore creates a DraftStore on the given Redis client.
func NewRedisDraftStore(client *redis.Client) *RedisDraftStore {
	return &RedisDraftStore{client: client}
}

func (s *RedisDraftStore) Save(ctx context.Context, draft *models.EnrollmentDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal enrollment draft: %w", err)
	}
	if err := s.client.Set(ctx, draftKeyPrefix+draft.DraftID, data, utils.DraftTTL).Err(); err != nil {
		return fmt.Errorf("failed to store enrollment draft: %w", err)
	}
	return nil
}

func (s *RedisDraftStore) Get(ctx context.Context, draftID string) (*models.EnrollmentDraft, error) {
	data, err := s.client.Get(ctx, draftKeyPrefix+draftID).Result()
	if err == redis.Nil {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load enrollment draft: %w", err)
	}
	var draft models.EnrollmentDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, fmt.Errorf("failed to parse enrollment draft: %w", err)
	}
	return &draft, nil
}

func (s *RedisDraftStore) Delete(ctx context.Context, draftID string) error {
	if err := s.client.Del(ctx, draftKeyPrefix+draftID).Err(); err != nil {
		return fmt.Errorf("failed to delete enrollment draft: %w", err)
	}
	return nil
}
