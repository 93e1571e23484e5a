package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/YazanYahya/codex/internal/infrastructure/redis"
	"github.com/rs/zerolog/log"
)

const historyLifetime = 24 * time.Hour

// HistoryStore persists transcripts per session id. Persistence is
// best-effort: a failing store never fails the exchange that wrote it.
type HistoryStore interface {
	Save(ctx context.Context, sessionID string, messages []Message) error
	Load(ctx context.Context, sessionID string) ([]Message, error)
}

type RedisStore struct {
	redisService *redis.Service
}

type MemoryStore struct {
	mu          sync.RWMutex
	transcripts map[string][]Message
}

type HistoryService struct {
	store HistoryStore
}

func NewHistoryService(redisService *redis.Service) *HistoryService {
	var store HistoryStore
	if redisService != nil && redisService.Ping(context.Background()) == nil {
		log.Info().Msg("Using Redis for transcript history")
		store = &RedisStore{redisService: redisService}
	} else {
		log.Info().Msg("Using in-memory transcript history")
		store = newMemoryStore()
	}

	return &HistoryService{store: store}
}

func (h *HistoryService) Save(ctx context.Context, sessionID string, messages []Message) error {
	return h.store.Save(ctx, sessionID, messages)
}

func (h *HistoryService) Load(ctx context.Context, sessionID string) ([]Message, error) {
	return h.store.Load(ctx, sessionID)
}

func newMemoryStore() *MemoryStore {
	return &MemoryStore{
		transcripts: make(map[string][]Message),
	}
}

// Redis store implementation

func (rs *RedisStore) Save(ctx context.Context, sessionID string, messages []Message) error {
	data, err := json.Marshal(messages)
	if err != nil {
		return err
	}

	return rs.redisService.Set(ctx, historyKey(sessionID), string(data), historyLifetime)
}

func (rs *RedisStore) Load(ctx context.Context, sessionID string) ([]Message, error) {
	data, err := rs.redisService.Get(ctx, historyKey(sessionID))
	if err != nil {
		if redis.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	var messages []Message
	if err := json.Unmarshal([]byte(data), &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func historyKey(sessionID string) string {
	return "codex:history:" + sessionID
}

// Memory store implementation

func (ms *MemoryStore) Save(_ context.Context, sessionID string, messages []Message) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	stored := make([]Message, len(messages))
	copy(stored, messages)
	ms.transcripts[sessionID] = stored
	return nil
}

func (ms *MemoryStore) Load(_ context.Context, sessionID string) ([]Message, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	messages, ok := ms.transcripts[sessionID]
	if !ok {
		return nil, nil
	}
	out := make([]Message, len(messages))
	copy(out, messages)
	return out, nil
}
