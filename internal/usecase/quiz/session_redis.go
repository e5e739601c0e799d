package quiz

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/defff666/cryptodivebot/internal/entity"
	"github.com/go-redis/redis"
)

// SessionTTL bounds how long an abandoned round lingers.
const SessionTTL = 30 * time.Minute

// RedisSessionStore keeps quiz sessions in redis so rounds survive across
// instances of the service.
type RedisSessionStore struct {
	rdb *redis.Client
}

func NewRedisSessionStore(rdb *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb}
}

func sessionKey(userID int64) string {
	return "quiz:session:" + strconv.FormatInt(userID, 10)
}

func (s *RedisSessionStore) Get(ctx context.Context, userID int64) (*entity.QuizSession, error) {
	raw, err := s.rdb.Get(sessionKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session entity.QuizSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisSessionStore) Put(ctx context.Context, session *entity.QuizSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.rdb.Set(sessionKey(session.UserID), raw, SessionTTL).Err()
}

func (s *RedisSessionStore) Delete(ctx context.Context, userID int64) error {
	return s.rdb.Del(sessionKey(userID)).Err()
}
