package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "lock:"

// unlockScript удаляет ключ только если его значение совпадает с токеном владельца
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker распределенная блокировка на SETNX с TTL
type RedisLocker struct {
	client redis.UniversalClient
}

// NewRedisLocker создает клиента redis и проверяет соединение
func NewRedisLocker(ctx context.Context, addr, password string, db int) (*RedisLocker, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: ping %s: %v", ErrLockFailed, addr, err)
	}

	return &RedisLocker{client: client}, nil
}

// NewRedisLockerFromClient оборачивает готового клиента
func NewRedisLockerFromClient(client redis.UniversalClient) *RedisLocker {
	return &RedisLocker{client: client}
}

// Lock пытается взять блокировку key на ttl
// Возвращает токен владельца; пустой токен и acquired=false, если ключ уже занят
func (l *RedisLocker) Lock(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()

	acquired, err := l.client.SetNX(ctx, keyPrefix+key, token, ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("%w: SETNX %s: %v", ErrLockFailed, key, err)
	}
	if !acquired {
		return "", false, nil
	}

	return token, true, nil
}

// Unlock снимает блокировку, если она все еще принадлежит владельцу token
func (l *RedisLocker) Unlock(ctx context.Context, key, token string) error {
	if err := unlockScript.Run(ctx, l.client, []string{keyPrefix + key}, token).Err(); err != nil {
		return fmt.Errorf("%w: unlock %s: %v", ErrLockFailed, key, err)
	}
	return nil
}

func (l *RedisLocker) Close() error {
	return l.client.Close()
}
