package lock

import "errors"

var (
	// ErrLockFailed ошибка обращения к redis при взятии или снятии блокировки
	ErrLockFailed = errors.New("lock: redis command failed")
)
