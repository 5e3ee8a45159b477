package redis

import "errors"

var (
	ErrProducerClosed  = errors.New("producer is closed")
	ErrPointerType     = errors.New("pointer type is not allowed")
	ErrMissingPayload  = errors.New("payload field not found")
	ErrLockNotAcquired = errors.New("lock not acquired")
)
