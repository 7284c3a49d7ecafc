package domain

import (
	"context"
	"time"
)

// CacheRepository defines caching operations
type CacheRepository interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, keys ...string) error
	DeletePattern(ctx context.Context, pattern string) error
	Exists(ctx context.Context, key string) (bool, error)
	Close() error
}

// Notifier defines the fire-and-forget notification surface the conversion
// workflow and jobs depend on. Implemented by pkg/email.
type Notifier interface {
	SendOpportunityCreated(toEmail, toName, opportunityName string, amount float64) error
	SendLeadAssigned(toEmail, toName, leadName string) error
}
