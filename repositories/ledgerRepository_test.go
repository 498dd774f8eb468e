package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatementCacheTTL(t *testing.T) {
	at := func(value string) time.Time {
		ts, err := time.Parse(time.RFC3339, value)
		require.NoError(t, err)
		return ts
	}

	// Statuses flip at UTC midnight, so the cache must not outlive it.
	assert.Equal(t, 1*time.Hour, statementCacheTTL(at("2025-01-09T23:00:00Z")))
	assert.Equal(t, 1*time.Second, statementCacheTTL(at("2025-01-09T23:59:59Z")))
	assert.Equal(t, 24*time.Hour, statementCacheTTL(at("2025-01-10T00:00:00Z")))

	// Non-UTC inputs are normalized before the midnight is computed.
	assert.Equal(t, 23*time.Hour, statementCacheTTL(at("2025-01-09T20:00:00-05:00")))

	// Month and year boundaries roll over cleanly.
	assert.Equal(t, 30*time.Minute, statementCacheTTL(at("2025-01-31T23:30:00Z")))
	assert.Equal(t, 2*time.Hour, statementCacheTTL(at("2024-12-31T22:00:00Z")))
}
