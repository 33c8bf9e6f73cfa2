package memstore

import (
	"IntakeKiosk/models"

	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessions_ExpireAfterTTL(t *testing.T) {
	start := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	now := start
	s := NewSessions(time.Hour)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, models.AdminSession{Token: "t1", Username: "admin"}))

	now = start.Add(59 * time.Minute)
	got, err := s.Get(ctx, "t1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "admin", got.Username)

	now = start.Add(time.Hour)
	got, err = s.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 0, s.Len())
}

func TestSessions_Sweep(t *testing.T) {
	start := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	now := start
	s := NewSessions(time.Hour)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 1000; i++ {
		require.NoError(t, s.Put(ctx, models.AdminSession{Token: time.Duration(i).String()}))
	}
	now = start.Add(30 * time.Minute)
	require.NoError(t, s.Put(ctx, models.AdminSession{Token: "late"}))

	assert.Equal(t, 0, s.Sweep(start.Add(59*time.Minute)))
	assert.Equal(t, 1000, s.Sweep(start.Add(time.Hour)))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 1, s.Sweep(start.Add(2*time.Hour)))
}

func TestSessions_ZeroTTLNeverExpires(t *testing.T) {
	s := NewSessions(0)
	ctx := context.Background()
	require.NoError(t, s.Put(ctx, models.AdminSession{Token: "t1"}))

	assert.Equal(t, 0, s.Sweep(time.Now().Add(24*365*time.Hour)))
	got, err := s.Get(ctx, "t1")
	require.NoError(t, err)
	assert.NotNil(t, got)
}
