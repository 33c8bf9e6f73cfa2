package wizard

import (
	"IntakeKiosk/models"

	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOptions struct {
	set models.OptionSet
	err error
}

func (f *fakeOptions) Get(ctx context.Context) (models.OptionSet, error) {
	return f.set, f.err
}

func TestRegistry_CreateAndGet(t *testing.T) {
	opts := &fakeOptions{set: models.OptionSet{
		Reasons: []models.ReasonCategory{{Name: "Dental", Items: []string{"Cleaning"}}},
		Sources: []string{"Walk-in"},
	}}
	r := NewRegistry(opts, &fakeLookup{}, &fakeSubmitter{}, Settings{}, time.Minute)

	s := r.Create(context.Background(), "agent")
	got, ok := r.Get(s.ID())
	require.True(t, ok)
	assert.Same(t, s, got)
	assert.Equal(t, []string{"Walk-in", "Other"}, got.View().Options.Sources)
	assert.Equal(t, 1, r.Len())

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestRegistry_OptionsFailureUsesDefaults(t *testing.T) {
	r := NewRegistry(&fakeOptions{err: errors.New("down")}, &fakeLookup{}, &fakeSubmitter{}, Settings{}, time.Minute)
	s := r.Create(context.Background(), "")
	assert.Equal(t, models.DefaultOptions().Reasons, s.View().Options.Reasons)
}

func TestRegistry_Evict(t *testing.T) {
	r := NewRegistry(&fakeOptions{}, &fakeLookup{}, &fakeSubmitter{}, Settings{}, time.Minute)
	stale := r.Create(context.Background(), "")
	fresh := r.Create(context.Background(), "")

	stale.mu.Lock()
	stale.touched = time.Now().Add(-2 * time.Minute)
	stale.mu.Unlock()

	assert.Equal(t, 1, r.Evict(time.Now()))
	_, ok := r.Get(stale.ID())
	assert.False(t, ok)
	_, ok = r.Get(fresh.ID())
	assert.True(t, ok)
}

func TestRegistry_NoTTLKeepsSessions(t *testing.T) {
	r := NewRegistry(&fakeOptions{}, &fakeLookup{}, &fakeSubmitter{}, Settings{}, 0)
	r.Create(context.Background(), "")
	assert.Equal(t, 0, r.Evict(time.Now().Add(time.Hour)))
	assert.Equal(t, 1, r.Len())
}
