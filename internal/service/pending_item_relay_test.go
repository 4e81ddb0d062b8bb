package service

import (
	"context"
	"testing"

	"github.com/wahhajahmed/KarachiSofas/internal/logger"
	"github.com/wahhajahmed/KarachiSofas/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newRelayFixture(t *testing.T) (*cartFixture, *PendingItemRelay) {
	t.Helper()
	fx := newCartFixture(t)
	relay := NewPendingItemRelay(repository.NewPendingIntentRepository(fx.db), fx.productRepo, fx.cart)
	return fx, relay
}

func TestPendingItemRelayOnlyLatestIntentIsCommitted(t *testing.T) {
	fx, relay := newRelayFixture(t)
	user := seedTestUser(t, fx.db, "relay@example.com")
	sofaX := seedTestProduct(t, fx.db, "SofaX", 1000)
	sofaY := seedTestProduct(t, fx.db, "SofaY", 1500)
	token := NewGuestToken()
	ctx := context.Background()

	_, err := relay.Hold(token, sofaX.ID)
	require.NoError(t, err)
	held, err := relay.Hold(token, sofaY.ID)
	require.NoError(t, err)
	assert.Equal(t, "1500.00", held.Price.String())

	item, state, err := relay.CompleteLogin(ctx, token, user.ID)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, sofaY.ID, item.ProductID)
	assert.Equal(t, "SofaY", item.Name)
	require.Len(t, state.Lines, 1)
	assert.Equal(t, sofaY.ID, state.Lines[0].ProductID)

	peeked, err := relay.Peek(token)
	require.NoError(t, err)
	assert.Nil(t, peeked)

	again := relay.Release(ctx, token, user.ID)
	assert.Nil(t, again)
}

func TestPendingItemRelayHoldSurvivesUntilRelease(t *testing.T) {
	fx, relay := newRelayFixture(t)
	sofa := seedTestProduct(t, fx.db, "Sofa", 1000)
	token := NewGuestToken()

	_, err := relay.Hold(token, sofa.ID)
	require.NoError(t, err)

	reloaded := NewPendingItemRelay(repository.NewPendingIntentRepository(fx.db), fx.productRepo, fx.cart)
	item, err := reloaded.Peek(token)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, sofa.ID, item.ProductID)
	assert.Equal(t, "/uploads/product/sofa.jpg", item.Image)
}

func TestPendingItemRelayHoldValidation(t *testing.T) {
	fx, relay := newRelayFixture(t)
	lamp := seedTestProduct(t, fx.db, "Lamp", 100)
	require.NoError(t, fx.db.Model(lamp).Update("is_active", false).Error)

	_, err := relay.Hold("  ", lamp.ID)
	assert.ErrorIs(t, err, ErrGuestTokenMissing)

	_, err = relay.Hold("token", 404)
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = relay.Hold("token", lamp.ID)
	assert.ErrorIs(t, err, ErrProductNotAvailable)
}

func TestPendingItemRelayStaleProductIsDiscardedAndLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := logger.Replace(zap.New(core))
	defer restore()

	fx, relay := newRelayFixture(t)
	user := seedTestUser(t, fx.db, "stale@example.com")
	sofa := seedTestProduct(t, fx.db, "Sofa", 1000)
	token := NewGuestToken()
	ctx := context.Background()

	_, err := relay.Hold(token, sofa.ID)
	require.NoError(t, err)
	_, err = fx.productRepo.Delete(sofa.ID)
	require.NoError(t, err)

	item, state, err := relay.CompleteLogin(ctx, token, user.ID)
	require.NoError(t, err)
	assert.Nil(t, item)
	assert.Empty(t, state.Lines)

	entries := logs.FilterMessage("pending_intent_release_failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "commit", entries[0].ContextMap()["stage"])

	peeked, err := relay.Peek(token)
	require.NoError(t, err)
	assert.Nil(t, peeked)
}

func TestPendingItemRelayReleaseWithoutIntent(t *testing.T) {
	fx, relay := newRelayFixture(t)
	user := seedTestUser(t, fx.db, "empty@example.com")

	assert.Nil(t, relay.Release(context.Background(), "", user.ID))
	assert.Nil(t, relay.Release(context.Background(), NewGuestToken(), user.ID))
}
