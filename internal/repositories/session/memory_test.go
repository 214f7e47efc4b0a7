package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/skill-roller/internal/errors"
	sessionrepo "github.com/KirkDiggler/skill-roller/internal/repositories/session"
	"github.com/KirkDiggler/skill-roller/internal/testutils"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := sessionrepo.NewInMemory()
	session := testutils.CreateTestSessionAtStage(testutils.TestSessionID, testutils.StageRolled)

	_, err := repo.Create(ctx, sessionrepo.CreateInput{Session: session})
	require.NoError(t, err)

	_, err = repo.Create(ctx, sessionrepo.CreateInput{Session: session})
	assert.Equal(t, errors.CodeAlreadyExists, errors.GetCode(err))

	got, err := repo.Get(ctx, sessionrepo.GetInput{ID: testutils.TestSessionID})
	require.NoError(t, err)
	assert.Equal(t, session, got.Session)

	// the store does not share pointers with callers
	got.Session.Attributes[0].Value = 1
	again, err := repo.Get(ctx, sessionrepo.GetInput{ID: testutils.TestSessionID})
	require.NoError(t, err)
	assert.Equal(t, session.Attributes[0].Value, again.Session.Attributes[0].Value)

	_, err = repo.Update(ctx, sessionrepo.UpdateInput{Session: got.Session})
	require.NoError(t, err)
	again, err = repo.Get(ctx, sessionrepo.GetInput{ID: testutils.TestSessionID})
	require.NoError(t, err)
	assert.Equal(t, 1, again.Session.Attributes[0].Value)

	_, err = repo.Delete(ctx, sessionrepo.DeleteInput{ID: testutils.TestSessionID})
	require.NoError(t, err)

	_, err = repo.Get(ctx, sessionrepo.GetInput{ID: testutils.TestSessionID})
	assert.True(t, errors.IsNotFound(err))

	_, err = repo.Update(ctx, sessionrepo.UpdateInput{Session: session})
	assert.True(t, errors.IsNotFound(err))

	_, err = repo.Delete(ctx, sessionrepo.DeleteInput{ID: testutils.TestSessionID})
	assert.True(t, errors.IsNotFound(err))
}
