package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InstallsDefaultCatalog(t *testing.T) {
	store := New()
	ctx := context.Background()

	services, err := store.ListServices(ctx)
	require.NoError(t, err)
	assert.Len(t, services, 6)

	courses, err := store.ListCourses(ctx)
	require.NoError(t, err)
	assert.Len(t, courses, 3)

	for _, code := range []string{"WELCOME10", "LAUNCH20", "LEGACY15"} {
		_, err := store.FindDiscountCodeByCode(ctx, code)
		require.NoError(t, err, "code %s must be seeded", code)
	}
}

func TestEnsureSeedData_Idempotent(t *testing.T) {
	store := New()
	ctx := context.Background()

	require.NoError(t, store.EnsureSeedData(ctx))
	require.NoError(t, store.EnsureSeedData(ctx))

	services, err := store.ListServices(ctx)
	require.NoError(t, err)
	assert.Len(t, services, 6)

	courses, err := store.ListCourses(ctx)
	require.NoError(t, err)
	assert.Len(t, courses, 3)
}
