package catalog

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syedOmegaPrime/SolitudeFinalProject/apperror"
	"github.com/syedOmegaPrime/SolitudeFinalProject/ident"
	"github.com/syedOmegaPrime/SolitudeFinalProject/localstore"
)

func newTestService(t *testing.T) (*Service, *localstore.Store) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	store, err := localstore.New(t.TempDir(), logger)
	require.NoError(t, err)
	svc, err := NewService(store, logger)
	require.NoError(t, err)
	return svc, store
}

func testAsset(name, category string, price float64, tags ...string) Asset {
	return Asset{
		ID:         ident.New(ident.AssetPrefix),
		Name:       name,
		Category:   category,
		Price:      price,
		Tags:       tags,
		UploaderID: "user-1",
		UploadDate: time.Now().UTC().Format(time.RFC3339),
	}
}

func TestAddAsset(t *testing.T) {

	t.Run("should prepend so newest uploads come first", func(t *testing.T) {
		svc, _ := newTestService(t)

		first := testAsset("First", "Icons", 10)
		second := testAsset("Second", "Icons", 20)
		require.NoError(t, svc.AddAsset(first))
		require.NoError(t, svc.AddAsset(second))

		assets := svc.Assets()
		require.Len(t, assets, 2)
		assert.Equal(t, second.ID, assets[0].ID, "most recent upload should be at the front")
		assert.Equal(t, first.ID, assets[1].ID)
	})

	t.Run("should persist and round-trip through a fresh instance", func(t *testing.T) {
		svc, store := newTestService(t)
		a := testAsset("Pixel Pack", "Sprite Sheets", 25, "pixel", "retro")
		b := testAsset("Forest Tileset", "Environments", 40)
		require.NoError(t, svc.AddAsset(a))
		require.NoError(t, svc.AddAsset(b))

		reloaded, err := NewService(store, nil)
		require.NoError(t, err)
		assert.Equal(t, svc.Assets(), reloaded.Assets(),
			"reloaded state should equal saved state, same entities, same order")
	})

	t.Run("should load corrupted persisted data as the empty default", func(t *testing.T) {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		store, err := localstore.New(t.TempDir(), logger)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(store.Dir()+"/"+localstore.AssetsKey+".json", []byte("not json"), 0o644))

		svc, err := NewService(store, logger)
		require.NoError(t, err, "corruption must not surface to the caller")
		assert.Empty(t, svc.Assets())
	})
}

func TestGet(t *testing.T) {
	svc, _ := newTestService(t)
	a := testAsset("Pixel Pack", "Sprite Sheets", 25)
	require.NoError(t, svc.AddAsset(a))

	t.Run("should find an existing asset", func(t *testing.T) {
		got, err := svc.Get(a.ID)
		require.NoError(t, err)
		assert.Equal(t, a, *got)
	})

	t.Run("should report an explicit not-found for a missing id", func(t *testing.T) {
		_, err := svc.Get("asset-0-missing")
		require.Error(t, err)
		assert.True(t, apperror.IsNotFound(err))
	})
}

func TestFilter(t *testing.T) {
	svc, _ := newTestService(t)
	cheap := testAsset("Cheap Icons", "Icons", 5, "minimal")
	mid := testAsset("Forest Tileset", "Environments", 120, "nature", "trees")
	expensive := testAsset("Mega Bundle", "Environments", 600, "bundle")
	for _, a := range []Asset{cheap, mid, expensive} {
		require.NoError(t, svc.AddAsset(a))
	}

	t.Run("should match the search term across name, description and tags", func(t *testing.T) {
		byName := svc.Filter(FilterOptions{SearchTerm: "forest"})
		require.Len(t, byName, 1)
		assert.Equal(t, mid.ID, byName[0].ID)

		byTag := svc.Filter(FilterOptions{SearchTerm: "TREES"})
		require.Len(t, byTag, 1)
		assert.Equal(t, mid.ID, byTag[0].ID)
	})

	t.Run("should filter by category with All as wildcard", func(t *testing.T) {
		envs := svc.Filter(FilterOptions{Category: "Environments"})
		assert.Len(t, envs, 2)
		all := svc.Filter(FilterOptions{Category: "All"})
		assert.Len(t, all, 3)
	})

	t.Run("should treat the price cap as open-ended", func(t *testing.T) {
		capped := svc.Filter(FilterOptions{MinPrice: 0, MaxPrice: OpenEndedPriceCap})
		assert.Len(t, capped, 3, "max at the cap means that-much-and-up")

		bounded := svc.Filter(FilterOptions{MinPrice: 10, MaxPrice: 200})
		require.Len(t, bounded, 1)
		assert.Equal(t, mid.ID, bounded[0].ID)
	})

	t.Run("should sort by price both ways", func(t *testing.T) {
		asc := svc.Filter(FilterOptions{SortBy: SortPriceAsc})
		require.Len(t, asc, 3)
		assert.Equal(t, cheap.ID, asc[0].ID)
		assert.Equal(t, expensive.ID, asc[2].ID)

		desc := svc.Filter(FilterOptions{SortBy: SortPriceDesc})
		assert.Equal(t, expensive.ID, desc[0].ID)
	})

	t.Run("should keep insertion order for relevance", func(t *testing.T) {
		rel := svc.Filter(FilterOptions{SortBy: SortRelevance})
		require.Len(t, rel, 3)
		assert.Equal(t, expensive.ID, rel[0].ID, "newest upload stays first")
	})

	t.Run("should sort newest by upload date, not insertion order", func(t *testing.T) {
		svc, _ := newTestService(t)
		newer := testAsset("Added First", "Icons", 10)
		older := testAsset("Added Second", "Icons", 20)
		older.UploadDate = time.Now().Add(-48 * time.Hour).UTC().Format(time.RFC3339)
		require.NoError(t, svc.AddAsset(newer))
		require.NoError(t, svc.AddAsset(older))

		// Insertion order puts the older-dated asset first; "newest" must
		// reorder by the dates the assets carry.
		got := svc.Filter(FilterOptions{SortBy: SortNewest})
		require.Len(t, got, 2)
		assert.Equal(t, newer.ID, got[0].ID)
		assert.Equal(t, older.ID, got[1].ID)
	})
}
