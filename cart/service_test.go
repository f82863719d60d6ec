package cart

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syedOmegaPrime/SolitudeFinalProject/catalog"
	"github.com/syedOmegaPrime/SolitudeFinalProject/ident"
	"github.com/syedOmegaPrime/SolitudeFinalProject/localstore"
	"github.com/syedOmegaPrime/SolitudeFinalProject/notify"
)

func newTestService(t *testing.T) (*Service, *localstore.Store, *notify.Recorder) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	store, err := localstore.New(t.TempDir(), logger)
	require.NoError(t, err)
	recorder := notify.NewRecorder()
	svc, err := NewService(store, recorder, logger)
	require.NoError(t, err)
	return svc, store, recorder
}

// blockWrites replaces the blob's file with a non-empty directory so the
// store's rename-into-place fails on the next Save.
func blockWrites(t *testing.T, store *localstore.Store, key string) {
	t.Helper()
	path := filepath.Join(store.Dir(), key+".json")
	require.NoError(t, os.RemoveAll(path))
	require.NoError(t, os.MkdirAll(filepath.Join(path, "block"), 0o755))
}

func testAsset(name string, price float64) catalog.Asset {
	return catalog.Asset{
		ID:    ident.New(ident.AssetPrefix),
		Name:  name,
		Price: price,
	}
}

func TestAddToCart(t *testing.T) {

	t.Run("should merge repeated adds into one line summing quantities", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		asset := testAsset("Pixel Pack", 25)

		require.NoError(t, svc.AddToCart(asset, 1))
		require.NoError(t, svc.AddToCart(asset, 2))
		require.NoError(t, svc.AddToCart(asset, 3))

		items := svc.Items()
		require.Len(t, items, 1, "exactly one line per unique asset id")
		assert.Equal(t, 6, items[0].Quantity, "final quantity equals the sum of all requested quantities")
	})

	t.Run("should append distinct assets as separate lines", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		require.NoError(t, svc.AddToCart(testAsset("A", 10), 2))
		require.NoError(t, svc.AddToCart(testAsset("B", 20), 3))

		assert.Len(t, svc.Items(), 2)
		assert.Equal(t, 5, svc.ItemCount(), "item count sums quantities, not lines")
	})

	t.Run("should emit a confirmation notification", func(t *testing.T) {
		svc, _, recorder := newTestService(t)
		require.NoError(t, svc.AddToCart(testAsset("Pixel Pack", 25), 1))

		notes := recorder.Notifications()
		require.Len(t, notes, 1)
		assert.Equal(t, "Added to cart", notes[0].Title)
		assert.Contains(t, notes[0].Description, "Pixel Pack")
	})

	t.Run("should keep an embedded snapshot immune to later catalog changes", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		asset := testAsset("Pixel Pack", 25)
		require.NoError(t, svc.AddToCart(asset, 1))

		// Mutating the caller's copy must not reach the stored line.
		asset.Price = 9000
		items := svc.Items()
		assert.Equal(t, 25.0, items[0].Asset.Price)
	})
}

func TestRemoveFromCart(t *testing.T) {

	t.Run("should remove a present line", func(t *testing.T) {
		svc, _, recorder := newTestService(t)
		a := testAsset("A", 10)
		b := testAsset("B", 20)
		require.NoError(t, svc.AddToCart(a, 1))
		require.NoError(t, svc.AddToCart(b, 1))

		require.NoError(t, svc.RemoveFromCart(a.ID))

		items := svc.Items()
		require.Len(t, items, 1)
		assert.Equal(t, b.ID, items[0].Asset.ID)

		notes := recorder.Notifications()
		last := notes[len(notes)-1]
		assert.Equal(t, "Removed from cart", last.Title)
		assert.Equal(t, notify.VariantDestructive, last.Variant)
	})

	t.Run("should be a silent no-op for an absent id", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		require.NoError(t, svc.AddToCart(testAsset("A", 10), 1))

		require.NoError(t, svc.RemoveFromCart("asset-0-missing"))
		assert.Len(t, svc.Items(), 1)
	})
}

func TestUpdateQuantity(t *testing.T) {

	t.Run("should replace the quantity, not add to it", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		a := testAsset("A", 10)
		require.NoError(t, svc.AddToCart(a, 5))

		require.NoError(t, svc.UpdateQuantity(a.ID, 2))
		assert.Equal(t, 2, svc.Items()[0].Quantity)
	})

	t.Run("should behave exactly like removal for zero or negative quantities", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		a := testAsset("A", 10)
		b := testAsset("B", 20)
		require.NoError(t, svc.AddToCart(a, 2))
		require.NoError(t, svc.AddToCart(b, 2))

		require.NoError(t, svc.UpdateQuantity(a.ID, 0))
		require.Len(t, svc.Items(), 1)

		require.NoError(t, svc.UpdateQuantity(b.ID, -3))
		assert.Empty(t, svc.Items())

		// And for an absent id it is still a no-op.
		require.NoError(t, svc.UpdateQuantity("asset-0-missing", 0))
	})
}

func TestTotalsAndCounts(t *testing.T) {

	t.Run("should compute total and count over all lines", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		assert.Zero(t, svc.CartTotal(), "empty cart totals zero")
		assert.Zero(t, svc.ItemCount())

		require.NoError(t, svc.AddToCart(testAsset("A", 100), 2))
		require.NoError(t, svc.AddToCart(testAsset("B", 7.5), 3))

		assert.InDelta(t, 222.5, svc.CartTotal(), 1e-9)
		assert.Equal(t, 5, svc.ItemCount())
	})

	t.Run("scenario: add, check, zero out", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		x := testAsset("X", 100)

		require.NoError(t, svc.AddToCart(x, 2))
		assert.InDelta(t, 200, svc.CartTotal(), 1e-9)
		assert.Equal(t, 2, svc.ItemCount())

		require.NoError(t, svc.UpdateQuantity(x.ID, 0))
		assert.Empty(t, svc.Items())
		assert.Zero(t, svc.CartTotal())
	})
}

func TestClearCart(t *testing.T) {
	svc, store, recorder := newTestService(t)
	require.NoError(t, svc.AddToCart(testAsset("A", 10), 2))
	require.NoError(t, svc.AddToCart(testAsset("B", 20), 1))

	require.NoError(t, svc.ClearCart())

	assert.Empty(t, svc.Items())
	notes := recorder.Notifications()
	assert.Equal(t, "Cart Cleared", notes[len(notes)-1].Title)

	// The persisted blob reflects the cleared cart immediately.
	var persisted []Item
	found, err := store.Load(localstore.CartItemsKey, &persisted)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, persisted)
}

func TestPersistence(t *testing.T) {

	t.Run("should round-trip the cart through a fresh instance", func(t *testing.T) {
		svc, store, _ := newTestService(t)
		require.NoError(t, svc.AddToCart(testAsset("A", 10), 2))
		require.NoError(t, svc.AddToCart(testAsset("B", 20), 3))

		reloaded, err := NewService(store, notify.NewRecorder(), nil)
		require.NoError(t, err)
		assert.Equal(t, svc.Items(), reloaded.Items(),
			"reloaded cart should equal the saved cart, same lines, same order")
		assert.Equal(t, svc.CartTotal(), reloaded.CartTotal())
	})

	t.Run("should load a corrupted cart blob as the empty default", func(t *testing.T) {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		store, err := localstore.New(t.TempDir(), logger)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(store.Dir()+"/"+localstore.CartItemsKey+".json", []byte(`{"broken`), 0o644))

		svc, err := NewService(store, notify.NewRecorder(), logger)
		require.NoError(t, err)
		assert.Empty(t, svc.Items())
	})
}

func TestPersistFailure(t *testing.T) {

	t.Run("should roll every mutator back when the save fails", func(t *testing.T) {
		svc, store, _ := newTestService(t)
		asset := testAsset("Pixel Pack", 25)
		require.NoError(t, svc.AddToCart(asset, 1))

		blockWrites(t, store, localstore.CartItemsKey)

		require.Error(t, svc.AddToCart(asset, 5))
		items := svc.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 1, items[0].Quantity,
			"a failed write must not leave a quantity in memory the blob never held")

		require.Error(t, svc.UpdateQuantity(asset.ID, 9))
		assert.Equal(t, 1, svc.Items()[0].Quantity)

		require.Error(t, svc.RemoveFromCart(asset.ID))
		assert.Len(t, svc.Items(), 1, "the line stays until the removal is on disk")

		require.Error(t, svc.ClearCart())
		assert.Len(t, svc.Items(), 1)
	})
}
