package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bistronome/restaurant-app/models"
	"github.com/bistronome/restaurant-app/utils"
)

func seedMenu(t *testing.T, db *gorm.DB) (models.MenuItem, models.MenuItem) {
	t.Helper()
	plat := models.MenuItem{Name: "Boeuf bourguignon", Price: "18.50", Category: models.CategoryPlats, IsAvailable: true}
	dessert := models.MenuItem{Name: "Tarte tatin", Price: "10.50", Category: models.CategoryDesserts, IsAvailable: true}
	require.NoError(t, db.Create(&plat).Error)
	require.NoError(t, db.Create(&dessert).Error)
	return plat, dessert
}

func TestCartAddFetchesCatalogData(t *testing.T) {
	db := setupTestDB(t, "cart_add")
	svc := NewCartService(db, NewCartStore())
	plat, _ := seedMenu(t, db)

	view, err := svc.Add("tok", plat.ID, 2)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "Boeuf bourguignon", view.Items[0].Name)
	assert.Equal(t, "18.50", view.Items[0].Price)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.Equal(t, "37.00", view.Total)
	assert.Equal(t, 2, view.ItemCount)
}

func TestCartAddUnknownItem(t *testing.T) {
	db := setupTestDB(t, "cart_add_unknown")
	svc := NewCartService(db, NewCartStore())

	_, err := svc.Add("tok", 999, 1)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestCartAddAccumulatesQuantity(t *testing.T) {
	db := setupTestDB(t, "cart_accumulate")
	svc := NewCartService(db, NewCartStore())
	plat, dessert := seedMenu(t, db)

	_, err := svc.Add("tok", plat.ID, 1)
	require.NoError(t, err)
	_, err = svc.Add("tok", plat.ID, 2)
	require.NoError(t, err)
	view, err := svc.Add("tok", dessert.ID, 1)
	require.NoError(t, err)

	assert.Len(t, view.Items, 2)
	assert.Equal(t, 4, view.ItemCount)
	assert.Equal(t, "66.00", view.Total)
}

func TestCartUpdateQuantity(t *testing.T) {
	db := setupTestDB(t, "cart_update")
	svc := NewCartService(db, NewCartStore())
	plat, _ := seedMenu(t, db)

	_, err := svc.Add("tok", plat.ID, 3)
	require.NoError(t, err)

	view, err := svc.UpdateQuantity("tok", plat.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "18.50", view.Total)

	// Zero removes the line entirely.
	view, err = svc.UpdateQuantity("tok", plat.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, "0.00", view.Total)

	_, err = svc.UpdateQuantity("tok", plat.ID, 1)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestCartRemoveAndClear(t *testing.T) {
	db := setupTestDB(t, "cart_remove")
	svc := NewCartService(db, NewCartStore())
	plat, dessert := seedMenu(t, db)

	_, err := svc.Add("tok", plat.ID, 1)
	require.NoError(t, err)
	_, err = svc.Add("tok", dessert.ID, 1)
	require.NoError(t, err)

	view, err := svc.Remove("tok", plat.ID)
	require.NoError(t, err)
	assert.Len(t, view.Items, 1)

	_, err = svc.Remove("tok", plat.ID)
	assert.ErrorIs(t, err, utils.ErrNotFound)

	view = svc.Clear("tok")
	assert.Empty(t, view.Items)
	assert.Equal(t, 0, view.ItemCount)
}

func TestCartsAreIsolatedByToken(t *testing.T) {
	db := setupTestDB(t, "cart_isolation")
	svc := NewCartService(db, NewCartStore())
	plat, _ := seedMenu(t, db)

	_, err := svc.Add("alice", plat.ID, 1)
	require.NoError(t, err)

	assert.Empty(t, svc.Get("bob").Items)
	assert.Len(t, svc.Get("alice").Items, 1)
}

func TestCartSnapshotKeepsPriceAfterMenuEdit(t *testing.T) {
	db := setupTestDB(t, "cart_snapshot")
	store := NewCartStore()
	svc := NewCartService(db, store)
	plat, _ := seedMenu(t, db)

	_, err := svc.Add("tok", plat.ID, 1)
	require.NoError(t, err)

	// Price change in the catalog must not reach carts already holding
	// the item.
	require.NoError(t, db.Model(&plat).Update("price", "25.00").Error)

	snap := svc.Snapshot("tok")
	assert.Equal(t, "18.50", snap[plat.ID].Price)
}

func TestCartStoreGetReturnsCopy(t *testing.T) {
	store := NewCartStore()
	store.Put("tok", models.Cart{1: {ID: 1, Name: "Soupe", Price: "7.00", Quantity: 1}})

	cart := store.Get("tok")
	it := cart[1]
	it.Quantity = 99
	cart[1] = it

	assert.Equal(t, 1, store.Get("tok")[1].Quantity)
}
