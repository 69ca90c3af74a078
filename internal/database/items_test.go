package database

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jredh-dev/whereisit/pkg/models"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(t.TempDir() + "/test.db")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testItemInput(title string, date time.Time) *models.ItemInput {
	return &models.ItemInput{
		PostType:    models.PostTypeLost,
		Title:       title,
		Description: "black leather wallet",
		Category:    "accessories",
		Location:    "Central Station",
		Thumbnail:   "https://img.example.com/wallet.jpg",
		Date:        date,
		ContactName: "Sam Reporter",
		Email:       "sam@example.com",
	}
}

func TestCreateItem_DefaultsToOpen(t *testing.T) {
	db := testDB(t)

	id, err := db.CreateItem(testItemInput("Lost wallet", time.Now().UTC()))
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("CreateItem returned malformed id %q: %v", id, err)
	}

	got, err := db.GetItem(id)
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if got.Status != models.ItemStatusOpen {
		t.Errorf("Status = %q, want %q", got.Status, models.ItemStatusOpen)
	}
	if got.Title != "Lost wallet" {
		t.Errorf("Title = %q, want %q", got.Title, "Lost wallet")
	}
	if got.PostType != models.PostTypeLost {
		t.Errorf("PostType = %q, want %q", got.PostType, models.PostTypeLost)
	}
}

func TestCreateItem_ExplicitStatus(t *testing.T) {
	db := testDB(t)

	in := testItemInput("Found keys", time.Now().UTC())
	in.PostType = models.PostTypeFound
	in.Status = models.ItemStatusRecovered

	id, err := db.CreateItem(in)
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}

	got, err := db.GetItem(id)
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if got.Status != models.ItemStatusRecovered {
		t.Errorf("Status = %q, want %q", got.Status, models.ItemStatusRecovered)
	}
}

func TestGetItem_InvalidID(t *testing.T) {
	db := testDB(t)

	if _, err := db.GetItem("not-a-uuid"); !errors.Is(err, ErrInvalidID) {
		t.Errorf("GetItem(malformed) err = %v, want ErrInvalidID", err)
	}
}

func TestGetItem_NotFound(t *testing.T) {
	db := testDB(t)

	if _, err := db.GetItem(uuid.New().String()); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetItem(absent) err = %v, want ErrNotFound", err)
	}
}

func TestListItems_InsertionOrderByDefault(t *testing.T) {
	db := testDB(t)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Event dates deliberately out of insertion order.
	titles := []string{"first", "second", "third"}
	dates := []time.Time{base.AddDate(0, 0, 2), base, base.AddDate(0, 0, 1)}
	for i, title := range titles {
		if _, err := db.CreateItem(testItemInput(title, dates[i])); err != nil {
			t.Fatalf("CreateItem %s: %v", title, err)
		}
	}

	items, err := db.ListItems(ListQuery{})
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("ListItems len = %d, want 3", len(items))
	}
	for i, title := range titles {
		if items[i].Title != title {
			t.Errorf("items[%d].Title = %q, want %q", i, items[i].Title, title)
		}
	}
}

func TestListItems_DateDesc(t *testing.T) {
	db := testDB(t)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for _, d := range []time.Time{base, base.AddDate(0, 0, 5), base.AddDate(0, 0, 2)} {
		if _, err := db.CreateItem(testItemInput("item", d)); err != nil {
			t.Fatalf("CreateItem: %v", err)
		}
	}

	items, err := db.ListItems(ListQuery{DateDesc: true})
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("ListItems len = %d, want 3", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i].Date.After(items[i-1].Date) {
			t.Errorf("items not in non-increasing date order: %v after %v",
				items[i].Date, items[i-1].Date)
		}
	}
}

func TestListItems_Limit(t *testing.T) {
	db := testDB(t)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		if _, err := db.CreateItem(testItemInput("item", base.AddDate(0, 0, i))); err != nil {
			t.Fatalf("CreateItem: %v", err)
		}
	}

	limited, err := db.ListItems(ListQuery{Limit: 2})
	if err != nil {
		t.Fatalf("ListItems(limit=2): %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("ListItems(limit=2) len = %d, want 2", len(limited))
	}

	// Limit 0 means unbounded.
	all, err := db.ListItems(ListQuery{Limit: 0})
	if err != nil {
		t.Fatalf("ListItems(limit=0): %v", err)
	}
	if len(all) != 5 {
		t.Errorf("ListItems(limit=0) len = %d, want 5", len(all))
	}
}

func TestUpdateItem_ReplacesFields(t *testing.T) {
	db := testDB(t)

	id, err := db.CreateItem(testItemInput("Lost wallet", time.Now().UTC()))
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}

	in := testItemInput("Lost wallet (updated)", time.Now().UTC())
	in.PostType = models.PostTypeFound
	in.Location = "Airport"

	n, err := db.UpdateItem(id, in)
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if n != 1 {
		t.Errorf("modified count = %d, want 1", n)
	}

	got, err := db.GetItem(id)
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if got.Title != "Lost wallet (updated)" {
		t.Errorf("Title = %q, want updated title", got.Title)
	}
	if got.PostType != models.PostTypeFound {
		t.Errorf("PostType = %q, want %q", got.PostType, models.PostTypeFound)
	}
	if got.Location != "Airport" {
		t.Errorf("Location = %q, want %q", got.Location, "Airport")
	}
}

func TestUpdateItem_AbsentIDIsNotAnError(t *testing.T) {
	db := testDB(t)

	n, err := db.UpdateItem(uuid.New().String(), testItemInput("ghost", time.Now().UTC()))
	if err != nil {
		t.Fatalf("UpdateItem(absent): %v", err)
	}
	if n != 0 {
		t.Errorf("modified count = %d, want 0", n)
	}
}

func TestUpdateItem_InvalidID(t *testing.T) {
	db := testDB(t)

	if _, err := db.UpdateItem("nope", testItemInput("x", time.Now().UTC())); !errors.Is(err, ErrInvalidID) {
		t.Errorf("UpdateItem(malformed) err = %v, want ErrInvalidID", err)
	}
}

func TestPatchItemStatus(t *testing.T) {
	db := testDB(t)

	id, err := db.CreateItem(testItemInput("Lost wallet", time.Now().UTC()))
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}

	n, err := db.PatchItemStatus(id, models.ItemStatusRecovered)
	if err != nil {
		t.Fatalf("PatchItemStatus: %v", err)
	}
	if n != 1 {
		t.Errorf("modified count = %d, want 1", n)
	}

	got, err := db.GetItem(id)
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if got.Status != models.ItemStatusRecovered {
		t.Errorf("Status = %q, want %q", got.Status, models.ItemStatusRecovered)
	}

	// Patch is unconditional: recovered can go back to open.
	if _, err := db.PatchItemStatus(id, models.ItemStatusOpen); err != nil {
		t.Fatalf("PatchItemStatus back to open: %v", err)
	}
	got, err = db.GetItem(id)
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if got.Status != models.ItemStatusOpen {
		t.Errorf("Status = %q, want %q", got.Status, models.ItemStatusOpen)
	}
}

func TestPatchItemStatus_NotFound(t *testing.T) {
	db := testDB(t)

	if _, err := db.PatchItemStatus(uuid.New().String(), models.ItemStatusRecovered); !errors.Is(err, ErrNotFound) {
		t.Errorf("PatchItemStatus(absent) err = %v, want ErrNotFound", err)
	}
}

func TestDeleteItem(t *testing.T) {
	db := testDB(t)

	id, err := db.CreateItem(testItemInput("Lost wallet", time.Now().UTC()))
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}

	if err := db.DeleteItem(id); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}
	if _, err := db.GetItem(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetItem after delete err = %v, want ErrNotFound", err)
	}
}

func TestDeleteItem_InvalidID(t *testing.T) {
	db := testDB(t)

	if err := db.DeleteItem("definitely-not-a-uuid"); !errors.Is(err, ErrInvalidID) {
		t.Errorf("DeleteItem(malformed) err = %v, want ErrInvalidID", err)
	}
}

func TestDeleteItem_NotFound(t *testing.T) {
	db := testDB(t)

	if err := db.DeleteItem(uuid.New().String()); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteItem(absent) err = %v, want ErrNotFound", err)
	}
}
