package subcompanystore_test

import (
	"testing"
	"time"

	subcompanystore "github.com/crestlinedev/crestline/internal/app/store/subcompanies"
	"github.com/crestlinedev/crestline/internal/domain/models"
	"github.com/crestlinedev/crestline/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := subcompanystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.SubCompany{
		Name:  "Crestline Homes",
		Email: "info@crestlinehomes.com",
		Phone: "+1 555 0100",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.NameCI == "" {
		t.Error("expected NameCI to be set")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if !created.UpdatedAt.Equal(created.CreatedAt) {
		t.Errorf("expected UpdatedAt == CreatedAt at creation, got %v vs %v",
			created.UpdatedAt, created.CreatedAt)
	}
	// Omitted optional fields stay empty strings.
	if created.Logo != "" || created.Instagram != "" {
		t.Error("expected omitted optional fields to be empty")
	}
}

func TestStore_Create_DuplicateName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := subcompanystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	sc := models.SubCompany{Name: "Crestline Homes"}
	if _, err := store.Create(ctx, sc); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	// Case-folded duplicate.
	sc.Name = "CRESTLINE HOMES"
	if _, err := store.Create(ctx, sc); err != subcompanystore.ErrDuplicateName {
		t.Errorf("expected ErrDuplicateName, got %v", err)
	}
}

func TestStore_GetByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := subcompanystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.SubCompany{Name: "Crestline Commercial"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "Crestline Commercial" {
		t.Errorf("expected name 'Crestline Commercial', got %q", got.Name)
	}
}

func TestStore_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := subcompanystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetByID(ctx, primitive.NewObjectID())
	if err != subcompanystore.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_List_OrderedByName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := subcompanystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Inserted in reverse of the expected order.
	for _, name := range []string{"Zenith", "Meridian", "Apex"} {
		if _, err := store.Create(ctx, models.SubCompany{Name: name}); err != nil {
			t.Fatalf("Create %s failed: %v", name, err)
		}
	}

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 sub-companies, got %d", len(list))
	}
	if list[0].Name != "Apex" || list[1].Name != "Meridian" || list[2].Name != "Zenith" {
		t.Errorf("unexpected order: %s, %s, %s", list[0].Name, list[1].Name, list[2].Name)
	}
}

func TestStore_List_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := subcompanystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Errorf("expected empty slice, got %v", list)
	}
}

func TestStore_Update_PartialPatch(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := subcompanystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.SubCompany{
		Name:  "Crestline Homes",
		Email: "info@crestlinehomes.com",
		Phone: "+1 555 0100",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	time.Sleep(5 * time.Millisecond)

	phone := "+1 555 0199"
	if err := store.Update(ctx, created.ID, subcompanystore.Patch{Phone: &phone}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Phone != "+1 555 0199" {
		t.Errorf("expected patched phone, got %q", got.Phone)
	}
	// Untouched fields keep their values.
	if got.Name != "Crestline Homes" || got.Email != "info@crestlinehomes.com" {
		t.Errorf("expected untouched fields preserved, got name=%q email=%q", got.Name, got.Email)
	}
	if !got.UpdatedAt.After(created.UpdatedAt) {
		t.Error("expected UpdatedAt to advance on update")
	}
	if !got.CreatedAt.Equal(created.CreatedAt) {
		t.Error("expected CreatedAt to be unchanged by update")
	}
}

func TestStore_Update_ClearsField(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := subcompanystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.SubCompany{
		Name:      "Crestline Homes",
		Instagram: "https://instagram.com/crestline",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	empty := ""
	if err := store.Update(ctx, created.ID, subcompanystore.Patch{Instagram: &empty}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Instagram != "" {
		t.Errorf("expected Instagram cleared, got %q", got.Instagram)
	}
}

func TestStore_Update_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := subcompanystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	name := "Ghost"
	err := store.Update(ctx, primitive.NewObjectID(), subcompanystore.Patch{Name: &name})
	if err != subcompanystore.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := subcompanystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.SubCompany{Name: "Crestline Homes"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := store.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := store.GetByID(ctx, created.ID); err != subcompanystore.ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	if err := store.Delete(ctx, created.ID); err != subcompanystore.ErrNotFound {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}
