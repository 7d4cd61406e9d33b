package store

import (
	"testing"

	"github.com/google/uuid"

	"github.com/example/parcelbook/internal/models"
)

func seedParcel(t *testing.T, parcels *ParcelStore) *models.Parcel {
	t.Helper()
	parcel := &models.Parcel{
		BuyerEmail:      "buyer@x.com",
		BuyerName:       "Buyer",
		BuyerPhoneNo:    "123",
		DeliveryAddress: "12 Main St",
		ParcelType:      "documents",
		ParcelWeight:    1.5,
		Price:           40,
		ReceiverName:    "Receiver",
		ReceiverPhoneNo: "456",
		DeliveryDate:    "2025-02-01",
	}
	if err := parcels.Insert(parcel); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	return parcel
}

func TestInsertDefaultsStatus(t *testing.T) {
	parcels := NewParcelStore(newTestDB(t))

	parcel := seedParcel(t, parcels)
	if parcel.Status != models.StatusPending {
		t.Fatalf("got status %q, want pending", parcel.Status)
	}
	if parcel.ID == uuid.Nil {
		t.Fatal("expected store-assigned id")
	}

	withStatus := &models.Parcel{BuyerEmail: "buyer@x.com", Status: "on-the-way"}
	if err := parcels.Insert(withStatus); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if withStatus.Status != "on-the-way" {
		t.Fatalf("client status overwritten: %q", withStatus.Status)
	}
}

func TestFindByIDAbsent(t *testing.T) {
	parcels := NewParcelStore(newTestDB(t))

	parcel, err := parcels.FindByID(uuid.New())
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if parcel != nil {
		t.Fatalf("expected nil for absent parcel, got %+v", parcel)
	}
}

func TestListByBuyerEmail(t *testing.T) {
	parcels := NewParcelStore(newTestDB(t))
	seedParcel(t, parcels)
	seedParcel(t, parcels)

	mine, err := parcels.ListByBuyerEmail("buyer@x.com")
	if err != nil {
		t.Fatalf("ListByBuyerEmail: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("got %d parcels, want 2", len(mine))
	}

	other, err := parcels.ListByBuyerEmail("other@x.com")
	if err != nil {
		t.Fatalf("ListByBuyerEmail: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("got %d parcels for other buyer, want 0", len(other))
	}
}

func TestReplaceFieldsWritesOmittedFieldsAsZero(t *testing.T) {
	parcels := NewParcelStore(newTestDB(t))
	parcel := seedParcel(t, parcels)

	// Assignment and ETA are set out of band and must survive.
	if err := parcels.UpdateBookingDetails(parcel.ID, "on-the-way", "dm-1", "2025-02-03"); err != nil {
		t.Fatalf("UpdateBookingDetails: %v", err)
	}

	if err := parcels.ReplaceFields(parcel.ID, models.Parcel{BuyerName: "Renamed"}); err != nil {
		t.Fatalf("ReplaceFields: %v", err)
	}

	updated, err := parcels.FindByID(parcel.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if updated.BuyerName != "Renamed" {
		t.Fatalf("got buyerName %q", updated.BuyerName)
	}

	// Fields omitted from the update are erased, matching the unconditional
	// write the endpoint has always performed.
	if updated.BuyerEmail != "" || updated.DeliveryAddress != "" || updated.Price != 0 || updated.Status != "" {
		t.Fatalf("omitted fields not erased: %+v", updated)
	}

	// Columns outside the fixed set are untouched.
	if updated.DeliveryMenID != "dm-1" || updated.ApproximateDeliveryDate != "2025-02-03" {
		t.Fatalf("assignment fields clobbered: %+v", updated)
	}
}

func TestUpdateBookingDetails(t *testing.T) {
	parcels := NewParcelStore(newTestDB(t))
	parcel := seedParcel(t, parcels)

	if err := parcels.UpdateBookingDetails(parcel.ID, "on-the-way", "dm-7", "2025-02-05"); err != nil {
		t.Fatalf("UpdateBookingDetails: %v", err)
	}

	updated, err := parcels.FindByID(parcel.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if updated.Status != "on-the-way" || updated.DeliveryMenID != "dm-7" || updated.ApproximateDeliveryDate != "2025-02-05" {
		t.Fatalf("unexpected booking details: %+v", updated)
	}
	if updated.BuyerEmail != "buyer@x.com" {
		t.Fatalf("unrelated fields clobbered: %+v", updated)
	}
}

func TestUpdateBookingDetailsUnknownIDCreatesShell(t *testing.T) {
	parcels := NewParcelStore(newTestDB(t))

	id := uuid.New()
	if err := parcels.UpdateBookingDetails(id, "pending", "dm-1", "2025-02-05"); err != nil {
		t.Fatalf("UpdateBookingDetails: %v", err)
	}

	shell, err := parcels.FindByID(id)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if shell == nil {
		t.Fatal("expected shell booking to exist")
	}
	if shell.Status != "pending" || shell.DeliveryMenID != "dm-1" || shell.BuyerEmail != "" {
		t.Fatalf("unexpected shell: %+v", shell)
	}
}

func TestSetStatusTerminal(t *testing.T) {
	parcels := NewParcelStore(newTestDB(t))
	parcel := seedParcel(t, parcels)

	if err := parcels.SetStatus(parcel.ID, models.StatusCancelled); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	got, err := parcels.FindByID(parcel.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Status != models.StatusCancelled {
		t.Fatalf("got status %q, want cancelled", got.Status)
	}

	// Idempotent, and applies regardless of prior status.
	if err := parcels.SetStatus(parcel.ID, models.StatusCancelled); err != nil {
		t.Fatalf("SetStatus repeat: %v", err)
	}
	if err := parcels.SetStatus(parcel.ID, models.StatusDelivered); err != nil {
		t.Fatalf("SetStatus deliver: %v", err)
	}
	got, err = parcels.FindByID(parcel.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Status != models.StatusDelivered {
		t.Fatalf("got status %q, want delivered", got.Status)
	}
}

func TestListByDeliveryMenID(t *testing.T) {
	db := newTestDB(t)
	parcels := NewParcelStore(db)

	assigned := seedParcel(t, parcels)
	seedParcel(t, parcels)
	if err := parcels.UpdateBookingDetails(assigned.ID, "on-the-way", "dm-9", ""); err != nil {
		t.Fatalf("UpdateBookingDetails: %v", err)
	}

	got, err := parcels.ListByDeliveryMenID("dm-9")
	if err != nil {
		t.Fatalf("ListByDeliveryMenID: %v", err)
	}
	if len(got) != 1 || got[0].ID != assigned.ID {
		t.Fatalf("unexpected assigned parcels: %+v", got)
	}
}
