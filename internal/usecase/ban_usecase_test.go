package usecase

import (
	"testing"
	"time"

	"prison-visitor-backend/internal/apperror"
	"prison-visitor-backend/internal/model"
)

func testBanUsecase(t *testing.T) (*BanUsecase, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	store.addPerson(model.Person{PersonID: "VST-0001", PersonType: model.PersonTypeVisitor, FullName: "Ana Reyes"})
	return NewBanUsecase(store), store
}

var bannedAt = time.Date(2025, 3, 14, 9, 0, 0, 0, time.Local)

func TestApplyAndRemovePermanentBan(t *testing.T) {
	bans, store := testBanUsecase(t)

	record, err := bans.ApplyBan("VST-0001", model.PersonTypeVisitor, BanPayload{
		Reason:       "contraband",
		DurationKind: model.BanDurationPermanent,
		Notes:        "found during screening",
	}, "staff.male", bannedAt)
	if err != nil {
		t.Fatalf("apply ban: %v", err)
	}
	if record.Status != model.LedgerStatusActive {
		t.Errorf("ledger status = %q", record.Status)
	}
	if record.CalculatedDuration != "Permanent" {
		t.Errorf("calculated duration = %q, want Permanent", record.CalculatedDuration)
	}
	if record.BanEndDate != nil {
		t.Error("permanent ban carries an end date")
	}

	person, _ := store.Persons().Find("VST-0001", model.PersonTypeVisitor)
	if !person.IsBanned || person.BanReason != "contraband" {
		t.Errorf("mirror not set: banned=%v reason=%q", person.IsBanned, person.BanReason)
	}
	if !IsEffectivelyBanned(person, bannedAt.AddDate(10, 0, 0)) {
		t.Error("permanent ban lapsed")
	}

	removedAt := bannedAt.Add(48 * time.Hour)
	if err := bans.RemoveBan("VST-0001", model.PersonTypeVisitor, "admin", "appeal granted", removedAt); err != nil {
		t.Fatalf("remove ban: %v", err)
	}

	person, _ = store.Persons().Find("VST-0001", model.PersonTypeVisitor)
	if person.IsBanned || person.BanReason != "" || person.BanStartDate != nil {
		t.Errorf("mirror not cleared: %+v", person.PersonStatus)
	}

	// History keeps the record, now marked removed
	if len(store.banRecords) != 1 {
		t.Fatalf("ledger records = %d, want 1", len(store.banRecords))
	}
	closed := store.banRecords[0]
	if closed.Status != model.LedgerStatusRemoved {
		t.Errorf("ledger status = %q, want removed", closed.Status)
	}
	if closed.RemovedBy != "admin" || closed.RemovalReason != "appeal granted" {
		t.Errorf("removal audit = %q %q", closed.RemovedBy, closed.RemovalReason)
	}
	if closed.RemovedAt == nil || !closed.RemovedAt.Equal(removedAt) {
		t.Errorf("removed at = %v, want %v", closed.RemovedAt, removedAt)
	}
}

func TestApplyBanValidation(t *testing.T) {
	bans, _ := testBanUsecase(t)

	_, err := bans.ApplyBan("VST-0001", model.PersonTypeVisitor, BanPayload{
		Reason: "contraband", DurationKind: "forever",
	}, "staff.male", bannedAt)
	if apperror.CodeOf(err) != apperror.CodeValidation {
		t.Errorf("unknown kind: code = %s, want VALIDATION", apperror.CodeOf(err))
	}

	_, err = bans.ApplyBan("VST-0001", model.PersonTypeVisitor, BanPayload{
		Reason: "contraband", DurationKind: model.BanDurationCustom,
	}, "staff.male", bannedAt)
	if apperror.CodeOf(err) != apperror.CodeValidation {
		t.Errorf("custom without end: code = %s, want VALIDATION", apperror.CodeOf(err))
	}

	sameDay := bannedAt
	_, err = bans.ApplyBan("VST-0001", model.PersonTypeVisitor, BanPayload{
		Reason: "contraband", DurationKind: model.BanDurationCustom,
		StartDate: bannedAt, EndDate: &sameDay,
	}, "staff.male", bannedAt)
	if apperror.CodeOf(err) != apperror.CodeValidation {
		t.Errorf("end not after start: code = %s, want VALIDATION", apperror.CodeOf(err))
	}

	_, err = bans.ApplyBan("VST-9999", model.PersonTypeVisitor, BanPayload{
		Reason: "contraband", DurationKind: model.BanDurationOneWeek,
	}, "staff.male", bannedAt)
	if apperror.CodeOf(err) != apperror.CodeNotFound {
		t.Errorf("unknown person: code = %s, want NOT_FOUND", apperror.CodeOf(err))
	}
}

func TestApplyBanEditsActiveRecord(t *testing.T) {
	bans, store := testBanUsecase(t)

	first, err := bans.ApplyBan("VST-0001", model.PersonTypeVisitor, BanPayload{
		Reason: "contraband", DurationKind: model.BanDurationOneWeek,
	}, "staff.male", bannedAt)
	if err != nil {
		t.Fatalf("first ban: %v", err)
	}

	second, err := bans.ApplyBan("VST-0001", model.PersonTypeVisitor, BanPayload{
		Reason: "contraband, repeat offense", DurationKind: model.BanDurationOneMonth,
	}, "staff.female", bannedAt.Add(time.Hour))
	if err != nil {
		t.Fatalf("second ban: %v", err)
	}

	// Re-banning an already-banned person edits the active record in place
	if len(store.banRecords) != 1 {
		t.Fatalf("ledger records = %d, want 1", len(store.banRecords))
	}
	if second.ID != first.ID {
		t.Errorf("record IDs differ: %d vs %d", first.ID, second.ID)
	}
	if second.BanDuration != model.BanDurationOneMonth || second.BannedBy != "staff.female" {
		t.Errorf("edit not applied: %q by %q", second.BanDuration, second.BannedBy)
	}

	person, _ := store.Persons().Find("VST-0001", model.PersonTypeVisitor)
	if person.BanDuration != model.BanDurationOneMonth {
		t.Errorf("mirror duration = %q", person.BanDuration)
	}
}

func TestRemoveBanIdempotent(t *testing.T) {
	bans, store := testBanUsecase(t)

	if err := bans.RemoveBan("VST-0001", model.PersonTypeVisitor, "admin", "", bannedAt); err != nil {
		t.Errorf("remove on unbanned person: %v", err)
	}
	if len(store.banRecords) != 0 {
		t.Errorf("ledger touched on no-op removal")
	}

	err := bans.RemoveBan("VST-9999", model.PersonTypeVisitor, "admin", "", bannedAt)
	if apperror.CodeOf(err) != apperror.CodeNotFound {
		t.Errorf("unknown person: code = %s, want NOT_FOUND", apperror.CodeOf(err))
	}
}

func TestActiveBansLazyExpiry(t *testing.T) {
	bans, store := testBanUsecase(t)
	store.addPerson(model.Person{PersonID: "GST-0001", PersonType: model.PersonTypeGuest, FullName: "Ben Cruz"})

	if _, err := bans.ApplyBan("VST-0001", model.PersonTypeVisitor, BanPayload{
		Reason: "contraband", DurationKind: model.BanDurationOneWeek, StartDate: bannedAt,
	}, "staff.male", bannedAt); err != nil {
		t.Fatalf("ban visitor: %v", err)
	}
	if _, err := bans.ApplyBan("GST-0001", model.PersonTypeGuest, BanPayload{
		Reason: "disorderly conduct", DurationKind: model.BanDurationPermanent,
	}, "staff.male", bannedAt); err != nil {
		t.Fatalf("ban guest: %v", err)
	}

	entries, err := bans.ActiveBans(bannedAt.AddDate(0, 0, 3))
	if err != nil {
		t.Fatalf("active bans: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}

	// Eight days on, the one-week ban has lapsed; only the permanent one shows.
	// The stored flag stays set, filtering is strictly read-side.
	entries, _ = bans.ActiveBans(bannedAt.AddDate(0, 0, 8))
	if len(entries) != 1 {
		t.Fatalf("entries after lapse = %d, want 1", len(entries))
	}
	if entries[0].PersonID != "GST-0001" || entries[0].DurationRemaining != "Permanent" {
		t.Errorf("entry = %s %q", entries[0].PersonID, entries[0].DurationRemaining)
	}

	person, _ := store.Persons().Find("VST-0001", model.PersonTypeVisitor)
	if !person.IsBanned {
		t.Error("stored flag was swept on read")
	}
	if IsEffectivelyBanned(person, bannedAt.AddDate(0, 0, 8)) {
		t.Error("lapsed ban reported as effective")
	}
}

func TestViolationLifecycle(t *testing.T) {
	bans, store := testBanUsecase(t)

	_, err := bans.ApplyViolation("VST-0001", model.PersonTypeVisitor, "", "details", "staff.male")
	if apperror.CodeOf(err) != apperror.CodeValidation {
		t.Errorf("empty type: code = %s, want VALIDATION", apperror.CodeOf(err))
	}

	record, err := bans.ApplyViolation("VST-0001", model.PersonTypeVisitor, "verbal_abuse", "argued with staff", "staff.male")
	if err != nil {
		t.Fatalf("apply violation: %v", err)
	}
	if record.Status != model.LedgerStatusActive || record.ViolationType != "verbal_abuse" {
		t.Errorf("record = %q %q", record.Status, record.ViolationType)
	}

	person, _ := store.Persons().Find("VST-0001", model.PersonTypeVisitor)
	if person.ViolationType != "verbal_abuse" || person.ViolationDetails != "argued with staff" {
		t.Errorf("mirror = %q %q", person.ViolationType, person.ViolationDetails)
	}

	// Edit in place, same ledger record
	edited, err := bans.ApplyViolation("VST-0001", model.PersonTypeVisitor, "verbal_abuse", "argued with staff, second warning", "staff.female")
	if err != nil {
		t.Fatalf("edit violation: %v", err)
	}
	if len(store.vioRecords) != 1 || edited.ID != record.ID {
		t.Errorf("ledger records = %d, ids %d/%d", len(store.vioRecords), record.ID, edited.ID)
	}

	clearedAt := bannedAt.Add(time.Hour)
	if err := bans.RemoveViolation("VST-0001", model.PersonTypeVisitor, "admin", "resolved", clearedAt); err != nil {
		t.Fatalf("remove violation: %v", err)
	}
	person, _ = store.Persons().Find("VST-0001", model.PersonTypeVisitor)
	if person.ViolationType != "" || person.ViolationDetails != "" {
		t.Errorf("mirror not cleared: %q %q", person.ViolationType, person.ViolationDetails)
	}
	closed := store.vioRecords[0]
	if closed.Status != model.LedgerStatusRemoved || closed.RemovedBy != "admin" {
		t.Errorf("ledger = %q by %q", closed.Status, closed.RemovedBy)
	}

	// Removing again is a no-op
	if err := bans.RemoveViolation("VST-0001", model.PersonTypeVisitor, "admin", "", clearedAt); err != nil {
		t.Errorf("second removal: %v", err)
	}
	if len(store.vioRecords) != 1 {
		t.Errorf("ledger records = %d, want 1", len(store.vioRecords))
	}
}
