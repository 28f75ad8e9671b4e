package app

import (
	"errors"
	"testing"

	"github.com/yusrlabs/yusr/internal/i18n"
)

func TestDefaultState(t *testing.T) {
	s := NewStore().Snapshot()

	if s.Language != i18n.Arabic {
		t.Errorf("language = %s, want ar", s.Language)
	}
	if s.CurrentScreen != DefaultScreen {
		t.Errorf("screen = %s, want %s", s.CurrentScreen, DefaultScreen)
	}
	if s.HajjDay != 8 || s.GlobalFontSize != DefaultFontSize || s.PIN != "1234" {
		t.Errorf("defaults = %+v", s)
	}
	if s.Onboarded || s.DarkMode || s.PilgrimData != nil {
		t.Errorf("fresh state not zeroed: %+v", s)
	}
}

func TestSelectUserMode(t *testing.T) {
	store := NewStore()

	if err := store.SelectUserMode("superuser"); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("invalid mode err = %v, want ErrInvalidMode", err)
	}

	if err := store.SelectUserMode(ModePilgrim); err != nil {
		t.Fatalf("select pilgrim: %v", err)
	}
	s := store.Snapshot()
	if s.UserMode != ModePilgrim {
		t.Errorf("mode = %s", s.UserMode)
	}
	if s.PilgrimData == nil || s.PilgrimData.ID != "PK-2024-001234" {
		t.Fatalf("pilgrim record not installed: %+v", s.PilgrimData)
	}

	// Re-selecting must not clobber in-session changes.
	store.AdjustWalletBalance(-500)
	if err := store.SelectUserMode(ModeOrganizer); err != nil {
		t.Fatalf("select organizer: %v", err)
	}
	s = store.Snapshot()
	if s.UserMode != ModeOrganizer {
		t.Errorf("mode = %s", s.UserMode)
	}
	if s.PilgrimData.WalletBalance != 2000 {
		t.Errorf("balance reset on re-select: %d", s.PilgrimData.WalletBalance)
	}
}

func TestTawafCounter(t *testing.T) {
	store := NewStore()
	store.ToggleTawafActive()

	for i := 0; i < TawafLaps; i++ {
		store.IncrementTawaf()
	}
	s := store.Snapshot()
	if s.TawafCount != TawafLaps {
		t.Fatalf("count = %d, want %d", s.TawafCount, TawafLaps)
	}
	if s.TawafActive {
		t.Error("completion must turn tracking off")
	}

	// The eighth increment is a no-op.
	store.IncrementTawaf()
	if got := store.Snapshot().TawafCount; got != TawafLaps {
		t.Errorf("count after overcount = %d", got)
	}

	// A completed counter cannot be reactivated until reset.
	store.ToggleTawafActive()
	if store.Snapshot().TawafActive {
		t.Error("completed counter reactivated")
	}

	store.ResetTawaf()
	s = store.Snapshot()
	if s.TawafCount != 0 || s.TawafActive {
		t.Errorf("after reset: %+v", s)
	}
	store.ToggleTawafActive()
	if !store.Snapshot().TawafActive {
		t.Error("toggle after reset should work")
	}
}

func TestToggleTaskIsSelfInverse(t *testing.T) {
	store := NewStore()

	store.ToggleTask("d8-3")
	if !store.Snapshot().TaskDone("d8-3") {
		t.Fatal("task not marked done")
	}
	store.ToggleTask("d8-3")
	if store.Snapshot().TaskDone("d8-3") {
		t.Fatal("second toggle did not undo")
	}
}

func TestLanguageValidation(t *testing.T) {
	store := NewStore()

	if err := store.SetLanguage(i18n.Urdu); err != nil {
		t.Fatalf("set ur: %v", err)
	}
	if err := store.SetLanguage("xx"); !errors.Is(err, ErrUnsupportedLanguage) {
		t.Errorf("err = %v, want ErrUnsupportedLanguage", err)
	}
	if got := store.Snapshot().Language; got != i18n.Urdu {
		t.Errorf("rejected change mutated language: %s", got)
	}
}

func TestWalletBalance(t *testing.T) {
	store := NewStore()

	// No pilgrim record: silent no-op.
	store.AdjustWalletBalance(100)
	if store.Snapshot().PilgrimData != nil {
		t.Fatal("no-op adjust created a record")
	}

	if err := store.SelectUserMode(ModePilgrim); err != nil {
		t.Fatalf("select mode: %v", err)
	}
	store.AdjustWalletBalance(-300)
	store.AdjustWalletBalance(50)
	if got := store.Snapshot().PilgrimData.WalletBalance; got != 2250 {
		t.Errorf("balance = %d, want 2250", got)
	}

	// No floor.
	store.AdjustWalletBalance(-10000)
	if got := store.Snapshot().PilgrimData.WalletBalance; got != -7750 {
		t.Errorf("balance = %d, want -7750", got)
	}
}

func TestPin(t *testing.T) {
	store := NewStore()

	if err := store.VerifyPin("1234"); err != nil {
		t.Errorf("default pin rejected: %v", err)
	}
	if err := store.VerifyPin("0000"); !errors.Is(err, ErrIncorrectPin) {
		t.Errorf("err = %v, want ErrIncorrectPin", err)
	}

	for _, bad := range []string{"", "123", "12345", "12a4", "١٢٣٤"} {
		if err := store.SetPin(bad); !errors.Is(err, ErrInvalidPin) {
			t.Errorf("SetPin(%q) err = %v, want ErrInvalidPin", bad, err)
		}
	}

	if err := store.SetPin("0042"); err != nil {
		t.Fatalf("set pin: %v", err)
	}
	if err := store.VerifyPin("1234"); !errors.Is(err, ErrIncorrectPin) {
		t.Error("old pin still accepted")
	}
	if err := store.VerifyPin("0042"); err != nil {
		t.Errorf("new pin rejected: %v", err)
	}
}

func TestFontSizeBounds(t *testing.T) {
	store := NewStore()

	for _, px := range []int{MinFontSize, MaxFontSize, 16} {
		if err := store.SetGlobalFontSize(px); err != nil {
			t.Errorf("SetGlobalFontSize(%d): %v", px, err)
		}
	}
	for _, px := range []int{MinFontSize - 1, MaxFontSize + 1, 0, -5} {
		if err := store.SetGlobalFontSize(px); !errors.Is(err, ErrFontSizeRange) {
			t.Errorf("SetGlobalFontSize(%d) err = %v, want ErrFontSizeRange", px, err)
		}
	}
	if got := store.Snapshot().GlobalFontSize; got != 16 {
		t.Errorf("rejected change mutated size: %d", got)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	store := NewStore()
	if err := store.SelectUserMode(ModePilgrim); err != nil {
		t.Fatalf("select mode: %v", err)
	}

	snap := store.Snapshot()
	snap.PilgrimData.WalletBalance = 0
	snap.CompletedTasks["x"] = struct{}{}

	s := store.Snapshot()
	if s.PilgrimData.WalletBalance != 2500 {
		t.Error("snapshot aliases live pilgrim data")
	}
	if s.TaskDone("x") {
		t.Error("snapshot aliases live task set")
	}
}

func TestSubscribeReceivesEvents(t *testing.T) {
	store := NewStore()
	ch := store.Subscribe()
	defer store.Unsubscribe(ch)

	store.NavigateTo("tawaf")
	store.IncrementTawaf()

	ev := <-ch
	if ev.Op != "navigate" || ev.Screen != "tawaf" {
		t.Errorf("first event = %+v", ev)
	}
	ev = <-ch
	if ev.Op != "incrementTawaf" {
		t.Errorf("second event = %+v", ev)
	}
}

func TestDerived(t *testing.T) {
	store := NewStore()
	if err := store.SelectUserMode(ModePilgrim); err != nil {
		t.Fatalf("select mode: %v", err)
	}
	store.IncrementTawaf()
	store.IncrementTawaf()

	s := store.Snapshot()
	if got := TawafRemaining(s); got != 5 {
		t.Errorf("remaining = %d, want 5", got)
	}
	if TawafComplete(s) {
		t.Error("complete at 2 laps")
	}
	if got := TawafProgress(s); got < 0.28 || got > 0.29 {
		t.Errorf("progress = %f", got)
	}

	if got := OriginalBalance(*s.PilgrimData); got != 185000 {
		t.Errorf("original balance = %d, want 185000", got)
	}

	done, total := TaskProgress(s, []string{"a", "b"})
	if done != 0 || total != 2 {
		t.Errorf("task progress = %d/%d", done, total)
	}
}
