package services

import (
	"testing"

	"payu-draw-api/models"
)

func TestLogClickKeepsEveryClick(t *testing.T) {
	s := NewTaskService(setupTestDB(t))

	handle := "@payu_fan"
	reqs := []models.TaskClickRequest{
		{Wallet: "0xAAA", Platform: "telegram", Handle: &handle},
		{Wallet: "0xAAA", Platform: "telegram", Handle: &handle}, // repeat click stays
		{Wallet: "0xAAA", Platform: "x"},
		{Wallet: "0xBBB", Platform: "instagram_story"},
	}
	for _, req := range reqs {
		if _, err := s.LogClick(req); err != nil {
			t.Fatalf("LogClick failed: %v", err)
		}
	}

	history, err := s.HistoryByWallet("0xAAA")
	if err != nil {
		t.Fatalf("HistoryByWallet failed: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("expected 3 clicks for wallet, got %d", len(history))
	}
	for _, click := range history {
		if click.UserID != "0xAAA" {
			t.Fatalf("history leaked another wallet's click: %+v", click)
		}
		if click.ClickedAt.IsZero() {
			t.Fatal("expected clicked_at to be set")
		}
	}

	all, err := s.ListAll()
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 clicks total, got %d", len(all))
	}

	count, err := s.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 4 {
		t.Fatalf("expected count 4, got %d", count)
	}
}

func TestHistoryForUnknownWalletIsEmpty(t *testing.T) {
	s := NewTaskService(setupTestDB(t))

	history, err := s.HistoryByWallet("0xnobody")
	if err != nil {
		t.Fatalf("HistoryByWallet failed: %v", err)
	}
	if history == nil || len(history) != 0 {
		t.Fatalf("expected empty non-nil history, got %#v", history)
	}
}
