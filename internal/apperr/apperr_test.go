package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundMessage(t *testing.T) {
	err := NotFound("shipment", "abc-123")
	want := "could not find shipment with id: abc-123"
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}

func TestLockedMessage(t *testing.T) {
	err := Locked("abc-123")
	want := "record is locked: shipment abc-123 has status COMPLETED"
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}

func TestHelpersUnwrap(t *testing.T) {
	wrapped := fmt.Errorf("update failed: %w", NotFound("item", "x"))
	if !IsNotFound(wrapped) {
		t.Fatal("IsNotFound must see through wrapping")
	}
	if IsLocked(wrapped) {
		t.Fatal("IsLocked must not match a not-found error")
	}

	wrapped = fmt.Errorf("delete failed: %w", Locked("x"))
	if !IsLocked(wrapped) {
		t.Fatal("IsLocked must see through wrapping")
	}

	if IsNotFound(errors.New("boom")) || IsLocked(errors.New("boom")) {
		t.Fatal("helpers must reject unrelated errors")
	}
}
