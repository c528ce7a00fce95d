package domain

import (
	"errors"
	"testing"
	"time"
)

func TestLoginEvent_DateAndTime(t *testing.T) {
	at := time.Date(2026, 3, 7, 9, 5, 1, 250000000, time.Local)
	ev := NewLoginEvent("alice", at)

	if ev.Date() != "2026-03-07" {
		t.Fatalf("unexpected date: %s", ev.Date())
	}
	if ev.Time() != "09:05:01.250000" {
		t.Fatalf("unexpected time: %s", ev.Time())
	}
}

func TestTokenPayloadErrorIsMalformed(t *testing.T) {
	if !errors.Is(ErrTokenPayload, ErrTokenMalformed) {
		t.Fatalf("ErrTokenPayload should match ErrTokenMalformed")
	}
	if errors.Is(ErrTokenMalformed, ErrTokenPayload) {
		t.Fatalf("ErrTokenMalformed must not match ErrTokenPayload")
	}
}

func TestDuplicateErrorsAreDuplicateCredential(t *testing.T) {
	for _, err := range []error{ErrDuplicateUsername, ErrDuplicateEmail} {
		if !errors.Is(err, ErrDuplicateCredential) {
			t.Fatalf("%v should match ErrDuplicateCredential", err)
		}
	}
}

func TestCustomerPatch_ApplyKeepsNilFields(t *testing.T) {
	name, phone, newPhone := "Acme", "111", "222"
	c := Customer{ID: 1, Name: &name, Phone: &phone}

	CustomerPatch{Phone: &newPhone}.Apply(&c)

	if c.Name == nil || *c.Name != "Acme" {
		t.Fatalf("name should be untouched: %v", c.Name)
	}
	if c.Phone == nil || *c.Phone != "222" {
		t.Fatalf("phone should be updated: %v", c.Phone)
	}
}
