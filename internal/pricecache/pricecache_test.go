package pricecache

import (
	"errors"
	"testing"
	"time"
)

func TestGetFetchesOnceWhileFresh(t *testing.T) {
	c := New(time.Hour)
	calls := 0
	fetch := func() (map[string]any, error) {
		calls++
		return map[string]any{"status": "OK"}, nil
	}

	for i := 0; i < 3; i++ {
		fields, err := c.Get(false, fetch)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if fields["status"] != "OK" {
			t.Fatalf("fields = %v, want cached table", fields)
		}
	}
	if calls != 1 {
		t.Fatalf("fetch calls = %d, want 1", calls)
	}
}

func TestGetForceRefreshBypassesCache(t *testing.T) {
	c := New(time.Hour)
	calls := 0
	fetch := func() (map[string]any, error) {
		calls++
		return map[string]any{"rev": calls}, nil
	}

	if _, err := c.Get(false, fetch); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	fields, err := c.Get(true, fetch)
	if err != nil {
		t.Fatalf("Get(force) error = %v", err)
	}
	if fields["rev"] != 2 {
		t.Fatalf("rev = %v, want 2 after forced refresh", fields["rev"])
	}
}

func TestGetRefetchesAfterTTL(t *testing.T) {
	c := New(time.Minute)
	current := time.Unix(1000, 0)
	c.now = func() time.Time { return current }

	calls := 0
	fetch := func() (map[string]any, error) {
		calls++
		return map[string]any{}, nil
	}

	if _, err := c.Get(false, fetch); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	current = current.Add(2 * time.Minute)
	if _, err := c.Get(false, fetch); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if calls != 2 {
		t.Fatalf("fetch calls = %d, want 2 after expiry", calls)
	}
}

func TestGetKeepsPreviousEntryWhenRefreshFails(t *testing.T) {
	c := New(time.Hour)
	if _, err := c.Get(false, func() (map[string]any, error) {
		return map[string]any{"status": "OK"}, nil
	}); err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	fields, err := c.Get(true, func() (map[string]any, error) {
		return nil, errors.New("remote down")
	})
	if err != nil {
		t.Fatalf("Get() error = %v, want stale table", err)
	}
	if fields["status"] != "OK" {
		t.Fatalf("fields = %v, want previous entry", fields)
	}
}

func TestGetPropagatesFirstFetchError(t *testing.T) {
	c := New(time.Hour)

	_, err := c.Get(false, func() (map[string]any, error) {
		return nil, errors.New("remote down")
	})
	if err == nil {
		t.Fatal("Get() error = nil, want fetch error with empty cache")
	}
}
