package cache

import (
	"errors"
	"testing"
	"time"

	"vershash/pkg/logger"
)

func TestSaveAndGetWithinTTL(t *testing.T) {
	c := NewWithTTL(logger.New("error"), time.Minute)

	if err := c.SaveObj("products", []string{"a", "b"}); err != nil {
		t.Fatalf("SaveObj: %v", err)
	}

	var got []string
	if err := c.GetObj("products", &got); err != nil {
		t.Fatalf("GetObj: %v", err)
	}
	if len(got) != 2 || got[0] != "a" {
		t.Fatalf("unexpected cached value: %v", got)
	}
}

func TestMissOnAbsentKey(t *testing.T) {
	c := NewWithTTL(logger.New("error"), time.Minute)

	var got []string
	if err := c.GetObj("nope", &got); !errors.Is(err, ErrMiss) {
		t.Fatalf("expected ErrMiss, got %v", err)
	}
}

func TestExpiredEntryMisses(t *testing.T) {
	c := NewWithTTL(logger.New("error"), 10*time.Millisecond)

	if err := c.SaveObj("products", 42); err != nil {
		t.Fatalf("SaveObj: %v", err)
	}

	time.Sleep(25 * time.Millisecond)

	var got int
	if err := c.GetObj("products", &got); !errors.Is(err, ErrMiss) {
		t.Fatalf("expected ErrMiss after TTL, got %v", err)
	}
}

func TestDeleteInvalidates(t *testing.T) {
	c := NewWithTTL(logger.New("error"), time.Minute)

	_ = c.SaveObj("products", 1)
	c.Delete("products")

	var got int
	if err := c.GetObj("products", &got); !errors.Is(err, ErrMiss) {
		t.Fatalf("expected ErrMiss after delete, got %v", err)
	}
}
