package storage

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestMemoryStorePutOverwrites(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Put(ctx, "k", bytes.NewReader([]byte("one")), 3, "application/pdf"); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.Put(ctx, "k", bytes.NewReader([]byte("two")), 3, "application/pdf"); err != nil {
		t.Fatalf("second put: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("overwrite should keep one blob, got %d", s.Len())
	}
}

func TestMemoryStoreSignedGetURLDoesNotCheckExistence(t *testing.T) {
	s := NewMemoryStore()

	url, err := s.SignedGetURL(context.Background(), "documents/u1/missing.pdf", 60*time.Second)
	if err != nil {
		t.Fatalf("signing an absent key should succeed: %v", err)
	}
	if !strings.Contains(url, "documents/u1/missing.pdf") {
		t.Fatalf("url should reference the key: %s", url)
	}

	// the encoded expiry sits ttl from now
	i := strings.Index(url, "expires=")
	if i < 0 {
		t.Fatalf("url missing expiry: %s", url)
	}
	exp, err := strconv.ParseInt(url[i+len("expires="):], 10, 64)
	if err != nil {
		t.Fatalf("parse expiry: %v", err)
	}
	want := time.Now().Add(60 * time.Second).Unix()
	if exp < want-2 || exp > want+2 {
		t.Fatalf("expiry %d not near %d", exp, want)
	}
}

func TestMemoryStoreDeleteToleratesMissing(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Delete(ctx, "never-existed"); err != nil {
		t.Fatalf("delete missing: %v", err)
	}

	_ = s.Put(ctx, "k", bytes.NewReader([]byte("x")), 1, "application/pdf")
	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if s.Has("k") {
		t.Fatal("blob should be gone")
	}
}

func TestMemoryStoreHasAndLen(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_ = s.Put(ctx, fmt.Sprintf("k-%d", i), bytes.NewReader([]byte("x")), 1, "application/pdf")
	}
	if s.Len() != 3 {
		t.Fatalf("len = %d", s.Len())
	}
	if !s.Has("k-1") || s.Has("k-9") {
		t.Fatal("Has answered wrong")
	}
}
