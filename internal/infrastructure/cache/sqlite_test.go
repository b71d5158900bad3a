package cache

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/nutrilens/backend/internal/domain"
)

func newTestSQLiteCache(t *testing.T, ttl time.Duration) *SQLiteCache {
	t.Helper()
	cache, err := NewSQLiteCache(filepath.Join(t.TempDir(), "cache.db"), ttl)
	if err != nil {
		t.Fatalf("NewSQLiteCache failed: %v", err)
	}
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestSQLiteCache_SetAndGet(t *testing.T) {
	cache := newTestSQLiteCache(t, time.Hour)
	ctx := context.Background()

	record := &domain.ResolvedAdditive{
		Code:        "E407",
		Name:        "Carrageenan",
		Risk:        domain.RiskModerate,
		Functions:   []domain.FunctionCategory{domain.FunctionThickener},
		Description: "Seaweed-derived thickener.",
		Source:      domain.SourceFreshRemote,
	}

	if err := cache.Set(ctx, "E407", record); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := cache.Get(ctx, "E407")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Code != "E407" || got.Name != "Carrageenan" || got.Risk != domain.RiskModerate {
		t.Errorf("got %+v", got)
	}
	if len(got.Functions) != 1 || got.Functions[0] != domain.FunctionThickener {
		t.Errorf("Functions = %v, want [thickener]", got.Functions)
	}
	if got.Source != domain.SourceCachedRemote {
		t.Errorf("Source = %s, want %s for a durable hit", got.Source, domain.SourceCachedRemote)
	}
}

func TestSQLiteCache_MissForUnknownCode(t *testing.T) {
	cache := newTestSQLiteCache(t, time.Hour)

	_, err := cache.Get(context.Background(), "E999")
	if !errors.Is(err, domain.ErrCacheMiss) {
		t.Errorf("error = %v, want ErrCacheMiss", err)
	}
}

func TestSQLiteCache_TTLExpiry(t *testing.T) {
	cache := newTestSQLiteCache(t, 1*time.Nanosecond)
	ctx := context.Background()

	if err := cache.Set(ctx, "E407", &domain.ResolvedAdditive{Code: "E407"}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	time.Sleep(time.Millisecond)

	_, err := cache.Get(ctx, "E407")
	if !errors.Is(err, domain.ErrCacheMiss) {
		t.Errorf("error = %v, want ErrCacheMiss for an expired entry", err)
	}
}

func TestSQLiteCache_UpsertRefreshes(t *testing.T) {
	cache := newTestSQLiteCache(t, time.Hour)
	ctx := context.Background()

	if err := cache.Set(ctx, "E407", &domain.ResolvedAdditive{Code: "E407", Name: "first"}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := cache.Set(ctx, "E407", &domain.ResolvedAdditive{Code: "E407", Name: "second"}); err != nil {
		t.Fatalf("second Set failed: %v", err)
	}

	got, err := cache.Get(ctx, "E407")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Name != "second" {
		t.Errorf("Name = %s, want second", got.Name)
	}
}

func TestSQLiteCache_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	ctx := context.Background()

	first, err := NewSQLiteCache(path, time.Hour)
	if err != nil {
		t.Fatalf("NewSQLiteCache failed: %v", err)
	}
	if err := first.Set(ctx, "E407", &domain.ResolvedAdditive{Code: "E407", Name: "persisted"}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	second, err := NewSQLiteCache(path, time.Hour)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer second.Close()

	got, err := second.Get(ctx, "E407")
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if got.Name != "persisted" {
		t.Errorf("Name = %s, want persisted", got.Name)
	}
}
