package provider

import (
	"context"
	"errors"
	"testing"

	"metaprobe/internal/pipeline"
)

type stubProvider struct {
	name    string
	accepts bool
	result  *Result
	err     error
	calls   int
}

func (s *stubProvider) Name() string              { return s.name }
func (s *stubProvider) Accepts(string) bool       { return s.accepts }
func (s *stubProvider) Version() map[string]string { return nil }

func (s *stubProvider) Describe(_ context.Context, _ string, _ *pipeline.Context) (*Result, error) {
	s.calls++
	return s.result, s.err
}

func TestNewRegistryRejectsDuplicates(t *testing.T) {
	a := &stubProvider{name: "mediainfo"}
	b := &stubProvider{name: "MediaInfo"}
	if _, err := NewRegistry(nil, a, b); err == nil {
		t.Fatal("expected duplicate name error")
	}
}

func TestNewRegistryRejectsEmptyName(t *testing.T) {
	if _, err := NewRegistry(nil, &stubProvider{name: "  "}); err == nil {
		t.Fatal("expected empty name error")
	}
}

func TestRegistryGetIsCaseInsensitive(t *testing.T) {
	a := &stubProvider{name: "mediainfo"}
	registry, err := NewRegistry(nil, a)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	got, ok := registry.Get("MediaInfo")
	if !ok || got != Provider(a) {
		t.Fatalf("Get = %v, %v", got, ok)
	}
	if _, ok := registry.Get("ffprobe"); ok {
		t.Fatal("unknown provider should not resolve")
	}
}

func TestRegistryDescribeFirstAcceptingWins(t *testing.T) {
	first := &stubProvider{name: "first", accepts: true, result: &Result{}}
	second := &stubProvider{name: "second", accepts: true, result: &Result{}}
	registry, err := NewRegistry(nil, first, second)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	scan := pipeline.NewContext("/media/movie.mkv", nil)
	result, err := registry.Describe(context.Background(), "/media/movie.mkv", scan)
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	if result != first.result {
		t.Fatal("expected the first provider's result")
	}
	if second.calls != 0 {
		t.Fatal("second provider should not run when the first succeeds")
	}
}

func TestRegistryDescribeFallsBackOnFailure(t *testing.T) {
	first := &stubProvider{name: "first", accepts: true, err: errors.New("boom")}
	second := &stubProvider{name: "second", accepts: true, result: &Result{}}
	registry, err := NewRegistry(nil, first, second)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	scan := pipeline.NewContext("/media/movie.mkv", nil)
	result, err := registry.Describe(context.Background(), "/media/movie.mkv", scan)
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	if result != second.result {
		t.Fatal("expected the fallback provider's result")
	}
}

func TestRegistryDescribeNoneAccepting(t *testing.T) {
	skipped := &stubProvider{name: "skipped"}
	registry, err := NewRegistry(nil, skipped)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	scan := pipeline.NewContext("/media/notes.txt", nil)
	_, err = registry.Describe(context.Background(), "/media/notes.txt", scan)
	if !errors.Is(err, pipeline.ErrProviderUnavailable) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
	if skipped.calls != 0 {
		t.Fatal("non-accepting provider should not run")
	}
}

func TestRegistryDescribeReportsLastError(t *testing.T) {
	boom := errors.New("boom")
	failing := &stubProvider{name: "failing", accepts: true, err: boom}
	registry, err := NewRegistry(nil, failing)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	scan := pipeline.NewContext("/media/movie.mkv", nil)
	_, err = registry.Describe(context.Background(), "/media/movie.mkv", scan)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want the provider's error", err)
	}
}
