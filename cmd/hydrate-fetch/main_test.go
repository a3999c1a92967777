package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/Sternrassler/hydrate/internal/testutil"
	"github.com/Sternrassler/hydrate/pkg/hydrate"
	"github.com/Sternrassler/hydrate/pkg/webfetch"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("HYDRATE_TEST_KEY", "from-env")

	if got := getEnv("HYDRATE_TEST_KEY", "fallback"); got != "from-env" {
		t.Errorf("getEnv = %q, want %q", got, "from-env")
	}
	if got := getEnv("HYDRATE_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("getEnv = %q, want %q", got, "fallback")
	}
}

func TestSummarize(t *testing.T) {
	result := hydrate.Partitioned[hydrate.ItemWithChildren[webfetch.Document, webfetch.Asset]]{
		Successes: []hydrate.Success[hydrate.ItemWithChildren[webfetch.Document, webfetch.Asset]]{
			{
				ID: "doc-1",
				Value: hydrate.ItemWithChildren[webfetch.Document, webfetch.Asset]{
					Item:     webfetch.Document{ID: "doc-1", Title: "Welcome"},
					Children: []webfetch.Asset{{ID: "img-1"}},
				},
			},
		},
		Failures: []hydrate.Failure{
			{ID: "doc-2", Err: &hydrate.LoadError{ID: "doc-2", Err: errors.New("not found")}},
		},
	}

	got := summarize(result)

	if !strings.Contains(got, `ok   doc-1  "Welcome"  assets=1`) {
		t.Errorf("summary missing success line: %q", got)
	}
	if !strings.Contains(got, "fail doc-2") {
		t.Errorf("summary missing failure line: %q", got)
	}
	if !strings.Contains(got, "1 succeeded, 1 failed") {
		t.Errorf("summary missing totals: %q", got)
	}
}

func TestRun_EndToEnd(t *testing.T) {
	origin := testutil.NewMockOrigin()
	defer origin.Close()

	origin.SetDocument(testutil.MockDocument{
		ID:       "doc-1",
		Title:    "Welcome",
		AssetIDs: []string{"img-1"},
	}, 0)
	origin.SetAsset(testutil.MockAsset{ID: "img-1", ContentType: "image/png"}, 0)

	t.Setenv("HYDRATE_BASE_URL", origin.URL())

	var out, errOut strings.Builder
	code := run([]string{"doc-1", "doc-missing"}, &out, &errOut)

	if code != 1 {
		t.Errorf("exit code = %d, want 1 (one identifier failed)", code)
	}
	if !strings.Contains(out.String(), "ok   doc-1") {
		t.Errorf("output missing success for doc-1: %q", out.String())
	}
	if !strings.Contains(out.String(), "fail doc-missing") {
		t.Errorf("output missing failure for doc-missing: %q", out.String())
	}
}

func TestRun_NoArgs(t *testing.T) {
	var out, errOut strings.Builder
	code := run(nil, &out, &errOut)

	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
	if !strings.Contains(errOut.String(), "usage:") {
		t.Errorf("stderr missing usage: %q", errOut.String())
	}
	if out.String() != "" {
		t.Errorf("stdout = %q, want empty", out.String())
	}
}

func TestRun_SetupErrorGoesToStderr(t *testing.T) {
	t.Setenv("HYDRATE_BASE_URL", "http://localhost:8080")
	t.Setenv("REDIS_URL", "127.0.0.1:1") // nothing listens here

	var out, errOut strings.Builder
	code := run([]string{"doc-1"}, &out, &errOut)

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(errOut.String(), "connect to redis") {
		t.Errorf("stderr missing redis error: %q", errOut.String())
	}
	if out.String() != "" {
		t.Errorf("stdout = %q, want empty (errors go to stderr)", out.String())
	}
}
