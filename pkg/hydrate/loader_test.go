package hydrate

import (
	"context"
	"errors"
	"testing"
)

func TestLoadErrorMessage(t *testing.T) {
	cause := errors.New("connection refused")
	err := &LoadError{ID: "doc-1", Err: cause}

	want := `load "doc-1": connection refused`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is does not reach the wrapped cause")
	}
}

func TestLoaderFuncAdapter(t *testing.T) {
	loader := LoaderFunc[string](func(ctx context.Context, id string) (string, error) {
		return "value-" + id, nil
	})

	got, err := loader.Load(context.Background(), "x")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != "value-x" {
		t.Errorf("Load = %q, want %q", got, "value-x")
	}
}
