package scope_test

import (
	"context"
	"testing"

	"deadline-sync/internal/model"
	"deadline-sync/pkg/scope"
)

func TestScopeContext(t *testing.T) {
	if _, ok := scope.GetScopeFromContext(context.Background()); ok {
		t.Error("expected no scope in empty context")
	}

	ctx := scope.SetScopeToContext(context.Background(), model.Scope{UserID: "u1"})
	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok || sc.UserID != "u1" {
		t.Errorf("expected scope u1, got %+v %v", sc, ok)
	}

	ctx = scope.SetScopeToContext(context.Background(), model.Scope{})
	if _, ok := scope.GetScopeFromContext(ctx); ok {
		t.Error("expected empty user id to be rejected")
	}
}
