package portfolio

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestClassifyKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"missing row", ErrNotFound, KindNotFound},
		{"wrapped missing row", fmt.Errorf("get skill: %w", ErrNotFound), KindNotFound},
		{"canceled", context.Canceled, KindNetwork},
		{"deadline", context.DeadlineExceeded, KindNetwork},
		{"driver failure", errors.New("database is locked"), KindNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify("op", tt.err)
			if got == nil {
				t.Fatal("classify returned nil for non-nil error")
			}
			if got.Kind != tt.want {
				t.Errorf("Kind = %v, want %v", got.Kind, tt.want)
			}
		})
	}
}

func TestClassifyNil(t *testing.T) {
	if got := classify("op", nil); got != nil {
		t.Errorf("classify(nil) = %v, want nil", got)
	}
}

func TestClassifyPassesThroughTypedErrors(t *testing.T) {
	orig := Validationf("title is required")
	got := classify("op", fmt.Errorf("add project: %w", orig))
	if got != orig {
		t.Errorf("classify should unwrap to the original typed error, got %v", got)
	}
}

func TestErrorIsMatchesOnKind(t *testing.T) {
	err := NotFoundf("post %q not found", "missing-slug")
	if !errors.Is(err, &Error{Kind: KindNotFound}) {
		t.Error("errors.Is should match on kind")
	}
	if errors.Is(err, &Error{Kind: KindValidation}) {
		t.Error("errors.Is should not match a different kind")
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := classify("save hero", cause)
	if !errors.Is(err, cause) {
		t.Error("classified error should wrap its cause")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindNetwork, "network"},
		{KindNotFound, "not_found"},
		{KindPermission, "permission"},
		{KindValidation, "validation"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
