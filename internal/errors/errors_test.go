package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodeOfWalksWrappedChain(t *testing.T) {
	base := New(CodeConfigurationError, "max items must be at least 1", nil)
	wrapped := fmt.Errorf("build picker: %w", base)

	if got := CodeOf(wrapped); got != CodeConfigurationError {
		t.Fatalf("expected %s, got %s", CodeConfigurationError, got)
	}
	if !IsCode(wrapped, CodeConfigurationError) {
		t.Fatal("expected IsCode to match wrapped code")
	}
	if IsCode(errors.New("plain"), CodeConfigurationError) {
		t.Fatal("plain errors should not carry a code")
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  Error
		want string
	}{
		{"MessageOnly", New(CodeNotFound, "item x not found", nil), "item x not found"},
		{"MessageAndCause", New(CodeParseFailed, "parse items.json", errors.New("bad token")), "parse items.json: bad token"},
		{"CauseOnly", New(CodeCatalogLoad, "", errors.New("boom")), "boom"},
		{"CodeOnly", New(CodeInvalidItem, "", nil), "invalid_item"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
