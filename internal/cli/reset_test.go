package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/terraincognita07/medlifequest/internal/kv"
	"github.com/terraincognita07/medlifequest/internal/logging"
	"github.com/terraincognita07/medlifequest/internal/services"
)

func seededStore(t *testing.T) *kv.MemoryStore {
	t.Helper()

	store := kv.NewMemoryStore()
	service := services.NewUserStateService(store, logging.Discard())
	if err := service.CompleteOnboarding("Robin"); err != nil {
		t.Fatalf("seed onboarding: %v", err)
	}
	if err := service.SelectTheme("ocean"); err != nil {
		t.Fatalf("seed theme: %v", err)
	}
	if store.Len() == 0 {
		t.Fatal("expected seeded store to hold state")
	}
	return store
}

func TestRunResetAccountCommandWithYes(t *testing.T) {
	t.Parallel()

	store := seededStore(t)
	var output bytes.Buffer

	if err := RunResetAccountCommand(store, logging.Discard(), ResetOptions{Yes: true, Out: &output}); err != nil {
		t.Fatalf("RunResetAccountCommand() unexpected error: %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("expected store to be empty, got %d keys", store.Len())
	}
	if !strings.Contains(output.String(), "Account reset successful") {
		t.Fatalf("expected confirmation output, got %q", output.String())
	}
	if !strings.Contains(output.String(), "Erased: hasCompletedOnboarding, selectedTheme, userName") {
		t.Fatalf("expected erased slots to be listed, got %q", output.String())
	}
}

func TestRunResetAccountCommandOnEmptyStore(t *testing.T) {
	t.Parallel()

	var output bytes.Buffer
	if err := RunResetAccountCommand(kv.NewMemoryStore(), logging.Discard(), ResetOptions{Yes: true, Out: &output}); err != nil {
		t.Fatalf("RunResetAccountCommand() unexpected error: %v", err)
	}
	if !strings.Contains(output.String(), "Nothing was stored.") {
		t.Fatalf("expected empty store message, got %q", output.String())
	}
}

func TestRunResetAccountCommandRequiresTerminalWithoutYes(t *testing.T) {
	t.Parallel()

	stdin, err := os.Create(filepath.Join(t.TempDir(), "stdin"))
	if err != nil {
		t.Fatalf("create stdin file: %v", err)
	}
	t.Cleanup(func() {
		_ = stdin.Close()
	})

	store := seededStore(t)
	err = RunResetAccountCommand(store, logging.Discard(), ResetOptions{In: stdin})
	if !errors.Is(err, ErrResetNotConfirmed) {
		t.Fatalf("expected ErrResetNotConfirmed, got %v", err)
	}
	if store.Len() == 0 {
		t.Fatal("expected state to be kept when not confirmed")
	}
}

func TestConfirmReset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "exact word", input: "RESET\n"},
		{name: "surrounding spaces", input: "  RESET  \r\n"},
		{name: "no trailing newline", input: "RESET"},
		{name: "lowercase rejected", input: "reset\n", wantErr: true},
		{name: "empty rejected", input: "", wantErr: true},
	}

	for _, testCase := range tests {
		var output bytes.Buffer
		err := confirmReset(strings.NewReader(testCase.input), &output)
		if testCase.wantErr != (err != nil) {
			t.Fatalf("%s: confirmReset() error = %v, wantErr %v", testCase.name, err, testCase.wantErr)
		}
		if testCase.wantErr && !errors.Is(err, ErrResetNotConfirmed) {
			t.Fatalf("%s: expected ErrResetNotConfirmed, got %v", testCase.name, err)
		}
		if !strings.Contains(output.String(), resetConfirmationWord) {
			t.Fatalf("%s: expected prompt to name %s, got %q", testCase.name, resetConfirmationWord, output.String())
		}
	}
}
