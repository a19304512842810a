package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/terraincognita07/medlifequest/internal/kv"
	"github.com/terraincognita07/medlifequest/internal/services"
)

const resetConfirmationWord = "RESET"

var ErrResetNotConfirmed = errors.New("account reset not confirmed")

type ResetOptions struct {
	// Yes skips the interactive confirmation.
	Yes bool
	In  *os.File
	Out io.Writer
}

// RunResetAccountCommand erases every persisted user state slot in store.
// Without Yes it asks for confirmation, which needs a terminal on In.
func RunResetAccountCommand(store kv.Store, logger *slog.Logger, options ResetOptions) error {
	out := options.Out
	if out == nil {
		out = io.Discard
	}

	if !options.Yes {
		if !isTerminal(options.In) {
			return fmt.Errorf("%w: stdin is not a terminal, rerun with --yes", ErrResetNotConfirmed)
		}
		if err := confirmReset(options.In, out); err != nil {
			return err
		}
	}

	stored := storedSlots(store, logger)

	service := services.NewUserStateService(store, logger)
	if err := service.ResetAccount(); err != nil {
		return fmt.Errorf("reset account: %w", err)
	}

	fmt.Fprintln(out, "✅ Account reset successful")
	switch {
	case stored == nil:
		fmt.Fprintln(out, "All symptoms, reminders and profile settings were removed.")
	case len(stored) == 0:
		fmt.Fprintln(out, "Nothing was stored.")
	default:
		fmt.Fprintf(out, "Erased: %s\n", strings.Join(stored, ", "))
	}
	return nil
}

// storedSlots lists the state slots present before a reset, or nil when the
// backend cannot enumerate its keys.
func storedSlots(store kv.Store, logger *slog.Logger) []string {
	lister, ok := store.(kv.Lister)
	if !ok {
		return nil
	}
	keys, err := lister.Keys()
	if err != nil {
		logger.Warn("listing state slots failed", slog.String("error", err.Error()))
		return nil
	}
	return keys
}

func confirmReset(in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "This erases all symptoms, reminders and profile settings.\nType %s to continue: ", resetConfirmationWord)

	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read confirmation: %w", err)
	}

	if strings.TrimSpace(line) != resetConfirmationWord {
		return ErrResetNotConfirmed
	}
	return nil
}
