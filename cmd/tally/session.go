package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/Veraticus/tally/internal/cli"
)

// finishSession turns the way a menu loop ended into the command's result.
// Interrupts and closed input end the session normally.
func finishSession(err error, handler *cli.InterruptHandler, out io.Writer, farewell string) error {
	switch {
	case err == nil:
		return nil
	case handler.WasInterrupted(), errors.Is(err, cli.ErrInputCancelled):
		return nil
	case errors.Is(err, cli.ErrInputTerminated):
		if _, werr := fmt.Fprintln(out, "\n"+cli.FormatInfo("Input closed. "+farewell)); werr != nil {
			return fmt.Errorf("failed to write farewell: %w", werr)
		}
		return nil
	default:
		return err
	}
}
