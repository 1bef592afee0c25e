package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/regclient/toolsel/internal/godbg"
	"github.com/regclient/toolsel/types"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		// clean shutdown
		cancel()
	}()
	godbg.SignalTrace(os.Stderr)

	cmd, _ := NewRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		// provide tips for common error messages
		switch {
		case errors.Is(err, types.ErrUnsupportedOSVersion):
			fmt.Fprintf(os.Stderr, "Try setting the host OS version with \"--os-version\" or \"--platform os/arch/version\"\n")
		case errors.Is(err, types.ErrUnsupportedPlatform):
			fmt.Fprintf(os.Stderr, "Try \"toolsel release get <id>\" to list the platforms of a release\n")
		case errors.Is(err, ErrMissingCatalog):
			fmt.Fprintf(os.Stderr, "Try \"toolsel config set --catalog <file>\" to set a default catalog\n")
		}
		os.Exit(1)
	}
	os.Exit(0)
}
