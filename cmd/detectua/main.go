// Command detectua classifies user agents from the command line or serves
// the detection HTTP API.
//
//	detectua serve
//	detectua parse [-format json|yaml|text] [-platform P -touch N] [ua...]
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	errUsage          = errors.New("usage: detectua <serve|parse> [flags]")
	errUnknownCommand = errors.New("unknown command")
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "detectua:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "serve":
		return serve(ctx, args[1:], stderr)
	case "parse":
		return parse(args[1:], stdin, stdout, stderr)
	case "-h", "-help", "--help", "help":
		fmt.Fprintln(stdout, errUsage)
		return nil
	default:
		return fmt.Errorf("%w %q; %w", errUnknownCommand, args[0], errUsage)
	}
}
