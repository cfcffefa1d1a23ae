// Command gen-params derives the roots of unity of order 2^12 over the
// compiled-in prime field and writes them as a packed constant table.
//
// It is meant to run at build time, typically from a go:generate directive:
//
//	//go:generate go run github.com/agbru/nttparams/cmd/gen-params -o params_gen.go
//
// A C header with the same table is produced with -format c.
package main

import (
	"context"
	"os"

	"github.com/agbru/nttparams/internal/app"
	"github.com/agbru/nttparams/internal/config"
	apperrors "github.com/agbru/nttparams/internal/errors"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		os.Exit(apperrors.ExitSuccess)
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if config.IsHelp(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		os.Exit(apperrors.ExitErrorConfig)
	}

	os.Exit(application.Run(context.Background(), os.Stdout))
}
