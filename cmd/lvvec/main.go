// SPDX-License-Identifier: MIT

// Command lvvec is the command-line front end for the vector package.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/lvvec/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	var exitErr *cli.ExitError
	if err != nil && !(errors.As(err, &exitErr) && exitErr.Reported) {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(cli.GetExitCode(err))
}
