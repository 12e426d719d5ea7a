package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
)

const (
	EnvLedgerFile = "BK_LEDGER_FILE"
	EnvCurrency   = "BK_CURRENCY"
	EnvVerbose    = "BK_VERBOSE"
)

// RunExtension attempts to find and execute an external bk-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
//
// The extension receives the resolved global flags as environment variables.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "bk-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Printf("External command %q not found in PATH: %v", externalCmdName, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvLedgerFile+"="+LedgerFile())
	cmd.Env = append(cmd.Env, EnvCurrency+"="+Currency())
	cmd.Env = append(cmd.Env, EnvVerbose+"="+strconv.FormatBool(IsVerbose()))

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
