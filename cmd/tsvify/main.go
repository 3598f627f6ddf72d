// Command tsvify lists local files, predicts their future cloud-storage
// addresses, and emits tab-separated manifests suitable for import into a
// Terra-style data table.
//
// Usage:
//
//	tsvify build    --prefix gs://bucket/ --entity sample [--dir .] [--ext cram] [--output final.tsv]
//	tsvify pair     --prefix gs://bucket/ --entity pairs --parent-ext cram --child-ext crai [--dir .] [--output final.tsv]
//	tsvify smash    --entity merged --output merged.tsv a.tsv b.tsv [...]
//	tsvify generate --dir . [--ext cram] [--count 10]
//	tsvify check    final.tsv
//
// Every flag can also be supplied as a TSVIFY_-prefixed environment
// variable (e.g. TSVIFY_PREFIX, TSVIFY_PARENT_EXT).
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/databiosphere/tsvify/errors"
	"github.com/databiosphere/tsvify/fs"
)

// Exit codes. Each error class gets its own so wrapper scripts can react
// without parsing stderr.
const (
	exitOK                = 0
	exitUsage             = 1
	exitDirectoryNotFound = 2
	exitInvalidHeader     = 3
	exitWriteFailed       = 4
	exitInvalidFilename   = 5
	exitInvalidManifest   = 6
)

// errUsage marks operator mistakes that were already reported to stderr.
var errUsage = fmt.Errorf("usage error")

func main() {
	os.Exit(run(fs.NewBaseOSFS(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(fsys fs.Filesystem, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stderr)
		return exitUsage
	}

	var err error
	switch cmd, rest := args[0], args[1:]; cmd {
	case "build":
		err = runBuild(fsys, rest, stderr)
	case "pair":
		err = runPair(fsys, rest, stderr)
	case "smash":
		err = runSmash(fsys, rest, stderr)
	case "generate":
		err = runGenerate(fsys, rest, stderr)
	case "check":
		err = runCheck(fsys, rest, stdout, stderr)
	case "help", "-h", "--help":
		printUsage(stdout)
		return exitOK
	default:
		fmt.Fprintf(stderr, "tsvify: unknown command %q\n", cmd)
		printUsage(stderr)
		return exitUsage
	}

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, pflag.ErrHelp):
		return exitOK
	case errors.Is(err, errUsage):
		return exitUsage
	}

	fmt.Fprintf(stderr, "tsvify: %v\n", err)
	return exitCode(err)
}

// exitCode maps an error's code to the process exit code.
func exitCode(err error) int {
	switch errors.CodeOf(err) {
	case errors.CodeDirectoryNotFound:
		return exitDirectoryNotFound
	case errors.CodeInvalidHeader:
		return exitInvalidHeader
	case errors.CodeWriteFailed:
		return exitWriteFailed
	case errors.CodeInvalidFilename:
		return exitInvalidFilename
	case errors.CodeInvalidManifest:
		return exitInvalidManifest
	default:
		return exitUsage
	}
}

// newFlags builds a flag set and a viper instance bound to TSVIFY_*
// environment variables. Flags win over the environment, the environment
// wins over defaults.
func newFlags(name string, stderr io.Writer) (*pflag.FlagSet, *viper.Viper) {
	fset := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fset.SetOutput(stderr)
	fset.BoolP("verbose", "v", false, "enable debug logging")

	vp := viper.New()
	vp.SetEnvPrefix("TSVIFY")
	vp.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vp.AutomaticEnv()
	return fset, vp
}

// parseFlags parses args and binds the result into viper.
func parseFlags(fset *pflag.FlagSet, vp *viper.Viper, args []string) error {
	if err := fset.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if err := vp.BindPFlags(fset); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	return nil
}

// newLogger returns a text logger on stderr. Debug level when verbose.
func newLogger(stderr io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}

// missingFlag reports a required flag the operator did not supply.
func missingFlag(stderr io.Writer, cmd, flag string) error {
	fmt.Fprintf(stderr, "tsvify %s: --%s is required (or set TSVIFY_%s)\n",
		cmd, flag, strings.ToUpper(strings.ReplaceAll(flag, "-", "_")))
	return errUsage
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `tsvify generates tab-separated data-table manifests from local files.

Commands:
  build     list files by extension and write a filename/location manifest
  pair      write a manifest pairing parent files with their index files
  smash     merge existing manifests under a new entity name
  generate  write fixture files for exercising build
  check     validate a manifest and report its shape

Run 'tsvify <command> --help' for command flags. Every flag can also be
set through a TSVIFY_-prefixed environment variable.
`)
}
