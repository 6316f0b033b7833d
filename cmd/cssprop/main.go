// Command cssprop parses CSS custom property syntax descriptors.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/benbjohnson/cssprop/vocab"
)

// errFailed is returned when at least one descriptor failed to parse.
// The failures themselves have already been written to the output.
var errFailed = errors.New("one or more descriptors are invalid")

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(os.Stderr, "cssprop:", err)
		}
		os.Exit(1)
	}
}

// cli holds the state shared by all subcommands.
type cli struct {
	stdout io.Writer
	stderr io.Writer

	verbose   bool
	format    string
	vocabPath string

	logger *slog.Logger
	vocab  *vocab.Vocabulary
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	c := &cli{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "cssprop",
		Short: "Parse CSS custom property syntax descriptors",
		Long: `cssprop parses the "syntax" descriptor of @property rules, such as
"<length> | auto" or "<color>#", and reports the components it contains.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.init(cmd.Context())
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVarP(&c.format, "format", "f", "text", "output format: text, json or yaml")
	flags.StringVar(&c.vocabPath, "vocab", "", "YAML vocabulary file (default: builtin data types)")

	root.AddCommand(
		c.newParseCommand(),
		c.newExpandCommand(),
		c.newTypesCommand(),
	)
	return root
}

// init sets up logging and loads the vocabulary.
func (c *cli) init(ctx context.Context) error {
	level := slog.LevelWarn
	if c.verbose {
		level = slog.LevelDebug
	}
	c.logger = slog.New(slog.NewTextHandler(c.stderr, &slog.HandlerOptions{Level: level}))

	switch c.format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unknown format %q", c.format)
	}

	if c.vocabPath == "" {
		c.vocab = vocab.Default()
		return nil
	}
	v, err := vocab.LoadFile(c.vocabPath)
	if err != nil {
		return err
	}
	c.vocab = v
	c.logger.LogAttrs(ctx, slog.LevelDebug, "loaded vocabulary",
		slog.String("component", "vocab"),
		slog.String("path", c.vocabPath),
		slog.Int("types", len(v.Types())))
	return nil
}
