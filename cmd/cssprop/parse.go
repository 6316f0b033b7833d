package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/benbjohnson/cssprop/vocab"
)

func (c *cli) newParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse DESCRIPTOR...",
		Short: "Parse syntax descriptors and print their components",
		Example: `  cssprop parse '<length> | auto'
  cssprop parse --format json '<color>#' '*'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runParse(cmd.Context(), args)
		},
	}
}

func (c *cli) runParse(ctx context.Context, args []string) error {
	logger := c.logger.With(slog.String("component", "parse"))

	var results []DescriptorOutput
	var failed bool
	for _, input := range args {
		out := c.parse(input)
		if out.Error != nil {
			failed = true
			logger.LogAttrs(ctx, slog.LevelDebug, "invalid descriptor",
				slog.String("input", input),
				slog.String("kind", out.Error.Kind),
				slog.Int("offset", out.Error.Offset))
		} else {
			logger.LogAttrs(ctx, slog.LevelDebug, "parsed descriptor",
				slog.String("input", input),
				slog.Int("components", len(out.Components)))
		}
		results = append(results, out)
	}

	if c.format == "text" {
		for _, out := range results {
			if err := writeDescriptorText(c.stdout, out); err != nil {
				return err
			}
		}
	} else if err := encode(c.stdout, c.format, results); err != nil {
		return err
	}

	if failed {
		return errFailed
	}
	return nil
}

// parse parses input against the active vocabulary.
func (c *cli) parse(input string) DescriptorOutput {
	out := DescriptorOutput{Input: input}
	d, err := c.vocab.Parse(input)
	if err != nil {
		out.Error = newErrorOutput(err)
		return out
	}
	out.Universal = d.IsUniversal()
	for _, comp := range d.Components() {
		out.Components = append(out.Components, newComponentOutput(c.vocab, comp))
	}
	return out
}

// components returns the parsed components of input, or the parse error.
func (c *cli) components(input string) ([]vocab.Component, bool, error) {
	d, err := c.vocab.Parse(input)
	if err != nil {
		return nil, false, err
	}
	return d.Components(), d.IsUniversal(), nil
}
