package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (c *cli) newTypesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the data types of the active vocabulary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTypes()
		},
	}
}

func (c *cli) runTypes() error {
	var a []TypeOutput
	for _, t := range c.vocab.Types() {
		out := TypeOutput{Name: string(t)}
		if comp, ok := c.vocab.UnpremultiplyDataType(t); ok {
			expands := newComponentOutput(c.vocab, comp)
			out.Expands = &expands
		}
		a = append(a, out)
	}

	if c.format != "text" {
		return encode(c.stdout, c.format, a)
	}

	tw := tabwriter.NewWriter(c.stdout, 0, 8, 2, ' ', 0)
	for _, t := range a {
		if t.Expands != nil {
			fmt.Fprintf(tw, "<%s>\t<%s>%s\n", t.Name, t.Expands.Name, t.Expands.Multiplier)
		} else {
			fmt.Fprintf(tw, "<%s>\t\n", t.Name)
		}
	}
	return tw.Flush()
}
