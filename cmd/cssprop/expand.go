package main

import (
	"github.com/spf13/cobra"

	"github.com/benbjohnson/cssprop/parser"
	"github.com/benbjohnson/cssprop/vocab"
)

func (c *cli) newExpandCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "expand DESCRIPTOR",
		Short:   "Print a descriptor with pre-multiplied data types expanded",
		Example: `  cssprop expand '<transform-list> | none'`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExpand(args[0])
		},
	}
}

func (c *cli) runExpand(input string) error {
	out := DescriptorOutput{Input: input}
	a, universal, err := c.components(input)
	if err != nil {
		out.Error = newErrorOutput(err)
	}
	out.Universal = universal

	for _, comp := range a {
		expanded, err := parser.Unpremultiplied[vocab.TypeName, vocab.Ident](c.vocab, comp)
		if err != nil {
			return err
		}
		out.Components = append(out.Components, newComponentOutput(c.vocab, expanded))
	}

	if c.format == "text" {
		err = writeDescriptorText(c.stdout, out)
	} else {
		err = encode(c.stdout, c.format, out)
	}
	if err != nil {
		return err
	}
	if out.Error != nil {
		return errFailed
	}
	return nil
}
