package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/benbjohnson/cssprop/parser"
	"github.com/benbjohnson/cssprop/vocab"
)

// DescriptorOutput is the serializable result of parsing one descriptor.
type DescriptorOutput struct {
	Input      string            `json:"input" yaml:"input"`
	Universal  bool              `json:"universal,omitempty" yaml:"universal,omitempty"`
	Components []ComponentOutput `json:"components,omitempty" yaml:"components,omitempty"`
	Error      *ErrorOutput      `json:"error,omitempty" yaml:"error,omitempty"`
}

// ComponentOutput holds a single component.
type ComponentOutput struct {
	Kind          string `json:"kind" yaml:"kind"`
	Name          string `json:"name" yaml:"name"`
	Multiplier    string `json:"multiplier,omitempty" yaml:"multiplier,omitempty"`
	Premultiplied bool   `json:"premultiplied,omitempty" yaml:"premultiplied,omitempty"`
}

// ErrorOutput holds a parse failure.
type ErrorOutput struct {
	Kind    string `json:"kind" yaml:"kind"`
	Offset  int    `json:"offset" yaml:"offset"`
	Message string `json:"message" yaml:"message"`
}

// TypeOutput describes one data type of the active vocabulary.
type TypeOutput struct {
	Name    string           `json:"name" yaml:"name"`
	Expands *ComponentOutput `json:"expands,omitempty" yaml:"expands,omitempty"`
}

func newComponentOutput(v *vocab.Vocabulary, c vocab.Component) ComponentOutput {
	out := ComponentOutput{
		Kind:          c.Name.Kind().String(),
		Multiplier:    c.Multiplier.String(),
		Premultiplied: parser.IsPremultiplied[vocab.TypeName, vocab.Ident](v, c.Name),
	}
	if t, ok := c.Name.DataType(); ok {
		out.Name = string(t)
	} else if id, ok := c.Name.Ident(); ok {
		out.Name = string(id)
	}
	return out
}

func newErrorOutput(err error) *ErrorOutput {
	out := &ErrorOutput{Message: err.Error()}
	var perr *parser.Error
	if errors.As(err, &perr) {
		out.Kind = perr.Kind.String()
		out.Offset = perr.Offset
	}
	return out
}

// encode writes v in the requested structured format.
func encode(w io.Writer, format string, v interface{}) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q", format)
}

// writeDescriptorText writes a human readable table of a parse result.
func writeDescriptorText(w io.Writer, d DescriptorOutput) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "%q\n", d.Input)
	switch {
	case d.Error != nil:
		fmt.Fprintf(tw, "  error\t%s\n", d.Error.Message)
	case d.Universal:
		fmt.Fprintf(tw, "  universal\t*\n")
	default:
		writeComponentsText(tw, d.Components)
	}
	return tw.Flush()
}

func writeComponentsText(w io.Writer, a []ComponentOutput) {
	for _, c := range a {
		note := ""
		if c.Premultiplied {
			note = "pre-multiplied"
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", c.Kind, c.Name, c.Multiplier, note)
	}
}
