package cli

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aretw0/primer"
	"github.com/aretw0/primer/internal/presentation/graph"
	"github.com/aretw0/primer/internal/validator"
	"github.com/aretw0/primer/pkg/lesson"
)

// yamlExporter is implemented by loaders that can dump their flow.
type yamlExporter interface {
	ExportYAML() ([]byte, error)
}

// WriteGraph prints the lesson flow as a Mermaid diagram.
func WriteGraph(w io.Writer) error {
	engine, err := primer.New()
	if err != nil {
		return fmt.Errorf("error initializing primer: %w", err)
	}
	nodes, err := engine.Inspect()
	if err != nil {
		return fmt.Errorf("error inspecting flow: %w", err)
	}
	_, err = io.WriteString(w, graph.GenerateMermaid(nodes, engine.EntryNode(), nil))
	return err
}

// WriteInspect lists the lesson nodes, or dumps the whole flow as YAML.
func WriteInspect(w io.Writer, asYAML bool) error {
	engine, err := primer.New()
	if err != nil {
		return fmt.Errorf("error initializing primer: %w", err)
	}

	if asYAML {
		exp, ok := engine.Loader().(yamlExporter)
		if !ok {
			return errors.New("loader does not support yaml export")
		}
		out, err := exp.ExportYAML()
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	}

	nodes, err := engine.Inspect()
	if err != nil {
		return fmt.Errorf("error inspecting flow: %w", err)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tNEXT")
	for _, n := range nodes {
		next := n.Next
		if n.IsTerminal() {
			next = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", n.ID, n.Type, next)
	}
	return tw.Flush()
}

// Validate checks the lesson flow for consistency.
func Validate() error {
	flow, err := lesson.Flow()
	if err != nil {
		return err
	}
	return validator.ValidateFlow(flow, lesson.EntryNode, lesson.Functions())
}
