package runtime

import (
	"context"
	"fmt"
	"strings"
	"text/template"
)

// Interpolator renders a node template against the run data.
type Interpolator func(ctx context.Context, templateStr string, data any) (string, error)

// DefaultInterpolator renders Go text/templates without extra functions.
var DefaultInterpolator = NewTemplateInterpolator(nil)

// NewTemplateInterpolator returns an Interpolator backed by text/template.
// Missing keys are reported as errors instead of printing "<no value>".
func NewTemplateInterpolator(funcs template.FuncMap) Interpolator {
	return func(ctx context.Context, templateStr string, data any) (string, error) {
		if !strings.Contains(templateStr, "{{") {
			return templateStr, nil
		}

		tmpl, err := template.New("node").
			Funcs(funcs).
			Option("missingkey=error").
			Parse(templateStr)
		if err != nil {
			return "", fmt.Errorf("invalid template: %w", err)
		}

		var sb strings.Builder
		if err := tmpl.Execute(&sb, data); err != nil {
			return "", err
		}
		return sb.String(), nil
	}
}
