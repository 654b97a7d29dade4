package lesson

import (
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/aretw0/primer/pkg/adapters/memory"
	"github.com/aretw0/primer/pkg/dsl"
	"github.com/aretw0/primer/pkg/registry"
	"github.com/mitchellh/mapstructure"
)

// Context keys used by the lesson flow.
const (
	KeyName          = "name"
	KeyAge           = "age"
	KeyScore         = "score"
	KeyIsStudent     = "is_student"
	KeyFruits        = "fruits"
	KeyGrade         = "grade"
	KeyFavoriteColor = "favoriteColor"
	KeyStudent       = "student"
)

// Logic function names.
const (
	FuncCalculateGrade = "calculate_grade"
	FuncEnroll         = "enroll"
)

// EntryNode is the first node of the lesson flow.
const EntryNode = "start"

// ColorPrompt is printed verbatim before the single blocking read.
const ColorPrompt = "What's your favorite color? "

// Variables returns the initial context of a lesson run.
func Variables() map[string]any {
	return map[string]any{
		KeyName:      Name,
		KeyAge:       Age,
		KeyScore:     Score,
		KeyIsStudent: IsStudent,
		KeyFruits:    Fruits(),
	}
}

// Flow builds the lesson as a linear chain of nodes.
func Flow() (*memory.Loader, error) {
	b := dsl.New()

	b.Add(EntryNode).
		Text("Basic Information:\nName: {{ .name }}\nAge: {{ .age }}\nScore: {{ .score }}").
		Go("greeting")

	b.Add("greeting").
		Text("{{ greet .name }}").
		Go("calculate_grade")

	b.Add("calculate_grade").
		Logic(FuncCalculateGrade).
		SaveTo(KeyGrade).
		Go("grade")

	b.Add("grade").
		Text("Grade: {{ .grade }}").
		Go("count")

	b.Add("count").
		Text("Counting to 5:\n{{ range seq 1 5 }}Count: {{ . }}\n{{ end }}").
		Go("fruits")

	b.Add("fruits").
		Text("Fruits: {{ list .fruits }}").
		Go("likes")

	b.Add("likes").
		Text("{{ range .fruits }}I like {{ . }}\n{{ end }}").
		Go("ask_color")

	b.Add("ask_color").
		Question(ColorPrompt).
		SaveTo(KeyFavoriteColor).
		Go("color_reply")

	b.Add("color_reply").
		Text("Nice choice! {{ .favoriteColor }} is a great color.").
		Go("enroll")

	b.Add("enroll").
		Logic(FuncEnroll).
		SaveTo(KeyStudent).
		Go("study")

	b.Add("study").
		Text(`{{ study .student "Python" }}`).
		Go("done")

	b.Add("done").
		Text("Program completed successfully!").
		Terminal()

	return b.Build()
}

// Functions returns the registry backing the lesson's logic nodes.
func Functions() *registry.Registry {
	reg := registry.NewRegistry()

	reg.Register(FuncCalculateGrade, func(ctx context.Context, vars map[string]any) (any, error) {
		var in struct {
			Score float64 `mapstructure:"score"`
		}
		if err := decodeVars(vars, &in); err != nil {
			return nil, err
		}
		return CalculateGrade(in.Score), nil
	})

	reg.Register(FuncEnroll, func(ctx context.Context, vars map[string]any) (any, error) {
		var s Student
		if err := decodeVars(vars, &s); err != nil {
			return nil, err
		}
		return s, nil
	})

	return reg
}

// Funcs returns the template functions used by the lesson content.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"greet": Greet,
		"list":  FormatList,
		"seq":   seq,
		"study": func(s Student, subject string) (string, error) {
			var sb strings.Builder
			if err := s.Study(&sb, subject); err != nil {
				return "", err
			}
			return strings.TrimSuffix(sb.String(), "\n"), nil
		},
	}
}

func seq(from, to int) []int {
	if to < from {
		return nil
	}
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

func decodeVars(vars map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(vars); err != nil {
		return fmt.Errorf("invalid lesson variables: %w", err)
	}
	return nil
}
