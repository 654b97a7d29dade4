package lesson

import (
	"fmt"
	"strings"
)

// Fixed lesson variables.
const (
	Name  = "Alice"
	Age   = 25
	Score = 95.5

	// IsStudent is declared by the lesson but never read.
	IsStudent = true
)

// Fruits returns the lesson's fruit list in declaration order.
// A fresh slice is returned so callers cannot alter the lesson.
func Fruits() []string {
	return []string{"apple", "banana", "orange"}
}

// Greet returns the greeting for person.
func Greet(person string) string {
	return fmt.Sprintf("Hello, %s!", person)
}

// CalculateGrade maps a score to a letter grade.
// The first matching threshold wins.
func CalculateGrade(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	default:
		return "C"
	}
}

// FormatList renders items as a bracketed list literal, e.g. ['apple', 'banana'].
// Items are single-quoted unless they contain a single quote and no double quote.
func FormatList(items []string) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(quote(item))
	}
	sb.WriteByte(']')
	return sb.String()
}

func quote(s string) string {
	q := byte('\'')
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		q = '"'
	}
	var sb strings.Builder
	sb.WriteByte(q)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\':
			sb.WriteString(`\\`)
		case c == q:
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case c == '\n':
			sb.WriteString(`\n`)
		case c == '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte(q)
	return sb.String()
}
