package lesson

import (
	"fmt"
	"io"
)

// Student is the record built at the end of the lesson.
type Student struct {
	Name  string `json:"name" mapstructure:"name"`
	Grade string `json:"grade" mapstructure:"grade"`
}

// NewStudent creates a Student.
func NewStudent(name, grade string) Student {
	return Student{Name: name, Grade: grade}
}

// Study prints "<name> is studying <subject>" to w.
func (s Student) Study(w io.Writer, subject string) error {
	_, err := fmt.Fprintf(w, "%s is studying %s\n", s.Name, subject)
	return err
}
