package lesson_test

import (
	"fmt"
	"os"

	"github.com/aretw0/primer/pkg/lesson"
)

func ExampleGreet() {
	fmt.Println(lesson.Greet(lesson.Name))
	// Output: Hello, Alice!
}

func ExampleCalculateGrade() {
	for _, score := range []float64{95.5, 85, 70} {
		fmt.Println(lesson.CalculateGrade(score))
	}
	// Output:
	// A
	// B
	// C
}

func ExampleStudent_Study() {
	s := lesson.NewStudent(lesson.Name, "A")
	_ = s.Study(os.Stdout, "Python")
	// Output: Alice is studying Python
}
