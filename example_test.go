package primer_test

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/primer"
)

func ExampleRun() {
	err := primer.Run(context.Background(), strings.NewReader("blue\n"), os.Stdout)
	if err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// Basic Information:
	// Name: Alice
	// Age: 25
	// Score: 95.5
	// Hello, Alice!
	// Grade: A
	// Counting to 5:
	// Count: 1
	// Count: 2
	// Count: 3
	// Count: 4
	// Count: 5
	// Fruits: ['apple', 'banana', 'orange']
	// I like apple
	// I like banana
	// I like orange
	// What's your favorite color? Nice choice! blue is a great color.
	// Alice is studying Python
	// Program completed successfully!
}
