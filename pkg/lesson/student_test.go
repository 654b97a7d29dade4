package lesson

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudent_Study(t *testing.T) {
	var buf bytes.Buffer
	s := NewStudent(Name, CalculateGrade(Score))

	require.NoError(t, s.Study(&buf, "Python"))
	assert.Equal(t, "Alice is studying Python\n", buf.String())
	assert.Equal(t, "A", s.Grade)
}
