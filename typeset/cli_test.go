package typeset

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docfoundry/docgen-mcp/document"
)

func requireTypst(t *testing.T) *CLICompiler {
	t.Helper()
	c := NewCLICompiler(DefaultBinary, "")
	if !c.Available() {
		t.Skip("typst binary not on PATH")
	}
	return c
}

func TestCompileResume(t *testing.T) {
	c := requireTypst(t)

	source, err := TransformResume(&document.Resume{
		Basics: document.Basics{Name: "John Doe", Email: "john@example.com"},
		Work: []document.WorkExperience{
			{Company: "Tech Corp", Position: "Engineer", Highlights: []string{"Shipped things"}},
		},
	})
	require.NoError(t, err)

	pdf, diags, err := c.Compile(context.Background(), source)
	require.NoError(t, err)
	require.False(t, HasErrors(diags), "diagnostics: %s", FormatDiagnostics(diags))
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestCompileReportsSourceErrors(t *testing.T) {
	c := requireTypst(t)

	pdf, diags, err := c.Compile(context.Background(), "#undefined-function(1)")
	require.NoError(t, err)
	assert.Nil(t, pdf)
	assert.True(t, HasErrors(diags))
}

func TestCompileHonorsContext(t *testing.T) {
	c := requireTypst(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()

	_, _, err := c.Compile(ctx, "hello")
	require.Error(t, err)
}

func TestCompileMissingBinary(t *testing.T) {
	c := NewCLICompiler("typst-binary-that-does-not-exist", "")
	assert.False(t, c.Available())

	_, _, err := c.Compile(context.Background(), "hello")
	require.Error(t, err)
}
