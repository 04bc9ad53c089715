package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zofmath/zof"
	"github.com/zofmath/zof/internal/logging"
	"github.com/zofmath/zof/pkg/domain"
)

func TestRenderResult(t *testing.T) {
	res, err := zof.NewtonRaphson("x**2 - 4", 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	RenderResult(&buf, res)
	out := buf.String()

	assert.Contains(t, out, "Newton-Raphson Method")
	assert.Contains(t, out, "Iteration Details:")
	assert.Contains(t, out, "f'(x)")
	assert.Contains(t, out, "Final Root: 2.00000")
	assert.Contains(t, out, "Final Error:")
	assert.NotContains(t, out, "Warning:")
}

func TestRenderResult_Warning(t *testing.T) {
	res, err := zof.Bisection("x**2 - 4", 0, 3, zof.WithMaxIterations(2))
	require.NoError(t, err)
	require.True(t, res.Exhausted())

	var buf bytes.Buffer
	RenderResult(&buf, res)
	assert.Contains(t, buf.String(), "Warning: maximum iterations reached")
}

func TestRenderError(t *testing.T) {
	var buf bytes.Buffer
	RenderError(&buf, domain.NewtonRaphson, errors.New("derivative too small at x = 0"))
	out := buf.String()

	assert.Contains(t, out, "Newton-Raphson Method")
	assert.Contains(t, out, "Error: derivative too small")
}

func TestRunSession_SolveAndQuit(t *testing.T) {
	// Pick bisection, solve x**2 - 4 on [0, 3] with defaults, decline
	// another round.
	in := strings.NewReader("1\nx**2 - 4\n0\n3\n\n\nn\n")
	var out bytes.Buffer

	err := RunSession(in, &out, SessionOptions{Logger: logging.NewNop()})
	require.NoError(t, err)

	s := out.String()
	assert.Contains(t, s, "Available Methods:")
	assert.Contains(t, s, "1. Bisection Method")
	assert.Contains(t, s, "Final Root:")
	assert.Contains(t, s, "Solve another equation?")
}

func TestRunSession_InvalidChoiceThenQuit(t *testing.T) {
	in := strings.NewReader("9\nq\n")
	var out bytes.Buffer

	err := RunSession(in, &out, SessionOptions{Logger: logging.NewNop()})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Invalid choice!")
}

func TestRunSession_SolverErrorRendered(t *testing.T) {
	// Same-sign bracket: the failure is rendered, then the session asks
	// to go again.
	in := strings.NewReader("1\nx**2 - 4\n3\n5\n\n\nn\n")
	var out bytes.Buffer

	err := RunSession(in, &out, SessionOptions{Logger: logging.NewNop()})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Error:")
	assert.Contains(t, out.String(), "opposite signs")
}

func TestRunSession_BannerFollowsOutputWriter(t *testing.T) {
	in := strings.NewReader("q\n")
	var out bytes.Buffer

	err := RunSession(in, &out, SessionOptions{Banner: true, Logger: logging.NewNop()})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "zero of functions solver")
}

func TestRunSession_EOF(t *testing.T) {
	err := RunSession(strings.NewReader(""), &bytes.Buffer{}, SessionOptions{Logger: logging.NewNop()})
	assert.NoError(t, err)
}

func TestRunSession_BadNumberReprompts(t *testing.T) {
	in := strings.NewReader("1\nx**2 - 4\nzero\n0\n3\n\n\nn\n")
	var out bytes.Buffer

	err := RunSession(in, &out, SessionOptions{Logger: logging.NewNop()})
	require.NoError(t, err)
	assert.Contains(t, out.String(), `Not a number: "zero"`)
	assert.Contains(t, out.String(), "Final Root:")
}
