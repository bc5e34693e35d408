package repl

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pipeConn pairs a fixed input script with a captured output buffer so
// Serve can be exercised without a real socket or terminal.
type pipeConn struct {
	io.Reader
	out *bytes.Buffer
}

func (p *pipeConn) Write(b []byte) (int, error) {
	return p.out.Write(b)
}

func newPipeConn(script string) *pipeConn {
	return &pipeConn{Reader: strings.NewReader(script), out: &bytes.Buffer{}}
}

func TestServeEvaluatesLinesAndPersistsState(t *testing.T) {
	conn := newPipeConn("var x = 1;\nprint x + 1;\nexit\n")
	err := New().Serve(conn)
	require.NoError(t, err)
	assert.Contains(t, conn.out.String(), "2.0")
}

func TestServeContinuesAfterError(t *testing.T) {
	conn := newPipeConn("print 1 / 0;\nprint 9;\nexit\n")
	err := New().Serve(conn)
	require.NoError(t, err)
	assert.Contains(t, conn.out.String(), "Division by zero")
	assert.Contains(t, conn.out.String(), "9.0")
}

func TestServeStopsOnEOFWithoutExit(t *testing.T) {
	conn := newPipeConn("print 1;\n")
	err := New().Serve(conn)
	require.NoError(t, err)
	assert.Contains(t, conn.out.String(), "1.0")
}

func TestServeIgnoresBlankLines(t *testing.T) {
	conn := newPipeConn("\n\nprint 1;\nexit\n")
	err := New().Serve(conn)
	require.NoError(t, err)
	assert.Contains(t, conn.out.String(), "1.0")
}
