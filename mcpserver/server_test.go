package mcpserver

import (
	"io"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/treescope/treescope/lang"
	"github.com/treescope/treescope/project"
	"github.com/treescope/treescope/report"
)

func TestNewRegistersWithoutPanic(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	client := report.NewClient(lang.NewRegistry(), project.Options{})
	require.NotPanics(t, func() {
		s := New(client, log)
		require.NotNil(t, s)
	})
}

func TestTextResultFailure(t *testing.T) {
	res, err := textResult(report.Errorf("file not found: %s", "x.py"))
	require.NoError(t, err)
	require.True(t, res.IsError)
}

func TestTextResultSuccess(t *testing.T) {
	res, err := textResult(map[string]int{"count": 2})
	require.NoError(t, err)
	require.False(t, res.IsError)
	require.Len(t, res.Content, 1)

	text, ok := mcp.AsTextContent(res.Content[0])
	require.True(t, ok)
	require.Contains(t, text.Text, `"count": 2`)
}

func TestArgsStr(t *testing.T) {
	a := args{"path": "src", "count": 3}
	require.Equal(t, "src", a.str("path"))
	require.Empty(t, a.str("count"))
	require.Empty(t, a.str("missing"))
}
