package pipeline

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultString(t *testing.T) {
	cases := []struct {
		name   string
		result Result
		want   string
	}{
		{
			"clean exit",
			Result{Args: []string{"/bin/true"}, Code: 0},
			"/bin/true exit status: 0",
		},
		{
			"nonzero exit with args",
			Result{Args: []string{"ls", "-l", "/tmp"}, Code: 2},
			"ls -l /tmp exit status: 2",
		},
		{
			"signaled",
			Result{Args: []string{"cat"}, Signaled: true},
			"cat Signal Rec!",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.result.String())
		})
	}
}

func TestWriteReport(t *testing.T) {
	g := goldie.New(
		t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithDiffEngine(goldie.ColoredDiff),
	)

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, []Result{
		{Args: []string{"/bin/true"}, Code: 0},
		{Args: []string{"ls", "-l", "/tmp"}, Code: 2},
		{Args: []string{"cat"}, Signaled: true},
	}))

	g.Assert(t, "report", buf.Bytes())
}
