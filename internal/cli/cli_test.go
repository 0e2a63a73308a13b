package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_NoArgsPrintsBanner(t *testing.T) {
	out := &bytes.Buffer{}

	config, shouldExit, err := Parse(nil, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, config)
	assert.Contains(t, out.String(), "mdtouch")
	assert.Contains(t, out.String(), "A tool to update file timestamps")
}

func TestParse_HelpFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"short flag", []string{"-h"}},
		{"question mark flag", []string{"-?"}},
		{"flag before paths", []string{"-h", "somefile.txt"}},
		{"flag between paths", []string{"a.txt", "-?", "b.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}

			config, shouldExit, err := Parse(tt.args, out)

			require.NoError(t, err)
			assert.True(t, shouldExit)
			assert.Nil(t, config, "help must suppress file processing")
			assert.Contains(t, out.String(), "Usage:")
			assert.Contains(t, out.String(), "-h")
			assert.Contains(t, out.String(), "-?")
		})
	}
}

func TestParse_HelpHasNoSideEffects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "somefile.txt")
	out := &bytes.Buffer{}

	_, shouldExit, err := Parse([]string{"-h", path}, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.NoFileExists(t, path)
}

func TestParse_PathsPreserveArgumentOrder(t *testing.T) {
	args := []string{"z.txt", "a.txt", "z.txt"}
	out := &bytes.Buffer{}

	config, shouldExit, err := Parse(args, out)

	require.NoError(t, err)
	assert.False(t, shouldExit)
	assert.Empty(t, out.String())
	if diff := cmp.Diff(args, config.Paths); diff != "" {
		t.Errorf("Paths mismatch (-want +got):\n%s", diff)
	}
}
