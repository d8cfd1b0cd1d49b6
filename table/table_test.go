package table

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	tab := New("name", "Chain_A_interface_residues", "Chain_B_interface_residues")
	require.NoError(t, tab.Append(Row{
		"name":                       "design_1",
		"Chain_A_interface_residues": "A3,A10",
		"Chain_B_interface_residues": "B7",
	}))
	require.NoError(t, tab.Append(Row{"name": "design_2"}))
	assert.Equal(t, 2, tab.Len())

	var buf bytes.Buffer
	require.NoError(t, tab.WriteCSV(&buf))
	assert.Equal(t,
		"name,Chain_A_interface_residues,Chain_B_interface_residues\n"+
			"design_1,\"A3,A10\",B7\n"+
			"design_2,,\n",
		buf.String())
}

func TestAppendUnknownColumn(t *testing.T) {
	tab := New("name", "tm_score")
	err := tab.Append(Row{"name": "x", "rmsd": "1.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rmsd")
	assert.Equal(t, 0, tab.Len())
}

func TestWriteFile(t *testing.T) {
	tab := New("name", "tm_score")
	require.NoError(t, tab.Append(Row{"name": "b1", "tm_score": "0.91"}))

	fpath := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, tab.WriteFile(fpath))
	data, err := os.ReadFile(fpath)
	require.NoError(t, err)
	assert.Equal(t, "name,tm_score\nb1,0.91\n", string(data))

	err = tab.WriteFile(filepath.Join(t.TempDir(), "no", "such", "dir.csv"))
	assert.Error(t, err)
}

func TestString(t *testing.T) {
	tab := New("name", "tm_score")
	require.NoError(t, tab.Append(Row{"name": "binder_long_name", "tm_score": "0.5"}))
	require.NoError(t, tab.Append(Row{"name": "b2", "tm_score": "0.75"}))

	lines := strings.Split(strings.TrimSpace(tab.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "name")
	assert.True(t, strings.HasPrefix(lines[1], "0"))
	assert.Contains(t, lines[1], "binder_long_name")
	assert.Equal(t, strings.Index(lines[1], "0.5"), strings.Index(lines[2], "0.75"))
}
