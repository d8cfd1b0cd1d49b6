package contact_test

import (
	"bytes"
	"compress/gzip"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoyinchu/egfr-competition-analysis/contact"
	"github.com/hoyinchu/egfr-competition-analysis/pdb/pdbtest"
)

func TestScanEmptyDir(t *testing.T) {
	tab, err := contact.DefaultScanner.Dir(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 0, tab.Len())
	assert.Equal(t,
		[]string{contact.ColName, contact.ColChainA, contact.ColChainB},
		tab.Columns)
}

func TestScanMissingDir(t *testing.T) {
	_, err := contact.DefaultScanner.Dir(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	contents := pdbtest.File(interfaceAtoms...)
	pdbtest.Write(t, dir, "b.pdb", contents)
	pdbtest.Write(t, dir, "a.pdb.gz", "")
	pdbtest.Write(t, dir, "notes.txt", "")
	pdbtest.Write(t, dir, "c.cif", "")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.pdb"), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))
	pdbtest.Write(t, filepath.Join(dir, "nested"), "d.pdb", contents)

	files, err := contact.Files(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.pdb.gz"),
		filepath.Join(dir, "b.pdb"),
	}, files)
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	contents := pdbtest.File(interfaceAtoms...)
	for _, name := range []string{"d1.pdb", "d2.pdb", "d3.pdb", "d5.pdb"} {
		pdbtest.Write(t, dir, name, contents)
	}
	onlyA := pdbtest.File(interfaceAtoms[:4]...)
	pdbtest.Write(t, dir, "d4.pdb", onlyA)

	var logged bytes.Buffer
	s := contact.DefaultScanner
	s.Log = log.New(&logged, "", 0)

	tab, err := s.Dir(dir)
	require.NoError(t, err)
	require.Equal(t, 4, tab.Len())

	var names []string
	for _, row := range tab.Rows {
		names = append(names, row[contact.ColName])
		assert.Equal(t, "A5", row[contact.ColChainA])
		assert.Equal(t, "B7", row[contact.ColChainB])
	}
	assert.Equal(t, []string{"d1", "d2", "d3", "d5"}, names)

	assert.Contains(t, logged.String(),
		"Warning: chains A or B not found in "+filepath.Join(dir, "d4.pdb"))
	assert.Contains(t, logged.String(), "(5/5)")
}

func TestScanSkipsUnreadable(t *testing.T) {
	dir := t.TempDir()
	pdbtest.Write(t, dir, "bad.pdb", "ATOM      1  CA  ALA A   1\n")
	pdbtest.Write(t, dir, "empty.pdb", "HEADER    NOTHING\nEND\n")

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte(pdbtest.File(interfaceAtoms...)))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	pdbtest.Write(t, dir, "good.pdb.gz", buf.String())

	var logged bytes.Buffer
	s := contact.DefaultScanner
	s.Log = log.New(&logged, "", 0)
	tab, err := s.Dir(dir)
	require.NoError(t, err)
	require.Equal(t, 1, tab.Len())
	assert.Equal(t, "good", tab.Rows[0][contact.ColName])

	assert.Contains(t, logged.String(), "Warning: skipping "+filepath.Join(dir, "bad.pdb"))
	assert.Contains(t, logged.String(),
		"Warning: chains A or B not found in "+filepath.Join(dir, "empty.pdb"))
}

func TestScanOtherChains(t *testing.T) {
	atoms := []pdbtest.Atom{
		{Chain: "H", ResNum: 30, X: 0},
		{Chain: "L", ResNum: 91, X: 2},
		{Chain: "L", ResNum: 95, X: 4.5},
	}
	dir := t.TempDir()
	pdbtest.Write(t, dir, "ab.pdb", pdbtest.File(atoms...))

	s := contact.Scanner{ChainA: "H", ChainB: "L", Cutoff: 5}
	tab, err := s.Dir(dir)
	require.NoError(t, err)
	require.Equal(t, 1, tab.Len())
	assert.Equal(t, "H30", tab.Rows[0][contact.ColChainA])
	assert.Equal(t, "L91,L95", tab.Rows[0][contact.ColChainB])
}
