package build

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mugiliam/labcatalog/internal/catalog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eppendorfYaml = `
version: v1
kind: LabwareCatalog
metadata:
  name: eppendorf
  title: Eppendorf
  description: Eppendorf is a life science company.
spec:
  entries:
    - description: Eppendorf twin.tec PCR Plate 96 LoBind
      partNumber: "0030129504"
      images:
        - path: img/top.png
          alt: top view
        - path: img/side.png
          alt: side view
      definitionSymbol: Eppendorf_96_wellplate_250ul_Vb
`

func writeTestFile(t *testing.T, path string, data string) {
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}

func newCtx() context.Context {
	return log.Logger.WithContext(context.Background())
}

func TestRun(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "docs")
	writeTestFile(t, filepath.Join(src, "eppendorf.yaml"), eppendorfYaml)
	writeTestFile(t, filepath.Join(src, "img", "top.png"), "png")
	writeTestFile(t, filepath.Join(src, "img", "side.png"), "png")

	res, err := Run(newCtx(), Options{OutputDir: out, CheckImages: true, Strict: true}, src)
	require.Nil(t, err)
	assert.Empty(t, res.Report.Issues)
	assert.Equal(t, []string{
		filepath.Join(out, "eppendorf.md"),
		filepath.Join(out, IndexFile),
	}, res.Files)

	page, rerr := os.ReadFile(filepath.Join(out, "eppendorf.md"))
	require.NoError(t, rerr)
	assert.True(t, strings.HasPrefix(string(page), "# Eppendorf\n"))
	assert.Contains(t, string(page), `<img src="img/top.png" alt="top view"><br><img src="img/side.png" alt="side view">`)
	assert.Contains(t, string(page), "| `Eppendorf_96_wellplate_250ul_Vb` |")

	index, rerr := os.ReadFile(filepath.Join(out, IndexFile))
	require.NoError(t, rerr)
	assert.Contains(t, string(index), "| [Eppendorf](eppendorf.md) | 1 |")
}

func TestRunMissingImage(t *testing.T) {
	src := t.TempDir()
	writeTestFile(t, filepath.Join(src, "eppendorf.yaml"), eppendorfYaml)
	writeTestFile(t, filepath.Join(src, "img", "top.png"), "png")

	// lenient builds still write pages and report the warning
	out := filepath.Join(t.TempDir(), "lenient")
	res, err := Run(newCtx(), Options{OutputDir: out, CheckImages: true}, src)
	require.Nil(t, err)
	require.Len(t, res.Report.Warnings(), 1)
	assert.Equal(t, "spec.entries[0].images[1].path", res.Report.Warnings()[0].Field)
	assert.FileExists(t, filepath.Join(out, "eppendorf.md"))

	out = filepath.Join(t.TempDir(), "strict")
	res, err = Run(newCtx(), Options{OutputDir: out, CheckImages: true, Strict: true}, src)
	require.NotNil(t, err)
	assert.ErrorIs(t, err, catalog.ErrValidationFailed)
	require.NotNil(t, res)
	assert.Empty(t, res.Files)
	assert.NoDirExists(t, out)
}

func TestRunDuplicateSymbols(t *testing.T) {
	src := t.TempDir()
	writeTestFile(t, filepath.Join(src, "a.yaml"), eppendorfYaml)
	writeTestFile(t, filepath.Join(src, "b.yaml"), strings.Replace(eppendorfYaml, "name: eppendorf", "name: copy", 1))

	out := filepath.Join(t.TempDir(), "docs")
	res, err := Run(newCtx(), Options{OutputDir: out}, src)
	require.NotNil(t, err)
	assert.ErrorIs(t, err, catalog.ErrValidationFailed)
	require.Len(t, res.Report.Errors(), 1)
	assert.Equal(t, "copy", res.Report.Errors()[0].Document)
	assert.NoDirExists(t, out)
}

func TestRunLoadError(t *testing.T) {
	res, err := Run(newCtx(), Options{OutputDir: t.TempDir()}, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, catalog.ErrUnableToReadDocument)
}

func TestRunReservedIndexName(t *testing.T) {
	src := t.TempDir()
	writeTestFile(t, filepath.Join(src, "index.yaml"), `
version: v1
kind: LabwareCatalog
metadata:
  name: index
  title: Index Labware Inc
spec:
  entries:
    - description: plate
      partNumber: P1
      images:
        - path: img/plate.png
      definitionSymbol: Index_plate
`)

	out := filepath.Join(t.TempDir(), "docs")
	res, err := Run(newCtx(), Options{OutputDir: out}, src)
	require.NotNil(t, err)
	assert.ErrorIs(t, err, catalog.ErrValidationFailed)
	require.Len(t, res.Report.Errors(), 1)
	assert.Equal(t, "metadata.name", res.Report.Errors()[0].Field)
	assert.Empty(t, res.Files)
	assert.NoDirExists(t, out)
}

func TestRunNamesDifferingInCase(t *testing.T) {
	src := t.TempDir()
	writeTestFile(t, filepath.Join(src, "a.yaml"), eppendorfYaml)
	writeTestFile(t, filepath.Join(src, "b.yaml"), strings.NewReplacer(
		"name: eppendorf", "name: Eppendorf",
		"Eppendorf_96_wellplate_250ul_Vb", "Eppendorf_96_wellplate_250ul_Vb_2",
	).Replace(eppendorfYaml))

	out := filepath.Join(t.TempDir(), "docs")
	res, err := Run(newCtx(), Options{OutputDir: out}, src)
	require.NotNil(t, err)
	require.Len(t, res.Report.Errors(), 1)
	assert.Equal(t, "Eppendorf", res.Report.Errors()[0].Document)
	assert.NoDirExists(t, out)
}
