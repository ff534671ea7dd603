package main

import (
	"bytes"
	"errors"
	"flag"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pixelcanvas "github.com/PomegranateBlue/pixel-canvas"
	"github.com/PomegranateBlue/pixel-canvas/internal/script"
)

const smallConfig = `
grid_width = 4
grid_height = 2
pixel_size = 10
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func runCmd(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	orig := pixelcanvas.Logger()
	t.Cleanup(func() { pixelcanvas.SetLogger(orig) })

	var out, errOut bytes.Buffer
	err = run(args, strings.NewReader(stdin), &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestRun_ScriptFromStdin(t *testing.T) {
	cfg := writeFile(t, "canvas.toml", smallConfig)
	const src = `
select red
down 5 5
move 15 5
up
select #0000FF
down 35 15
up
`
	out, errOut, err := runCmd(t, src, "-config", cfg)
	require.NoError(t, err)
	assert.Empty(t, errOut)
	assert.Equal(t, "AA..\n...B\nA #FF0000\nB #0000FF\n", out)
}

func TestRun_ScriptFileWithUndo(t *testing.T) {
	cfg := writeFile(t, "canvas.toml", smallConfig)
	path := writeFile(t, "session.txt", "down 5 5\nup\ndown 15 5\nup\nkey ctrl+z\n")

	out, _, err := runCmd(t, "", "-config", cfg, "-script", path, "-plain")
	require.NoError(t, err)
	assert.Equal(t, "A...\n....\nA #000000\n", out)
}

func TestRun_ReportsRejectedColors(t *testing.T) {
	cfg := writeFile(t, "canvas.toml", smallConfig)
	_, errOut, err := runCmd(t, "custom #FF0000\n", "-config", cfg)
	require.NoError(t, err)
	assert.Contains(t, errOut, "line 1:")
	assert.Contains(t, errOut, "custom color rejected")
}

func TestRun_VerboseLogs(t *testing.T) {
	cfg := writeFile(t, "canvas.toml", smallConfig)
	_, errOut, err := runCmd(t, "down 0 0\nup\nundo\n", "-config", cfg, "-v")
	require.NoError(t, err)
	assert.Contains(t, errOut, "controller created")
	assert.Contains(t, errOut, "history undo")
}

func TestRun_SavesPNG(t *testing.T) {
	cfg := writeFile(t, "canvas.toml", smallConfig)
	out := filepath.Join(t.TempDir(), "canvas.png")

	_, _, err := runCmd(t, "select lime\ndown 15 15\nup\n", "-config", cfg, "-output", out)
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())
	assert.Equal(t, pixelcanvas.Green, pixelcanvas.FromColor(img.At(15, 15)))
}

func TestRun_Errors(t *testing.T) {
	badConfig := writeFile(t, "bad.toml", "grid_width = 0\n")

	_, _, err := runCmd(t, "", "-nope")
	assert.Error(t, err)

	_, _, err = runCmd(t, "", "extra")
	assert.ErrorContains(t, err, "unexpected arguments")

	_, _, err = runCmd(t, "", "-config", badConfig)
	assert.ErrorIs(t, err, pixelcanvas.ErrInvalidConfig)

	_, _, err = runCmd(t, "", "-script", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = runCmd(t, "down 1\n")
	assert.ErrorIs(t, err, script.ErrSyntax)

	_, _, err = runCmd(t, "", "-h")
	assert.True(t, errors.Is(err, flag.ErrHelp))
}
