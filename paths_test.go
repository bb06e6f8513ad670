package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func makeFactionDirs(t *testing.T, factions ...string) string {
	t.Helper()

	root := t.TempDir()

	for _, faction := range factions {
		require.NoError(t, os.Mkdir(filepath.Join(root, faction), 0755))
	}

	return root
}

func outputLines(out *bytes.Buffer) []string {
	return strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
}

func TestWriteTexturePathsTankExample(t *testing.T) {
	t.Parallel()

	units, err := ReadUnitsData([]byte(tankFixture))
	require.NoError(t, err)

	root := makeFactionDirs(t, "OrangeStar")

	out := &bytes.Buffer{}
	require.NoError(t, WriteTexturePaths(out, units, root))
	lines := outputLines(out)

	// 2 idle + 1 up + 1 down + 3 side frames for one faction.
	require.Len(t, lines, 7)

	for _, line := range lines {
		require.Contains(t, line, filepath.Join(root, "OrangeStar")+string(filepath.Separator))
	}

	// Frame suffixes enumerate positions within each sequence.
	require.Equal(t, 4, strings.Count(out.String(), "tank-a-0.png"))
	require.Equal(t, 2, strings.Count(out.String(), "tank-a-1.png"))
	require.Equal(t, 1, strings.Count(out.String(), "tank-a-2.png"))
}

func TestWriteTexturePathsFactionOrder(t *testing.T) {
	t.Parallel()

	units, err := ReadUnitsData([]byte(tankFixture))
	require.NoError(t, err)

	root := makeFactionDirs(t, "YellowComet", "BlueMoon", "OrangeStar")

	// Plain files under the root are not factions.
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0644))

	out := &bytes.Buffer{}
	require.NoError(t, WriteTexturePaths(out, units, root))
	lines := outputLines(out)

	require.Len(t, lines, 21)

	for i, faction := range []string{"BlueMoon", "OrangeStar", "YellowComet"} {
		for _, line := range lines[i*7 : (i+1)*7] {
			require.Contains(t, line, faction)
		}
	}
}

func TestWriteTexturePathsSkipsMissingKinds(t *testing.T) {
	t.Parallel()

	units, err := ReadUnitsData([]byte(unitsFixture))
	require.NoError(t, err)

	root := makeFactionDirs(t, "OrangeStar")

	out := &bytes.Buffer{}
	require.NoError(t, WriteTexturePaths(out, units, root))
	lines := outputLines(out)

	// Infantry 10, MdTank 7, APC 1 (idle only).
	require.Len(t, lines, 18)
	require.Equal(t, 10, strings.Count(out.String(), "infantry-"))
	require.Equal(t, 7, strings.Count(out.String(), "md-tank-"))
	require.Equal(t, 1, strings.Count(out.String(), "apc-"))
}

func TestWriteTexturePathsIsDeterministic(t *testing.T) {
	t.Parallel()

	units, err := ReadUnitsData([]byte(unitsFixture))
	require.NoError(t, err)

	root := makeFactionDirs(t, "BlueMoon", "OrangeStar")

	first := &bytes.Buffer{}
	require.NoError(t, WriteTexturePaths(first, units, root))

	second := &bytes.Buffer{}
	require.NoError(t, WriteTexturePaths(second, units, root))

	require.Equal(t, first.Bytes(), second.Bytes())
}

func TestWriteTexturePathsMissingRoot(t *testing.T) {
	t.Parallel()

	units, err := ReadUnitsData([]byte(tankFixture))
	require.NoError(t, err)

	root := filepath.Join(t.TempDir(), "missing")

	err = WriteTexturePaths(&bytes.Buffer{}, units, root)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to list the textures directory")
}

func TestTexturesRoot(t *testing.T) {
	t.Setenv("TEXTURES_DIR", "/srv/assets/textures")
	require.Equal(t, filepath.Join("/srv/assets/textures", "Units"), texturesRoot())

	t.Setenv("TEXTURES_DIR", "")
	require.Equal(t, filepath.Join(defaultTexturesDir, "Units"), texturesRoot())
}
