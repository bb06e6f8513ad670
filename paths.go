package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const defaultTexturesDir = "../AWBW-Replay-Player/AWBWApp.Resources/Textures"

// texturesRoot resolves the directory holding per-faction unit
// textures. TEXTURES_DIR overrides the default location of the
// replay player checkout.
func texturesRoot() string {
	base := os.Getenv("TEXTURES_DIR")

	if base == "" {
		base = defaultTexturesDir
	}

	return filepath.Join(base, "Units")
}

// listFactions returns the names of all faction directories
// under the textures root in lexicographic order.
func listFactions(root string) ([]string, error) {
	entries, err := os.ReadDir(root)

	if err != nil {
		return nil, fmt.Errorf("failed to list the textures directory: %w", err)
	}

	// os.ReadDir already sorts entries by name.
	factions := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() {
			factions = append(factions, entry.Name())
		}
	}

	return factions, nil
}

// WriteTexturePaths emits one line per expected texture file:
// every faction crossed with every frame of every animation a
// unit defines. A unit missing an animation kind is skipped
// for that kind only.
func WriteTexturePaths(w io.Writer, units []UnitMeta, root string) error {
	factions, err := listFactions(root)

	if err != nil {
		return err
	}

	for _, faction := range factions {
		for _, unit := range units {
			for _, kind := range unit.animationKinds() {
				if kind.Meta == nil {
					continue
				}

				for i := range kind.Meta.Frames {
					fmt.Fprintf(w, "%s-%d.png\n",
						filepath.Join(root, faction, kind.Meta.Texture), i)
				}
			}
		}
	}

	return nil
}
