package main

import (
	"flag"
	_ "image/png"
	"os"

	"github.com/joho/godotenv"
	bolt "go.etcd.io/bbolt"
)

var (
	unitsPath                string
	spritesheetsMetadataPath string
	resourceFilePath         string
	genCode                  bool
	packResources            bool
)

func parseFlags() {
	flag.StringVar(&unitsPath, "units", "./data/Units.json",
		"Path to the file where unit definitions are stored.")
	flag.StringVar(&spritesheetsMetadataPath, "spritesheets-meta",
		"./spritesheets-meta.yml", "Path to the spritesheets metadata file.")
	flag.StringVar(&resourceFilePath, "out", "./stage.res",
		"Resource file to store packed unit animations.")
	flag.BoolVar(&genCode, "code", false,
		"Print the unit animation source fragment instead of texture file paths.")
	flag.BoolVar(&packResources, "pack", false,
		"Pack unit animations into the resource file instead of printing texture file paths.")

	flag.Parse()
}

func main() {
	parseFlags()

	// Pick up TEXTURES_DIR from a local .env if present.
	godotenv.Load()

	// Read the unit definitions.
	contents, err := os.ReadFile(unitsPath)
	handleError(err)
	units, err := ReadUnitsData(contents)
	handleError(err)

	switch {
	case genCode:
		err = WriteAnimationCode(os.Stdout, units)
		handleError(err)

	case packResources:
		// Read spritesheet metadata for the frame durations.
		metaContents, err := os.ReadFile(spritesheetsMetadataPath)
		handleError(err)
		ssMeta, err := ReadSpritesheetsData(metaContents)
		handleError(err)

		// Open the resource file.
		resourceFile, err := bolt.Open(resourceFilePath, 0666, nil)
		handleError(err)
		defer resourceFile.Close()

		err = PackAnimations(resourceFile, units, ssMeta)
		handleError(err)

	default:
		err = WriteTexturePaths(os.Stdout, units, texturesRoot())
		handleError(err)
	}
}

func handleError(err error) {
	if err != nil {
		panic(err)
	}
}
