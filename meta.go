package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"

	"gopkg.in/yaml.v2"
)

// lineComments matches the //-style comments
// permitted in the unit definition document.
var lineComments = regexp.MustCompile(`//.*`)

// AnimationMeta is a single animation entry of a unit:
// the texture it plays from and the ordered frame
// indices into that texture's animation strip.
type AnimationMeta struct {
	Texture string `json:"Texture"`
	Frames  []int  `json:"Frames"`
}

// UnitMeta is one unit definition read
// from the units JSON file.
type UnitMeta struct {
	Name     string
	Idle     *AnimationMeta
	MoveUp   *AnimationMeta
	MoveDown *AnimationMeta
	MoveSide *AnimationMeta
}

type animationKind struct {
	Name string
	Meta *AnimationMeta
}

// animationKinds returns the unit's animation entries in
// playback order. Absent entries carry a nil meta.
func (um UnitMeta) animationKinds() []animationKind {
	return []animationKind{
		{"Idle", um.Idle},
		{"MoveUp", um.MoveUp},
		{"MoveDown", um.MoveDown},
		{"MoveSide", um.MoveSide},
	}
}

// ReadUnitsData parses the unit definition document.
// Line comments are stripped before parsing, and units
// keep the order they appear in the document.
func ReadUnitsData(data []byte) ([]UnitMeta, error) {
	data = lineComments.ReplaceAll(data, nil)
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()

	if err != nil {
		return nil, fmt.Errorf("failed to parse the units document: %w", err)
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("the units document must be a JSON object")
	}

	var units []UnitMeta

	for dec.More() {
		tok, err := dec.Token()

		if err != nil {
			return nil, fmt.Errorf("failed to parse the units document: %w", err)
		}

		// Object keys are always strings here.
		name := tok.(string)

		var anims struct {
			Idle     *AnimationMeta `json:"IdleAnimation"`
			MoveUp   *AnimationMeta `json:"MoveUpAnimation"`
			MoveDown *AnimationMeta `json:"MoveDownAnimation"`
			MoveSide *AnimationMeta `json:"MoveSideAnimation"`
		}

		if err := dec.Decode(&anims); err != nil {
			return nil, fmt.Errorf("failed to parse unit '%s': %w", name, err)
		}

		units = append(units, UnitMeta{
			Name:     name,
			Idle:     anims.Idle,
			MoveUp:   anims.MoveUp,
			MoveDown: anims.MoveDown,
			MoveSide: anims.MoveSide,
		})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("failed to parse the units document: %w", err)
	}

	return units, nil
}

// SpritesheetMeta is spritesheet metadata
// read from the YAML file.
type SpritesheetMeta struct {
	Name          string `yaml:"name"`
	FrameDuration int32  `yaml:"frameDuration"`
}

const defaultFrameDuration int32 = 100

// ReadSpritesheetsData parses the spritesheets metadata file
// and indexes the entries by spritesheet name. Entries without
// a frame duration get the default one.
func ReadSpritesheetsData(data []byte) (map[string]SpritesheetMeta, error) {
	var metas []SpritesheetMeta

	if err := yaml.Unmarshal(data, &metas); err != nil {
		return nil, fmt.Errorf("failed to parse the spritesheets metadata: %w", err)
	}

	ssMeta := make(map[string]SpritesheetMeta, len(metas))

	for _, meta := range metas {
		if meta.FrameDuration <= 0 {
			meta.FrameDuration = defaultFrameDuration
		}

		ssMeta[meta.Name] = meta
	}

	return ssMeta, nil
}
