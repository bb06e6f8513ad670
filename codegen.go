package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteAnimationCode renders the unit animation table as a source
// fragment for the game client. Units are emitted in document order,
// each arm carrying the running frame offset of all units before it;
// the accumulated total comes out as the TOTAL_FRAMES constant.
// Every unit must define all four animation kinds.
func WriteAnimationCode(w io.Writer, units []UnitMeta) error {
	fmt.Fprintln(w, "// This file is generated by unit-anim-gen -code")
	fmt.Fprintln(w, "fn get_animation_data(unit: Unit) -> (u16, UnitAnimationData) {")
	fmt.Fprintln(w, "match unit {")

	frames := 0

	for _, unit := range units {
		for _, kind := range unit.animationKinds() {
			if kind.Meta == nil {
				return fmt.Errorf("unit '%s' has no %s animation", unit.Name, kind.Name)
			}
		}

		// Dashes in texture names are not valid in the enum identifier.
		ident := strings.ReplaceAll(unit.Idle.Texture, "-", "")

		fmt.Fprintf(w, "    Unit::%s => (%d, UnitAnimationData::new(\n", ident, frames)

		for _, kind := range unit.animationKinds() {
			fmt.Fprintf(w, "        &[%s],\n", joinFrames(kind.Meta.Frames))
			frames += len(kind.Meta.Frames)
		}

		fmt.Fprintln(w, "    )),")
	}

	fmt.Fprintln(w, "}")
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w, "impl UnitAnimationData {")
	fmt.Fprintf(w, "pub const TOTAL_FRAMES: usize = %d;\n", frames)
	fmt.Fprintln(w, "}")

	return nil
}

func joinFrames(frames []int) string {
	parts := make([]string, len(frames))

	for i, frame := range frames {
		parts[i] = strconv.Itoa(frame)
	}

	return strings.Join(parts, ", ")
}
