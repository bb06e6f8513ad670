package main

import (
	"fmt"

	"github.com/alacrity-engine/core/math/geometry"
	codec "github.com/alacrity-engine/resource-codec"
	bolt "go.etcd.io/bbolt"
)

// animationID names the resource record of one unit animation.
func animationID(unitName, kindName string) string {
	return unitName + "." + kindName
}

// frameDurations returns one duration per frame, taken from the
// spritesheet metadata when the texture has an entry there.
func frameDurations(ssMeta map[string]SpritesheetMeta, texture string, count int) []int32 {
	duration := defaultFrameDuration

	if meta, ok := ssMeta[texture]; ok {
		duration = meta.FrameDuration
	}

	durations := make([]int32, count)

	for i := range durations {
		durations[i] = duration
	}

	return durations
}

// PackAnimations assembles an animation record for every animation
// a unit defines and stores it in the resource file, plus a per-unit
// tag listing the unit's animation record names. The spritesheet,
// texture and picture backing each animation must already be present
// in the resource file.
func PackAnimations(resourceFile *bolt.DB, units []UnitMeta, ssMeta map[string]SpritesheetMeta) error {
	for _, unit := range units {
		animIDs := []string{}

		for _, kind := range unit.animationKinds() {
			if kind.Meta == nil {
				continue
			}

			animMeta := kind.Meta
			err := resourceFile.Update(func(tx *bolt.Tx) error {
				buck := tx.Bucket([]byte("spritesheets"))

				if buck == nil {
					return fmt.Errorf("the spritesheets bucket not found")
				}

				ssBytes := buck.Get([]byte(animMeta.Texture))

				if ssBytes == nil {
					return fmt.Errorf(
						"spritesheet '%s' not found", animMeta.Texture)
				}

				ss, err := codec.SpritesheetDataFromBytes(ssBytes)

				if err != nil {
					return err
				}

				textureBuck := tx.Bucket([]byte("textures"))

				if textureBuck == nil {
					return fmt.Errorf("the textures bucket not found")
				}

				textureBytes := textureBuck.Get([]byte(animMeta.Texture))

				if textureBytes == nil {
					return fmt.Errorf(
						"texture '%s' not found", animMeta.Texture)
				}

				texture, err := codec.TextureDataFromBytes(textureBytes)

				if err != nil {
					return err
				}

				picBucket := tx.Bucket([]byte("pictures"))

				if picBucket == nil {
					return fmt.Errorf("the pictures bucket not found")
				}

				picBytes := picBucket.Get([]byte(texture.PictureID))

				if picBytes == nil {
					return fmt.Errorf(
						"picture '%s' not found", texture.PictureID)
				}

				compressedPic, err := codec.CompressedPictureFromBytes(picBytes)

				if err != nil {
					return err
				}

				frames := compressedPic.GetSpritesheetFrames(
					int(ss.Width), int(ss.Height))

				// Assemble the animation.
				anim := &codec.AnimationData{
					TextureID: animMeta.Texture,
					Frames:    make([]geometry.Rect, 0, len(animMeta.Frames)),
					Durations: frameDurations(ssMeta, animMeta.Texture, len(animMeta.Frames)),
				}

				for _, frameIndex := range animMeta.Frames {
					if frameIndex < 0 || frameIndex >= len(frames) {
						return fmt.Errorf(
							"unit '%s': frame %d is out of range for spritesheet '%s'",
							unit.Name, frameIndex, animMeta.Texture)
					}

					anim.Frames = append(anim.Frames, frames[frameIndex])
				}

				data, err := anim.ToBytes()

				if err != nil {
					return err
				}

				animBucket, err := tx.CreateBucketIfNotExists([]byte("animations"))

				if err != nil {
					return err
				}

				return animBucket.Put(
					[]byte(animationID(unit.Name, kind.Name)), data)
			})

			if err != nil {
				return err
			}

			animIDs = append(animIDs, animationID(unit.Name, kind.Name))
		}

		err := resourceFile.Update(func(tx *bolt.Tx) error {
			buck, err := tx.CreateBucketIfNotExists([]byte("tags"))

			if err != nil {
				return err
			}

			tagData, err := codec.EncodeTag(animIDs)

			if err != nil {
				return err
			}

			return buck.Put([]byte(unit.Name), tagData)
		})

		if err != nil {
			return err
		}
	}

	return nil
}
