package render

import "raycast/model"

// textureAt returns the usable texture in 1-based slot, or nil.
func textureAt(textures []*model.Texture, slot int) *model.Texture {
	if slot < 1 || slot > len(textures) {
		return nil
	}
	if t := textures[slot-1]; t.Valid() {
		return t
	}
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// wrap folds v into [0, n).
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
