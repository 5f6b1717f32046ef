package model

import (
	"errors"
	"testing"
)

func TestNewTexture(t *testing.T) {
	tex, err := NewTexture(2, 2, []uint32{1, 2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}
	if got := tex.At(1, 1); got != 4 {
		t.Errorf("expected 4, got %d", got)
	}

	for _, bad := range []struct{ w, h, n int }{{0, 2, 4}, {2, 0, 4}, {2, 2, 3}} {
		_, err := NewTexture(bad.w, bad.h, make([]uint32, bad.n))
		if !errors.Is(err, ErrInvalidTexture) {
			t.Errorf("%dx%d/%d: expected ErrInvalidTexture, got %v", bad.w, bad.h, bad.n, err)
		}
	}

	var nilTex *Texture
	if nilTex.Valid() {
		t.Error("expected nil texture to be invalid")
	}
}
