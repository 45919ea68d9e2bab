package game

import (
	"testing"

	"github.com/decker502/tulips/pkg/entities"
)

func TestGardenAppendOrder(t *testing.T) {
	g := NewGarden()
	if g.Len() != 0 {
		t.Fatalf("new garden should be empty, got %d", g.Len())
	}

	style := &entities.TulipStyle{BloomStep: 0.5}
	for i := 0; i < 5; i++ {
		g.Add(entities.NewTulip(float64(i*10), 600, entities.TulipParams{StemHeight: 200, GrowthRate: 1}, style))
	}

	if g.Len() != 5 {
		t.Fatalf("expected 5 tulips, got %d", g.Len())
	}

	var xs []float64
	g.Each(func(tulip *entities.Tulip) {
		x, _ := tulip.Position()
		xs = append(xs, x)
	})
	for i, x := range xs {
		if x != float64(i*10) {
			t.Errorf("tulip %d at x=%f, want %f (insertion order)", i, x, float64(i*10))
		}
	}

	if x, _ := g.At(3).Position(); x != 30 {
		t.Errorf("At(3) x = %f, want 30", x)
	}
}

func TestViewportResize(t *testing.T) {
	v := NewViewport(800, 600)

	if w, h := v.Size(); w != 800 || h != 600 {
		t.Fatalf("Size = %dx%d, want 800x600", w, h)
	}

	tests := []struct {
		w, h        int
		wantChanged bool
		wantW       int
		wantH       int
	}{
		{800, 600, false, 800, 600},
		{1024, 768, true, 1024, 768},
		{0, 768, false, 1024, 768},
		{1024, -1, false, 1024, 768},
		{640, 480, true, 640, 480},
	}

	for _, tt := range tests {
		if changed := v.Resize(tt.w, tt.h); changed != tt.wantChanged {
			t.Errorf("Resize(%d, %d) changed = %v, want %v", tt.w, tt.h, changed, tt.wantChanged)
		}
		if v.Width() != tt.wantW || v.Height() != tt.wantH {
			t.Errorf("after Resize(%d, %d) size = %dx%d, want %dx%d",
				tt.w, tt.h, v.Width(), v.Height(), tt.wantW, tt.wantH)
		}
	}
}
