package graphics

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// countingCache 记录分配次数；占位图像不会被绘制
func countingCache(allocs *int) *imageCache {
	c := newImageCache()
	c.alloc = func(w, h int) *ebiten.Image {
		*allocs++
		return new(ebiten.Image)
	}
	return c
}

func TestImageCacheReusesPerSize(t *testing.T) {
	allocs := 0
	c := countingCache(&allocs)

	a, fresh := c.get(0, 128, 128)
	if !fresh {
		t.Error("first request should allocate")
	}
	b, _ := c.get(0, 160, 160)
	again, fresh := c.get(0, 128, 128)
	if fresh || again != a {
		t.Error("same slot and size should return the cached image")
	}
	if other, _ := c.get(1, 128, 128); other == a {
		t.Error("different slots must not share an image")
	}
	if b == a {
		t.Error("different sizes must not share an image")
	}
	if allocs != 3 {
		t.Errorf("allocs = %d, want 3", allocs)
	}
}

// TestBlurChainAlternatingSizes 两株大小不同的花交替模糊时不重复分配
func TestBlurChainAlternatingSizes(t *testing.T) {
	allocs := 0
	b := &kawaseBlur{cache: countingCache(&allocs)}
	passes := blurPasses(20)

	first := append([]*ebiten.Image(nil), b.chain(160, 160, passes)...)
	b.chain(128, 128, passes)
	afterWarmup := allocs

	for i := 0; i < 10; i++ {
		b.chain(160, 160, passes)
		b.chain(128, 128, passes)
	}
	if allocs != afterWarmup {
		t.Errorf("allocs grew from %d to %d while alternating sizes", afterWarmup, allocs)
	}
	if afterWarmup != 2*passes {
		t.Errorf("warmup allocs = %d, want %d", afterWarmup, 2*passes)
	}

	again := b.chain(160, 160, passes)
	for i := range first {
		if again[i] != first[i] {
			t.Errorf("pass %d image was replaced", i)
		}
	}
}

// TestBlurChainTinySource 尺寸缩到 1 后各级仍使用不同图像，避免自绘
func TestBlurChainTinySource(t *testing.T) {
	allocs := 0
	b := &kawaseBlur{cache: countingCache(&allocs)}

	chain := b.chain(2, 2, 3)
	seen := map[*ebiten.Image]bool{}
	for i, img := range chain {
		if seen[img] {
			t.Errorf("pass %d reuses an earlier pass image", i)
		}
		seen[img] = true
	}
}
