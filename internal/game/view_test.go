package game

import (
	"testing"

	"github.com/vovakirdan/tui-suika/internal/engine"
)

func TestViewportFitsScreen(t *testing.T) {
	cfg := engine.DefaultConfig()

	tests := []struct {
		name string
		w, h int
	}{
		{"classic", 80, 24},
		{"tall", 80, 60},
		{"wide", 200, 30},
		{"narrow", 50, 40},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := newViewport(cfg, tc.w, tc.h)
			if v.floor() >= tc.h {
				t.Errorf("floor row %d does not fit %d rows", v.floor(), tc.h)
			}
			if v.right()+sidebarWidth > tc.w+1 {
				t.Errorf("right wall %d leaves no room for the sidebar in %d cols", v.right(), tc.w)
			}

			// Bottom-right corner of the world lands inside the pit.
			col, row := v.cell(cfg.PitWidth-0.001, cfg.PitHeight-0.001)
			if col >= v.right() || row >= v.floor() {
				t.Errorf("world corner maps to (%d, %d), pit ends at (%d, %d)", col, row, v.right(), v.floor())
			}
		})
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := newViewport(engine.DefaultConfig(), 80, 24)

	for col := v.left + 1; col < v.right(); col++ {
		for row := v.top; row < v.floor(); row++ {
			x, y := v.center(col, row)
			gc, gr := v.cell(x, y)
			if gc != col || gr != row {
				t.Fatalf("cell(center(%d, %d)) = (%d, %d)", col, row, gc, gr)
			}
		}
	}
}
