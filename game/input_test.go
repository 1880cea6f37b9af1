package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapTap(t *testing.T) {
	bounds := Bounds{Width: 300, Height: 300}

	tests := []struct {
		name    string
		tap     Tap
		current Direction
		want    Direction
		ok      bool
	}{
		{name: "middle left", tap: Tap{X: 50, Y: 150}, current: DirUp, want: DirLeft, ok: true},
		{name: "middle right", tap: Tap{X: 250, Y: 150}, current: DirUp, want: DirRight, ok: true},
		{name: "top middle", tap: Tap{X: 150, Y: 50}, current: DirRight, want: DirUp, ok: true},
		{name: "bottom middle", tap: Tap{X: 150, Y: 250}, current: DirRight, want: DirDown, ok: true},
		{name: "centre", tap: Tap{X: 150, Y: 150}, current: DirRight},
		{name: "top left corner", tap: Tap{X: 10, Y: 10}, current: DirRight},
		{name: "bottom right corner", tap: Tap{X: 290, Y: 290}, current: DirUp},
		{name: "zone border", tap: Tap{X: 100, Y: 150}, current: DirUp},
		{name: "outside the surface", tap: Tap{X: -20, Y: 150}, current: DirUp},
		{name: "below the surface", tap: Tap{X: 150, Y: 400}, current: DirRight},
		{name: "reverse of right", tap: Tap{X: 50, Y: 150}, current: DirRight},
		{name: "reverse of up", tap: Tap{X: 150, Y: 250}, current: DirUp},
		{name: "same direction", tap: Tap{X: 250, Y: 150}, current: DirRight, want: DirRight, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// When: the tap is mapped
			got, ok := MapTap(tt.tap, bounds, tt.current)

			// Then: the zone decides the direction and reversals are rejected
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapTap_EmptySurface(t *testing.T) {
	// Given: a surface that has not been laid out yet
	bounds := Bounds{}

	// When: a tap arrives
	_, ok := MapTap(Tap{X: 0, Y: 0}, bounds, DirRight)

	// Then: it is ignored
	require.False(t, ok)
}

func TestSteer(t *testing.T) {
	got, ok := Steer(DirUp, DirRight)
	require.True(t, ok)
	assert.Equal(t, DirUp, got)

	_, ok = Steer(DirLeft, DirRight)
	assert.False(t, ok)

	_, ok = Steer(DirNone, DirRight)
	assert.False(t, ok)
}
