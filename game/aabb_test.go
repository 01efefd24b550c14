package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name           string
		ax, ay, aw, ah float64
		bx, by, bw, bh float64
		want           bool
	}{
		{"identical", 0, 0, 10, 10, 0, 0, 10, 10, true},
		{"partial", 0, 0, 10, 10, 5, 5, 10, 10, true},
		{"contained", 0, 0, 10, 10, 2, 2, 4, 4, true},
		{"touching edges", 0, 0, 10, 10, 10, 0, 10, 10, false},
		{"separated x", 0, 0, 10, 10, 20, 0, 10, 10, false},
		{"separated y", 0, 0, 10, 10, 0, 20, 10, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := overlaps(tt.ax, tt.ay, tt.aw, tt.ah, tt.bx, tt.by, tt.bw, tt.bh)
			assert.Equal(t, tt.want, got)

			// Overlap is symmetric.
			assert.Equal(t, tt.want, overlaps(tt.bx, tt.by, tt.bw, tt.bh, tt.ax, tt.ay, tt.aw, tt.ah))
		})
	}
}

func TestOverlapsPadded(t *testing.T) {
	// Boxes 4 apart miss unpadded but meet with padding 5.
	assert.False(t, overlaps(0, 0, 10, 10, 14, 0, 10, 10))
	assert.True(t, overlapsPadded(0, 0, 10, 10, 14, 0, 10, 10, 5))
	assert.False(t, overlapsPadded(0, 0, 10, 10, 24, 0, 10, 10, 5))
}
