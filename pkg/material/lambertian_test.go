package material

import (
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/stretchr/testify/assert"
)

func TestLambertian_BRDF(t *testing.T) {
	normal := core.NewVec3(0, 0, 1)
	viewer := core.NewVec3(0, 0, 1)
	incident := core.NewColor(2, 4, 8)

	tests := []struct {
		name     string
		albedo   core.Color
		lightIn  core.Vec3
		expected core.Color
	}{
		{
			name:     "light along normal",
			albedo:   core.White,
			lightIn:  core.NewVec3(0, 0, 1),
			expected: core.NewColor(2, 4, 8),
		},
		{
			name:     "grazing 60 degrees",
			albedo:   core.White,
			lightIn:  core.NewVec3(0.8660254, 0, 0.5),
			expected: core.NewColor(1, 2, 4),
		},
		{
			name:     "tinted albedo",
			albedo:   core.NewColor(0.5, 0.25, 0),
			lightIn:  core.NewVec3(0, 0, 1),
			expected: core.NewColor(1, 1, 0),
		},
		{
			name:     "light behind surface is clamped",
			albedo:   core.White,
			lightIn:  core.NewVec3(0, 0, -1),
			expected: core.Black,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewLambertian(tt.albedo).BRDF(incident, tt.lightIn, viewer, normal)
			assert.InDelta(t, tt.expected.R, got.R, 1e-5)
			assert.InDelta(t, tt.expected.G, got.G, 1e-5)
			assert.InDelta(t, tt.expected.B, got.B, 1e-5)
		})
	}
}

func TestDefaultLambertian_IsWhite(t *testing.T) {
	assert.Equal(t, core.White, DefaultLambertian.Albedo)
}
