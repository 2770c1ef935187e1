//go:build raydebug

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRay_ZeroDirectionPanics(t *testing.T) {
	assert.Panics(t, func() { NewRay(NewVec3(10, 10, 10), Vec3{}) })
}
