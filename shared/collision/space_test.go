package collision

import (
	"testing"

	"github.com/automoto/overworld/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSpace() *resolv.Space {
	space := resolv.NewSpace(160, 160, 16, 16)
	space.Add(
		resolv.NewObject(32, 32, 16, 16, "solid"),
		resolv.NewObject(128, 128, 16, 16, "solid"),
		resolv.NewObject(36, 36, 8, 8, "exit"),
	)
	return space
}

func TestNearReturnsOnlySolidsSharingACell(t *testing.T) {
	obstacles := NewSpaceObstacles(newTestSpace(), "solid")

	near := obstacles.Near(gamemath.NewRect(36, 36, 8, 8))

	require.Len(t, near, 1)
	assert.Equal(t, gamemath.NewRect(32, 32, 16, 16), near[0])
}

func TestNearFarFromEverythingIsEmpty(t *testing.T) {
	obstacles := NewSpaceObstacles(newTestSpace(), "solid")

	assert.Empty(t, obstacles.Near(gamemath.NewRect(84, 4, 8, 8)))
}

func TestNearFeedsResolver(t *testing.T) {
	obstacles := NewSpaceObstacles(newTestSpace(), "solid")
	hitbox := gamemath.NewRect(26, 36, 8, 8)

	moved := ResolveAxis(&hitbox, 30, AxisX, obstacles.Near(hitbox))

	assert.True(t, moved)
	assert.Equal(t, 32, hitbox.Right())
}

func TestSyncMovesObject(t *testing.T) {
	space := newTestSpace()
	obj := resolv.NewObject(0, 0, 4, 4, "character")
	space.Add(obj)

	Sync(obj, gamemath.NewRect(130, 130, 6, 6))

	assert.Equal(t, gamemath.NewRect(130, 130, 6, 6), ObjectRect(obj))
	check := obj.Check(0, 0, "solid")
	require.NotNil(t, check)
	assert.Len(t, check.ObjectsByTags("solid"), 1)
}
