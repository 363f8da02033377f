package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPassable(t *testing.T) {
	g := gridFromRows([]string{
		"###",
		"# #",
		"###",
	})

	assert.True(t, g.IsPassable(1, 1))
	assert.False(t, g.IsPassable(0, 0), "wall cell")
	assert.False(t, g.IsPassable(-1, 0), "row below range")
	assert.False(t, g.IsPassable(3, 0), "row above range")
	assert.False(t, g.IsPassable(0, 3), "col above range")
}

func TestGridString(t *testing.T) {
	g := gridFromRows([]string{
		"###",
		"# #",
		"###",
	})

	assert.Equal(t, "###\n# #\n###\n", g.String())
}
