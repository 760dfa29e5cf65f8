package terrain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hecarrillo/ai-maze/terrain"
)

func TestParseDigit(t *testing.T) {
	for i, want := range terrain.Terrains() {
		got, err := terrain.ParseDigit(rune('1' + i))
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, rune('1'+i), want.Digit())
	}

	for _, r := range []rune{'0', '6', 'x', ' '} {
		_, err := terrain.ParseDigit(r)
		assert.ErrorIs(t, err, terrain.ErrUnknownTerrain, "digit %q", r)
	}
}

func TestParseNames(t *testing.T) {
	tr, err := terrain.ParseTerrain("water")
	require.NoError(t, err)
	assert.Equal(t, terrain.Water, tr)

	_, err = terrain.ParseTerrain("lava")
	assert.ErrorIs(t, err, terrain.ErrUnknownTerrain)

	a, err := terrain.ParseAgent("OCTOPUS")
	require.NoError(t, err)
	assert.Equal(t, terrain.Octopus, a)

	_, err = terrain.ParseAgent("dragon")
	assert.ErrorIs(t, err, terrain.ErrUnknownAgent)

	assert.Equal(t, "Sasquatch", terrain.Sasquatch.String())
	assert.Equal(t, "Agent(9)", terrain.Agent(9).String())
	assert.Equal(t, "Terrain(7)", terrain.Terrain(7).String())
}

func TestDefaultCosts(t *testing.T) {
	c := terrain.DefaultCosts()
	require.NoError(t, c.Validate())

	assert.Equal(t, 1, c.Cost(terrain.Human, terrain.Land))
	assert.Equal(t, 4, c.Cost(terrain.Human, terrain.Forest))
	assert.Equal(t, 1, c.Cost(terrain.Octopus, terrain.Water))
	assert.False(t, c.Passable(terrain.Human, terrain.Mountain))
	assert.False(t, c.Passable(terrain.Octopus, terrain.Sand))
	assert.False(t, c.Passable(terrain.Sasquatch, terrain.Water))
	assert.True(t, c.Passable(terrain.Sasquatch, terrain.Mountain))

	// every real cost is strictly below the sentinel
	for _, a := range terrain.Agents() {
		for _, tr := range terrain.Terrains() {
			v := c.Cost(a, tr)
			assert.True(t, v == terrain.Impassable || v < terrain.Impassable)
			assert.Equal(t, v < terrain.Impassable, c.Passable(a, tr))
		}
	}

	assert.Equal(t, terrain.Impassable, c.Cost(terrain.Agent(42), terrain.Land))
	assert.Equal(t, terrain.Impassable, c.Cost(terrain.Human, terrain.Terrain(42)))
	assert.Equal(t, c.Cost(terrain.Monkey, terrain.Water), terrain.Cost(terrain.Monkey, terrain.Water))
	assert.True(t, terrain.Passable(terrain.Monkey, terrain.Forest))
}

func TestCostsSetAndValidate(t *testing.T) {
	c := terrain.DefaultCosts()
	require.NoError(t, c.Set(terrain.Human, terrain.Mountain, 7))
	assert.Equal(t, 7, c.Cost(terrain.Human, terrain.Mountain))

	assert.ErrorIs(t, c.Set(terrain.Human, terrain.Land, 0), terrain.ErrBadCost)
	assert.ErrorIs(t, c.Set(terrain.Human, terrain.Land, terrain.Impassable+1), terrain.ErrBadCost)
	assert.ErrorIs(t, c.Set(terrain.Agent(9), terrain.Land, 1), terrain.ErrUnknownAgent)
	assert.ErrorIs(t, c.Set(terrain.Human, terrain.Terrain(9), 1), terrain.ErrUnknownTerrain)

	var empty terrain.Costs
	assert.ErrorIs(t, empty.Validate(), terrain.ErrBadCost)
}

func TestUniform(t *testing.T) {
	c, err := terrain.Uniform(1)
	require.NoError(t, err)
	require.NoError(t, c.Validate())
	for _, a := range terrain.Agents() {
		for _, tr := range terrain.Terrains() {
			assert.Equal(t, 1, c.Cost(a, tr))
		}
	}

	_, err = terrain.Uniform(0)
	assert.ErrorIs(t, err, terrain.ErrBadCost)
}
