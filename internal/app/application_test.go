package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"carbontradle.org/internal/game"
)

func TestGuessFeedbackEnabled(t *testing.T) {
	app := &Application{}
	assert.False(t, app.GuessFeedbackEnabled())

	app.Coordinates = game.Coordinates{}
	assert.False(t, app.GuessFeedbackEnabled())

	app.Coordinates = game.Coordinates{"france": {Lat: 46.2, Lon: 2.2}}
	assert.True(t, app.GuessFeedbackEnabled())
}
