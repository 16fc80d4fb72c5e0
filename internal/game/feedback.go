package game

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrNoRange is returned when every known country sits on the target, so
// accuracy cannot be scaled.
var ErrNoRange = errors.New("no distance range for target")

// BoardSize is the number of boxes on the accuracy board.
const BoardSize = 5

const (
	boxGreen  = "🟩"
	boxYellow = "🟨"
	boxEmpty  = "⬜"
)

// Feedback describes how close a guess was.
type Feedback struct {
	DistanceKm float64 `json:"distanceKm"`
	// Accuracy is 1 for a perfect guess and 0 for the farthest country.
	Accuracy float64 `json:"accuracy"`
	Arrow    string  `json:"arrow"`
	Board    string  `json:"board"`
}

// AccuracyBoard renders accuracy in [0, 1] as five boxes: one green box per
// full fifth, then a yellow box when the remainder is at least half a fifth.
func AccuracyBoard(accuracy float64) string {
	accuracy = math.Max(0, math.Min(1, accuracy))

	scaled := accuracy * BoardSize
	green := int(math.Floor(scaled))
	yellow := 0
	if green < BoardSize && scaled-float64(green) >= 0.5 {
		yellow = 1
	}

	return strings.Repeat(boxGreen, green) +
		strings.Repeat(boxYellow, yellow) +
		strings.Repeat(boxEmpty, BoardSize-green-yellow)
}

// MaxDistanceKm returns the distance from target to the farthest known
// country.
func (c Coordinates) MaxDistanceKm(target Point) float64 {
	var maxDist float64
	for _, p := range c {
		maxDist = math.Max(maxDist, HaversineKm(target, p))
	}
	return maxDist
}

// Evaluate scores guess against target. Both may be display names or
// alpha-3 codes.
func (c Coordinates) Evaluate(guess, target string) (Feedback, error) {
	targetPoint, ok := c.Lookup(target)
	if !ok {
		return Feedback{}, fmt.Errorf("%w: %q", ErrUnknownCountry, target)
	}
	guessPoint, ok := c.Lookup(guess)
	if !ok {
		return Feedback{}, fmt.Errorf("%w: %q", ErrUnknownCountry, guess)
	}

	maxDist := c.MaxDistanceKm(targetPoint)
	if maxDist == 0 {
		return Feedback{}, ErrNoRange
	}

	distance := HaversineKm(targetPoint, guessPoint)
	accuracy := (maxDist - distance) / maxDist

	return Feedback{
		DistanceKm: distance,
		Accuracy:   accuracy,
		Arrow:      DirectionArrow(guessPoint, targetPoint),
		Board:      AccuracyBoard(accuracy),
	}, nil
}
