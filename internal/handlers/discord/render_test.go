package discord

import (
	"fmt"
	"testing"

	"github.com/KirkDiggler/pinpoint/internal/models"
	"github.com/KirkDiggler/pinpoint/internal/services/game"
	"github.com/KirkDiggler/pinpoint/internal/services/messaging"
	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	assert.Contains(t, errorMessage(fmt.Errorf("confirm: %w", game.ErrSessionClosed)), "has ended")
	assert.Contains(t, errorMessage(game.ErrImageNotFound), "not in the catalog")
	assert.Contains(t, errorMessage(fmt.Errorf("%w: latitude out of range", game.ErrInvalidInput)), "Latitude must be")
	assert.Equal(t, "Something went wrong. Try again in a moment.", errorMessage(fmt.Errorf("boom")))
}

func TestRenderSummaryCapsFields(t *testing.T) {
	summary := &models.SessionSummary{SessionID: "s1"}
	for n := 0; n < 30; n++ {
		summary.Guesses = append(summary.Guesses, &models.Guess{ID: fmt.Sprintf("g%d", n), ImageID: fmt.Sprintf("img%d", n)})
	}

	resp := renderSummary(summary, "")

	fields := resp.Embeds[0].Fields
	assert.Len(t, fields, maxSummaryFields+1)
	assert.Equal(t, "and 6 more", fields[maxSummaryFields].Value)
	assert.Nil(t, resp.Embeds[0].Footer)
}

func TestRenderProgress(t *testing.T) {
	resp := renderProgress(&models.SessionProgress{GuessCount: 3, ImageCount: 3})
	assert.Contains(t, resp.Embeds[0].Description, "All done!")

	resp = renderProgress(&models.SessionProgress{GuessCount: 1, ImageCount: 3})
	assert.Equal(t, "1 of 3 images guessed.", resp.Embeds[0].Description)
}

func TestRenderGuessLinksBothLocations(t *testing.T) {
	resp := renderGuess(&models.Guess{
		Latitude:       1,
		Longitude:      2,
		ImageLatitude:  3,
		ImageLongitude: 4,
		Score:          7,
		DistanceMeters: 2500,
	}, nil)

	embed := resp.Embeds[0]
	assert.Equal(t, "7 / 15 points", embed.Title)
	assert.Equal(t, "You were 2.5 km away.", embed.Description)
	assert.Contains(t, embed.Fields[0].Value, "mlat=1.000000&mlon=2.000000")
	assert.Contains(t, embed.Fields[1].Value, "mlat=3.000000&mlon=4.000000")
}

func TestRenderGuessWithReaction(t *testing.T) {
	resp := renderGuess(&models.Guess{Score: 15}, &messaging.GetGuessResultMessageOutput{
		Title:   "Bullseye!",
		Message: "Pinpoint accuracy, just 0 m off.",
	})

	assert.Equal(t, "**Bullseye!** Pinpoint accuracy, just 0 m off.", resp.Embeds[0].Description)
}

func TestRenderSummaryClosingLine(t *testing.T) {
	resp := renderSummary(&models.SessionSummary{
		Guesses: []*models.Guess{{ID: "g1", ImageID: "img1", Score: 15}},
		Meta:    models.SummaryMeta{TotalScore: 15},
	}, "Flawless.")

	assert.Equal(t, "Total score 15 / 15 over 1 guesses, average distance 0 m.\nFlawless.", resp.Embeds[0].Description)
}
