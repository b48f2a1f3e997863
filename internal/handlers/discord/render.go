package discord

import (
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/pinpoint/internal/models"
	"github.com/KirkDiggler/pinpoint/internal/scoring"
	"github.com/KirkDiggler/pinpoint/internal/services/draft"
	"github.com/KirkDiggler/pinpoint/internal/services/game"
	"github.com/KirkDiggler/pinpoint/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// Button IDs
const (
	ButtonNextImage = "pinpoint_next"
	ButtonNewGame   = "pinpoint_new_game"
	ButtonSummary   = "pinpoint_summary"
)

// Embed colors
const (
	colorInfo    = 0x3498db
	colorSuccess = 0x00ff00
	colorError   = 0xff0000
)

// Discord allows 25 fields per embed, one is kept for the overflow line
const maxSummaryFields = 24

func messageResponse(content string) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	}
}

func embedResponse(embed *discordgo.MessageEmbed, buttons ...discordgo.MessageComponent) *discordgo.InteractionResponseData {
	data := &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
		Flags:  discordgo.MessageFlagsEphemeral,
	}
	if len(buttons) > 0 {
		data.Components = []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: buttons},
		}
	}
	return data
}

func button(label, customID string, style discordgo.ButtonStyle) discordgo.Button {
	return discordgo.Button{
		Label:    label,
		Style:    style,
		CustomID: customID,
	}
}

// errorMessage turns a service error into something a player can act on
func errorMessage(err error) string {
	switch {
	case errors.Is(err, game.ErrSessionNotFound):
		return "That game no longer exists. Use `/pinpoint start` to begin a new one."
	case errors.Is(err, game.ErrSessionClosed):
		return "This game has ended. Use `/pinpoint start` to play again."
	case errors.Is(err, game.ErrDuplicateGuess):
		return "You already guessed this image."
	case errors.Is(err, game.ErrImageNotFound):
		return "That image is not in the catalog."
	case errors.Is(err, game.ErrInvalidInput), errors.Is(err, draft.ErrInvalidInput):
		return "Latitude must be between -90 and 90 and longitude between -180 and 180."
	case errors.Is(err, game.ErrStorageUnavailable):
		return "The game store is unavailable right now. Try again in a moment."
	default:
		return "Something went wrong. Try again in a moment."
	}
}

func errorResponse(err error) *discordgo.InteractionResponseData {
	return embedResponse(&discordgo.MessageEmbed{
		Title:       "Error",
		Description: errorMessage(err),
		Color:       colorError,
	})
}

func formatCoordinate(latitude, longitude float64) string {
	return fmt.Sprintf("%.5f, %.5f", latitude, longitude)
}

func mapLink(latitude, longitude float64) string {
	return fmt.Sprintf("https://www.openstreetmap.org/?mlat=%.6f&mlon=%.6f#map=15/%.6f/%.6f",
		latitude, longitude, latitude, longitude)
}

func renderImage(image *models.AnonymousImage, progress *models.SessionProgress, drafts []*models.DraftGuess) *discordgo.InteractionResponseData {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Image %d of %d", progress.GuessCount+1, progress.ImageCount),
		Description: "Where was this taken? Answer with `/pinpoint guess`, or park a candidate with `/pinpoint draft`.",
		Color:       colorInfo,
		Image:       &discordgo.MessageEmbedImage{URL: image.URL},
	}

	if len(drafts) > 0 {
		embed.Fields = append(embed.Fields, draftsField(drafts))
	}

	return embedResponse(embed)
}

func draftsField(drafts []*models.DraftGuess) *discordgo.MessageEmbedField {
	value := ""
	for n, d := range drafts {
		value += fmt.Sprintf("%d. %s\n", n+1, formatCoordinate(d.Latitude, d.Longitude))
	}
	return &discordgo.MessageEmbedField{
		Name:  "Drafts",
		Value: value,
	}
}

func renderDrafts(drafts []*models.DraftGuess) *discordgo.InteractionResponseData {
	if len(drafts) == 0 {
		return messageResponse("No drafts for this image yet. Add one with `/pinpoint draft`.")
	}

	return embedResponse(&discordgo.MessageEmbed{
		Title:       "Drafts for the current image",
		Description: fmt.Sprintf("The last %d are kept.", draft.MaxDraftsPerImage),
		Color:       colorInfo,
		Fields:      []*discordgo.MessageEmbedField{draftsField(drafts)},
	})
}

// renderGuess shows the score of a guess, with a reaction line when one is given
func renderGuess(guess *models.Guess, reaction *messaging.GetGuessResultMessageOutput) *discordgo.InteractionResponseData {
	description := fmt.Sprintf("You were %s away.", messaging.FormatDistance(guess.DistanceMeters))
	if reaction != nil {
		description = fmt.Sprintf("**%s** %s", reaction.Title, reaction.Message)
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%d / %d points", guess.Score, scoring.MaxScore),
		Description: description,
		Color:       colorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Your guess",
				Value:  fmt.Sprintf("[%s](%s)", formatCoordinate(guess.Latitude, guess.Longitude), mapLink(guess.Latitude, guess.Longitude)),
				Inline: true,
			},
			{
				Name:   "Answer",
				Value:  fmt.Sprintf("[%s](%s)", formatCoordinate(guess.ImageLatitude, guess.ImageLongitude), mapLink(guess.ImageLatitude, guess.ImageLongitude)),
				Inline: true,
			},
		},
	}

	return embedResponse(embed, button("Next image", ButtonNextImage, discordgo.PrimaryButton))
}

func renderProgress(progress *models.SessionProgress) *discordgo.InteractionResponseData {
	description := fmt.Sprintf("%d of %d images guessed.", progress.GuessCount, progress.ImageCount)
	if progress.Complete() {
		return embedResponse(&discordgo.MessageEmbed{
			Title:       "Progress",
			Description: description + " All done!",
			Color:       colorSuccess,
		}, button("Show summary", ButtonSummary, discordgo.PrimaryButton))
	}

	return embedResponse(&discordgo.MessageEmbed{
		Title:       "Progress",
		Description: description,
		Color:       colorInfo,
	}, button("Next image", ButtonNextImage, discordgo.PrimaryButton))
}

func renderComplete() *discordgo.InteractionResponseData {
	return embedResponse(&discordgo.MessageEmbed{
		Title:       "Every image has been guessed",
		Description: "See how you did, or start over.",
		Color:       colorSuccess,
	},
		button("Show summary", ButtonSummary, discordgo.PrimaryButton),
		button("New game", ButtonNewGame, discordgo.SecondaryButton),
	)
}

func renderSummary(summary *models.SessionSummary, closing string) *discordgo.InteractionResponseData {
	guesses := summary.Guesses
	maxTotal := scoring.MaxScore * len(guesses)

	description := fmt.Sprintf("Total score %d / %d over %d guesses, average distance %s.",
		summary.Meta.TotalScore, maxTotal, len(guesses), messaging.FormatDistance(summary.Meta.AverageDistance))
	if closing != "" {
		description += "\n" + closing
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Game summary",
		Description: description,
		Color:       colorSuccess,
	}

	shown := guesses
	if len(shown) > maxSummaryFields {
		shown = shown[:maxSummaryFields]
	}
	for n, g := range shown {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("#%d %s", n+1, g.ImageID),
			Value:  fmt.Sprintf("%d pts, %s", g.Score, messaging.FormatDistance(g.DistanceMeters)),
			Inline: true,
		})
	}
	if hidden := len(guesses) - len(shown); hidden > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "More",
			Value: fmt.Sprintf("and %d more", hidden),
		})
	}

	if summary.Meta.GameEndedAt != nil {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Played for %s", summary.Meta.GameEndedAt.Sub(summary.Meta.GameStartedAt).Round(time.Second)),
		}
	}

	return embedResponse(embed, button("New game", ButtonNewGame, discordgo.PrimaryButton))
}
