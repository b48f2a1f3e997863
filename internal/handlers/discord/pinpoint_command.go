package discord

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/pinpoint/internal/models"
	"github.com/KirkDiggler/pinpoint/internal/services/current_session"
	"github.com/KirkDiggler/pinpoint/internal/services/draft"
	"github.com/KirkDiggler/pinpoint/internal/services/game"
	"github.com/KirkDiggler/pinpoint/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// Subcommand names of /pinpoint
const (
	SubcommandStart    = "start"
	SubcommandImage    = "image"
	SubcommandGuess    = "guess"
	SubcommandDraft    = "draft"
	SubcommandDrafts   = "drafts"
	SubcommandProgress = "progress"
	SubcommandSummary  = "summary"
	SubcommandEnd      = "end"
)

// Option names shared by guess and draft
const (
	OptionLatitude  = "latitude"
	OptionLongitude = "longitude"
)

const noSessionMessage = "You have no game in progress. Use `/pinpoint start` to begin."

// PinpointCommand handles the /pinpoint command and its buttons
type PinpointCommand struct {
	BaseCommand
	gameService     game.Service
	draftService    draft.Service
	currentSessions *current_session.Service
	messages        messaging.Service
}

func coordinateOptions(verb string) []*discordgo.ApplicationCommandOption {
	minLat, minLon := -90.0, -180.0
	return []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionNumber,
			Name:        OptionLatitude,
			Description: fmt.Sprintf("Latitude to %s, in degrees", verb),
			Required:    true,
			MinValue:    &minLat,
			MaxValue:    90,
		},
		{
			Type:        discordgo.ApplicationCommandOptionNumber,
			Name:        OptionLongitude,
			Description: fmt.Sprintf("Longitude to %s, in degrees", verb),
			Required:    true,
			MinValue:    &minLon,
			MaxValue:    180,
		},
	}
}

// NewPinpointCommand creates a new pinpoint command
func NewPinpointCommand(gameService game.Service, draftService draft.Service, currentSessions *current_session.Service, messages messaging.Service) *PinpointCommand {
	return &PinpointCommand{
		BaseCommand: BaseCommand{
			Name:        "pinpoint",
			Description: "Guess where the pictures were taken",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandStart,
					Description: "Start a new game, ending the one in progress",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandImage,
					Description: "Show the image to guess next",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandGuess,
					Description: "Confirm a guess for the current image",
					Options:     coordinateOptions("guess"),
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandDraft,
					Description: "Keep a candidate location without confirming it",
					Options:     coordinateOptions("remember"),
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandDrafts,
					Description: "List the candidates for the current image",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandProgress,
					Description: "Show how many images are left",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandSummary,
					Description: "Show the scores of the current game",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandEnd,
					Description: "End the current game",
				},
			},
		},
		gameService:     gameService,
		draftService:    draftService,
		currentSessions: currentSessions,
		messages:        messages,
	}
}

// Handle processes the pinpoint command
func (c *PinpointCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return RespondWithEphemeralMessage(s, i, "Please use a subcommand.")
	}

	sub := data.Options[0]
	args := make(map[string]float64, len(sub.Options))
	for _, opt := range sub.Options {
		if opt.Type == discordgo.ApplicationCommandOptionNumber {
			args[opt.Name] = opt.FloatValue()
		}
	}

	resp := c.Execute(context.Background(), clientID(interactionUserID(i)), sub.Name, args)
	return Respond(s, i, resp)
}

// HandleButton processes a click on one of the pinpoint buttons
func (c *PinpointCommand) HandleButton(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	resp := c.ExecuteButton(context.Background(), clientID(interactionUserID(i)), i.MessageComponentData().CustomID)
	return RespondWithUpdate(s, i, resp)
}

// ExecuteButton maps a button to the subcommand it stands for
func (c *PinpointCommand) ExecuteButton(ctx context.Context, client, customID string) *discordgo.InteractionResponseData {
	switch customID {
	case ButtonNextImage:
		return c.Execute(ctx, client, SubcommandImage, nil)
	case ButtonNewGame:
		return c.Execute(ctx, client, SubcommandStart, nil)
	case ButtonSummary:
		return c.Execute(ctx, client, SubcommandSummary, nil)
	default:
		return messageResponse(fmt.Sprintf("Unknown button: %s", customID))
	}
}

// Execute runs a subcommand for a client and builds the reply
func (c *PinpointCommand) Execute(ctx context.Context, client, subcommand string, args map[string]float64) *discordgo.InteractionResponseData {
	if subcommand == SubcommandStart {
		return c.start(ctx, client)
	}

	session, err := c.currentSession(ctx, client)
	if err != nil {
		return errorResponse(err)
	}
	if session == nil {
		return messageResponse(noSessionMessage)
	}

	switch subcommand {
	case SubcommandImage:
		return c.showNextImage(ctx, session.ID)
	case SubcommandGuess:
		return c.guess(ctx, session.ID, args)
	case SubcommandDraft:
		return c.addDraft(ctx, session.ID, args)
	case SubcommandDrafts:
		return c.listDrafts(ctx, session.ID)
	case SubcommandProgress:
		return c.progress(ctx, session.ID)
	case SubcommandSummary:
		return c.summary(ctx, session.ID)
	case SubcommandEnd:
		return c.end(ctx, client, session.ID)
	default:
		return messageResponse(fmt.Sprintf("Unknown subcommand: %s", subcommand))
	}
}

// currentSession resolves the client's pointer, dropping it when the session is gone
func (c *PinpointCommand) currentSession(ctx context.Context, client string) (*models.GameSession, error) {
	sessionID, ok := c.currentSessions.Get(ctx, client)
	if !ok {
		return nil, nil
	}

	found, err := c.gameService.FindSession(ctx, &game.FindSessionInput{SessionID: sessionID})
	if err != nil {
		return nil, err
	}

	if found.Session == nil {
		if err := c.currentSessions.Clear(ctx, client); err != nil {
			log.Warn().Err(err).Str("client_id", client).Msg("failed to clear stale current session")
		}
		return nil, nil
	}

	return found.Session, nil
}

func (c *PinpointCommand) clearDrafts(ctx context.Context, sessionID string) {
	if err := c.draftService.ClearSessionDrafts(ctx, &draft.ClearSessionDraftsInput{SessionID: sessionID}); err != nil {
		log.Warn().Err(err).Str("session_id", sessionID).Msg("failed to clear drafts")
	}
}

func (c *PinpointCommand) start(ctx context.Context, client string) *discordgo.InteractionResponseData {
	previous, err := c.currentSession(ctx, client)
	if err != nil {
		return errorResponse(err)
	}

	if previous != nil {
		if previous.Active() {
			if _, err := c.gameService.EndSession(ctx, &game.EndSessionInput{SessionID: previous.ID}); err != nil {
				return errorResponse(err)
			}
		}
		c.clearDrafts(ctx, previous.ID)
	}

	started, err := c.gameService.StartNewSession(ctx, &game.StartNewSessionInput{})
	if err != nil {
		return errorResponse(err)
	}

	if err := c.currentSessions.Set(ctx, client, started.Session.ID); err != nil {
		log.Error().Err(err).Str("client_id", client).Msg("failed to remember current session")
		return errorResponse(err)
	}

	log.Info().Str("client_id", client).Str("session_id", started.Session.ID).Msg("started game from discord")

	return c.showNextImage(ctx, started.Session.ID)
}

// nextImage returns the image to play, nil once the session is complete
func (c *PinpointCommand) nextImage(ctx context.Context, sessionID string) (*models.AnonymousImage, error) {
	next, err := c.gameService.GetNextImage(ctx, &game.GetNextImageInput{SessionID: sessionID})
	if err != nil {
		return nil, err
	}
	if next.Complete {
		return nil, nil
	}
	return next.Image, nil
}

func (c *PinpointCommand) showNextImage(ctx context.Context, sessionID string) *discordgo.InteractionResponseData {
	image, err := c.nextImage(ctx, sessionID)
	if err != nil {
		return errorResponse(err)
	}
	if image == nil {
		return renderComplete()
	}

	progress, err := c.gameService.GetSessionProgress(ctx, &game.GetSessionProgressInput{SessionID: sessionID})
	if err != nil {
		return errorResponse(err)
	}

	drafts, err := c.draftService.GetDrafts(ctx, &draft.GetDraftsInput{
		SessionID: sessionID,
		ImageID:   image.ID,
	})
	if err != nil {
		return errorResponse(err)
	}

	return renderImage(image, progress.Progress, drafts.Drafts)
}

func (c *PinpointCommand) guess(ctx context.Context, sessionID string, args map[string]float64) *discordgo.InteractionResponseData {
	lat, lon, ok := coordinates(args)
	if !ok {
		return messageResponse("Both latitude and longitude are required.")
	}

	image, err := c.nextImage(ctx, sessionID)
	if err != nil {
		return errorResponse(err)
	}
	if image == nil {
		return renderComplete()
	}

	confirmed, err := c.gameService.ConfirmGuess(ctx, &game.ConfirmGuessInput{
		SessionID: sessionID,
		ImageID:   image.ID,
		Latitude:  lat,
		Longitude: lon,
	})
	if err != nil {
		return errorResponse(err)
	}

	reaction, err := c.messages.GetGuessResultMessage(ctx, &messaging.GetGuessResultMessageInput{
		Score:          confirmed.Guess.Score,
		DistanceMeters: confirmed.Guess.DistanceMeters,
	})
	if err != nil {
		log.Warn().Err(err).Msg("failed to get guess reaction")
	}

	return renderGuess(confirmed.Guess, reaction)
}

func (c *PinpointCommand) addDraft(ctx context.Context, sessionID string, args map[string]float64) *discordgo.InteractionResponseData {
	lat, lon, ok := coordinates(args)
	if !ok {
		return messageResponse("Both latitude and longitude are required.")
	}

	image, err := c.nextImage(ctx, sessionID)
	if err != nil {
		return errorResponse(err)
	}
	if image == nil {
		return renderComplete()
	}

	added, err := c.draftService.AddDraft(ctx, &draft.AddDraftInput{
		SessionID: sessionID,
		ImageID:   image.ID,
		Latitude:  lat,
		Longitude: lon,
	})
	if err != nil {
		return errorResponse(err)
	}

	return renderDrafts(added.Drafts)
}

func (c *PinpointCommand) listDrafts(ctx context.Context, sessionID string) *discordgo.InteractionResponseData {
	image, err := c.nextImage(ctx, sessionID)
	if err != nil {
		return errorResponse(err)
	}
	if image == nil {
		return renderComplete()
	}

	drafts, err := c.draftService.GetDrafts(ctx, &draft.GetDraftsInput{
		SessionID: sessionID,
		ImageID:   image.ID,
	})
	if err != nil {
		return errorResponse(err)
	}

	return renderDrafts(drafts.Drafts)
}

func (c *PinpointCommand) progress(ctx context.Context, sessionID string) *discordgo.InteractionResponseData {
	out, err := c.gameService.GetSessionProgress(ctx, &game.GetSessionProgressInput{SessionID: sessionID})
	if err != nil {
		return errorResponse(err)
	}
	return renderProgress(out.Progress)
}

func (c *PinpointCommand) summary(ctx context.Context, sessionID string) *discordgo.InteractionResponseData {
	out, err := c.gameService.GetSessionSummary(ctx, &game.GetSessionSummaryInput{SessionID: sessionID})
	if err != nil {
		return errorResponse(err)
	}
	closing := ""
	reaction, err := c.messages.GetSummaryMessage(ctx, &messaging.GetSummaryMessageInput{
		TotalScore: out.Summary.Meta.TotalScore,
		GuessCount: len(out.Summary.Guesses),
	})
	if err != nil {
		log.Warn().Err(err).Msg("failed to get summary message")
	} else {
		closing = reaction.Message
	}

	return renderSummary(out.Summary, closing)
}

func (c *PinpointCommand) end(ctx context.Context, client, sessionID string) *discordgo.InteractionResponseData {
	if _, err := c.gameService.EndSession(ctx, &game.EndSessionInput{SessionID: sessionID}); err != nil {
		return errorResponse(err)
	}

	c.clearDrafts(ctx, sessionID)

	if err := c.currentSessions.Clear(ctx, client); err != nil {
		log.Warn().Err(err).Str("client_id", client).Msg("failed to clear current session")
	}

	return c.summary(ctx, sessionID)
}

func coordinates(args map[string]float64) (float64, float64, bool) {
	lat, okLat := args[OptionLatitude]
	lon, okLon := args[OptionLongitude]
	return lat, lon, okLat && okLon
}
