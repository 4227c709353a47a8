package discord

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/aadsleague/invitemgr/internal/models"
	"github.com/aadsleague/invitemgr/internal/services/series"
	"github.com/bwmarrin/discordgo"
)

var provinceChoices = []*discordgo.ApplicationCommandOptionChoice{
	{Name: "New Brunswick (NB)", Value: "NB"},
	{Name: "Nova Scotia (NS)", Value: "NS"},
	{Name: "Prince Edward Island (PEI)", Value: "PEI"},
}

var statusChoices = []*discordgo.ApplicationCommandOptionChoice{
	{Name: "Prospect", Value: "Prospect"},
	{Name: "Active", Value: "Active"},
	{Name: "Winner", Value: "Winner"},
	{Name: "TOC Qualified", Value: "TOC Qualified"},
}

// AadsCommand handles the /aads command
type AadsCommand struct {
	BaseCommand
	seriesService series.Service
}

// NewAadsCommand creates a new aads command handler
func NewAadsCommand(seriesService series.Service) *AadsCommand {
	return &AadsCommand{
		BaseCommand: BaseCommand{
			Name:        "aads",
			Description: "AADS series invite and roster management",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "add-player",
					Description: "Add a new player to the series",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "name", Description: "Player name", Required: true},
						{Type: discordgo.ApplicationCommandOptionString, Name: "province", Description: "Player province", Required: true, Choices: provinceChoices},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "players",
					Description: "List players, optionally filtered",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "province", Description: "Filter by province", Choices: provinceChoices},
						{Type: discordgo.ApplicationCommandOptionString, Name: "status", Description: "Filter by status", Choices: statusChoices},
						{Type: discordgo.ApplicationCommandOptionString, Name: "search", Description: "Name search"},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "candidates",
					Description: "Show the current invite candidates",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "history",
					Description: "Show a player's event history",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionInteger, Name: "player-id", Description: "Player ID", Required: true},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "events",
					Description: "List all events",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "summary",
					Description: "Show the series dashboard summary",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "roster",
					Description: "Show an event's roster",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionInteger, Name: "event-id", Description: "Event ID", Required: true},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "roster-candidates",
					Description: "List players who can be added to an event roster",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionInteger, Name: "event-id", Description: "Event ID", Required: true},
						{Type: discordgo.ApplicationCommandOptionString, Name: "province", Description: "Filter by province", Choices: provinceChoices},
						{Type: discordgo.ApplicationCommandOptionString, Name: "search", Description: "Name search"},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "roster-add",
					Description: "Add a player to an event roster",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionInteger, Name: "event-id", Description: "Event ID", Required: true},
						{Type: discordgo.ApplicationCommandOptionInteger, Name: "player-id", Description: "Player ID", Required: true},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "roster-remove",
					Description: "Remove a player from an event roster",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionInteger, Name: "event-id", Description: "Event ID", Required: true},
						{Type: discordgo.ApplicationCommandOptionInteger, Name: "player-id", Description: "Player ID", Required: true},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "winner",
					Description: "Declare an event winner",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionInteger, Name: "event-id", Description: "Event ID", Required: true},
						{Type: discordgo.ApplicationCommandOptionInteger, Name: "player-id", Description: "Winning player ID", Required: true},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "export",
					Description: "Export all series data as a JSON file",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "import",
					Description: "Import series data from an exported JSON file",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionAttachment, Name: "file", Description: "Exported JSON file", Required: true},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "push",
					Description: "Push all local data to the cloud store",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "pull",
					Description: "Replace local data with the cloud store's records",
				},
			},
		},
		seriesService: seriesService,
	}
}

// Handle processes a Discord interaction for the aads command
func (c *AadsCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	sub := data.Options[0]
	opts := optionMap(sub.Options)

	var err error
	switch sub.Name {
	case "add-player":
		err = c.handleAddPlayer(s, i, opts)
	case "players":
		err = c.handlePlayers(s, i, opts)
	case "candidates":
		err = c.handleCandidates(s, i)
	case "history":
		err = c.handleHistory(s, i, opts)
	case "events":
		err = c.handleEvents(s, i)
	case "summary":
		err = c.handleSummary(s, i)
	case "roster":
		err = c.handleRoster(s, i, opts)
	case "roster-candidates":
		err = c.handleRosterCandidates(s, i, opts)
	case "roster-add":
		err = c.handleRosterAdd(s, i, opts)
	case "roster-remove":
		err = c.handleRosterRemove(s, i, opts)
	case "winner":
		err = c.handleWinner(s, i, opts)
	case "export":
		err = c.handleExport(s, i)
	case "import":
		err = c.handleImport(s, i, &data, opts)
	case "push":
		err = c.handlePush(s, i)
	case "pull":
		err = c.handlePull(s, i)
	default:
		err = errors.New("unknown subcommand")
	}

	return err
}

// optionMap indexes subcommand options by name
func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

func stringOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	if opt, ok := opts[name]; ok {
		return opt.StringValue()
	}
	return ""
}

func intOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) int64 {
	if opt, ok := opts[name]; ok {
		return opt.IntValue()
	}
	return 0
}

func (c *AadsCommand) handleAddPlayer(s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	out, err := c.seriesService.AddPlayer(ctx, &series.AddPlayerInput{
		Name:     stringOption(opts, "name"),
		Province: models.Province(stringOption(opts, "province")),
	})
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Could not add player: %v", err))
	}

	return RespondWithMessage(s, i, fmt.Sprintf("✅ **%s** (%s) added as player #%d",
		out.Player.Name, out.Player.Province, out.Player.ID))
}

func (c *AadsCommand) handlePlayers(s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	out, err := c.seriesService.ListPlayers(ctx, &series.ListPlayersInput{
		Province:     models.Province(stringOption(opts, "province")),
		Status:       models.PlayerStatus(stringOption(opts, "status")),
		NameContains: stringOption(opts, "search"),
	})
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Could not list players: %v", err))
	}

	if len(out.Players) == 0 {
		return RespondWithMessage(s, i, "No players found")
	}

	return RespondWithMessage(s, i, renderPlayerTable(out.Players))
}

func (c *AadsCommand) handleCandidates(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	out, err := c.seriesService.ListInviteCandidates(ctx, &series.ListInviteCandidatesInput{})
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Could not list candidates: %v", err))
	}

	if len(out.Players) == 0 {
		return RespondWithMessage(s, i, "No candidates found. Players need 1-2 event participations.")
	}

	return RespondWithEmbed(s, i, "🎯 Invite Candidates",
		"Players eligible for upcoming invitations (1-2 events, not TOC qualified)",
		playerFields(out.Players))
}

func (c *AadsCommand) handleHistory(s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	out, err := c.seriesService.GetPlayerHistory(ctx, &series.GetPlayerHistoryInput{
		PlayerID: intOption(opts, "player-id"),
	})
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Could not get history: %v", err))
	}

	return RespondWithEmbed(s, i,
		fmt.Sprintf("%s (%s)", out.Player.Name, out.Player.Province),
		fmt.Sprintf("Status: %s • Events: %d • TOC: %s",
			out.Player.Status, out.Player.TotalEvents, checkmark(out.Player.TOCQualified)),
		historyFields(out.Entries))
}

func (c *AadsCommand) handleEvents(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	out, err := c.seriesService.ListEvents(ctx, &series.ListEventsInput{})
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Could not list events: %v", err))
	}

	return RespondWithMessage(s, i, renderEventList(out.Events))
}

func (c *AadsCommand) handleSummary(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	out, err := c.seriesService.GetSummary(ctx, &series.GetSummaryInput{})
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Could not get summary: %v", err))
	}

	return RespondWithEmbed(s, i, "AADS Series Dashboard", "", []*discordgo.MessageEmbedField{
		{Name: "Total Players", Value: fmt.Sprintf("%d", out.TotalPlayers), Inline: true},
		{Name: "Completed Events", Value: fmt.Sprintf("%d", out.CompletedEvents), Inline: true},
		{Name: "TOC Qualified", Value: fmt.Sprintf("%d", out.TOCQualified), Inline: true},
		{Name: "Prospects", Value: fmt.Sprintf("%d", out.Prospects), Inline: true},
	})
}

func (c *AadsCommand) handleRoster(s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	out, err := c.seriesService.GetRoster(ctx, &series.GetRosterInput{
		EventID: intOption(opts, "event-id"),
	})
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Could not get roster: %v", err))
	}

	return RespondWithMessage(s, i, renderRoster(out))
}

func (c *AadsCommand) handleRosterCandidates(s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	out, err := c.seriesService.ListRosterCandidates(ctx, &series.ListRosterCandidatesInput{
		EventID:      intOption(opts, "event-id"),
		Province:     models.Province(stringOption(opts, "province")),
		NameContains: stringOption(opts, "search"),
	})
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Could not list roster candidates: %v", err))
	}

	if len(out.Players) == 0 {
		return RespondWithMessage(s, i, "No players available for this roster")
	}

	return RespondWithMessage(s, i, renderPlayerTable(out.Players))
}

func (c *AadsCommand) handleRosterAdd(s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	eventID := intOption(opts, "event-id")
	playerID := intOption(opts, "player-id")

	out, err := c.seriesService.AddToRoster(ctx, &series.AddToRosterInput{
		EventID:  eventID,
		PlayerID: playerID,
	})
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Could not add to roster: %v", err))
	}

	label := "VETERAN"
	if out.Participation.IsDebut {
		label = "DEBUT"
	}
	return RespondWithMessage(s, i, fmt.Sprintf("✅ Player #%d added to event %d roster (%s)", playerID, eventID, label))
}

func (c *AadsCommand) handleRosterRemove(s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	eventID := intOption(opts, "event-id")
	playerID := intOption(opts, "player-id")

	_, err := c.seriesService.RemoveFromRoster(ctx, &series.RemoveFromRosterInput{
		EventID:  eventID,
		PlayerID: playerID,
	})
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Could not remove from roster: %v", err))
	}

	return RespondWithMessage(s, i, fmt.Sprintf("Player #%d removed from event %d roster", playerID, eventID))
}

func (c *AadsCommand) handleWinner(s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	out, err := c.seriesService.SetEventWinner(ctx, &series.SetEventWinnerInput{
		EventID:  intOption(opts, "event-id"),
		WinnerID: intOption(opts, "player-id"),
	})
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Could not set winner: %v", err))
	}

	return RespondWithMessage(s, i, fmt.Sprintf("🏆 **%s** wins %s and qualifies for the Tournament of Champions!",
		out.Winner.Name, out.Event.Name))
}

func (c *AadsCommand) handleExport(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	out, err := c.seriesService.Export(ctx, &series.ExportInput{})
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Could not export: %v", err))
	}

	data, err := json.MarshalIndent(out.Snapshot, "", "  ")
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Could not export: %v", err))
	}

	filename := fmt.Sprintf("aads-export-%s.json", out.Snapshot.ExportedAt.Format("2006-01-02"))
	return RespondWithFile(s, i, "Series data exported", filename, data)
}

func (c *AadsCommand) handleImport(s *discordgo.Session, i *discordgo.InteractionCreate, data *discordgo.ApplicationCommandInteractionData, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	opt, ok := opts["file"]
	if !ok {
		return RespondWithError(s, i, "No file attached")
	}

	attachment, ok := data.Resolved.Attachments[opt.Value.(string)]
	if !ok {
		return RespondWithError(s, i, "No file attached")
	}

	payload, err := downloadAttachment(ctx, attachment.URL)
	if err != nil {
		log.Printf("Error downloading import attachment: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Could not download file: %v", err))
	}

	out, err := c.seriesService.Import(ctx, &series.ImportInput{Data: payload})
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Import failed: %v", err))
	}

	return RespondWithMessage(s, i, fmt.Sprintf("Data imported (players: %s, events: %s, participants: %s)",
		replacedLabel(out.PlayersReplaced), replacedLabel(out.EventsReplaced), replacedLabel(out.ParticipationsReplaced)))
}

func (c *AadsCommand) handlePush(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	out, err := c.seriesService.PushAll(ctx, &series.PushAllInput{})
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Push failed: %v", err))
	}

	return RespondWithMessage(s, i, fmt.Sprintf("☁️ Pushed %d players, %d events, %d participants to the cloud",
		out.Players, out.Events, out.Participations))
}

func (c *AadsCommand) handlePull(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	out, err := c.seriesService.PullAll(ctx, &series.PullAllInput{})
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Pull failed: %v", err))
	}

	return RespondWithMessage(s, i, fmt.Sprintf("☁️ Pulled %d players, %d events, %d participants from the cloud",
		out.Players, out.Events, out.Participations))
}

// downloadAttachment fetches an uploaded file from Discord's CDN
func downloadAttachment(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	// Export files are small; cap the read anyway
	return io.ReadAll(io.LimitReader(resp.Body, 8<<20))
}

func replacedLabel(replaced bool) string {
	if replaced {
		return "replaced"
	}
	return "kept"
}

func checkmark(v bool) string {
	if v {
		return "✓"
	}
	return "-"
}
