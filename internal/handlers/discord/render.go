package discord

import (
	"fmt"
	"strings"

	"github.com/aadsleague/invitemgr/internal/models"
	"github.com/aadsleague/invitemgr/internal/services/series"
	"github.com/bwmarrin/discordgo"
)

// renderPlayerTable formats players as a monospace table
func renderPlayerTable(players []*models.Player) string {
	var b strings.Builder
	b.WriteString("```\n")
	b.WriteString(fmt.Sprintf("%-4s %-22s %-4s %-14s %-6s %s\n", "ID", "Name", "Prov", "Status", "Events", "TOC"))
	for _, p := range players {
		toc := ""
		if p.TOCQualified {
			toc = "yes"
		}
		b.WriteString(fmt.Sprintf("%-4d %-22s %-4s %-14s %-6d %s\n",
			p.ID, truncate(p.Name, 22), p.Province, p.Status, p.TotalEvents, toc))
	}
	b.WriteString("```")
	return b.String()
}

// renderEventList formats the event schedule
func renderEventList(events []*series.EventSummary) string {
	var b strings.Builder
	b.WriteString("**Event Schedule**\n")
	for _, e := range events {
		line := fmt.Sprintf("`#%d` **%s** (%s) · %s · %d players",
			e.Event.ID, e.Event.Name, e.Event.EventType, statusEmoji(e.Event.Status), e.ParticipantCount)
		if e.WinnerName != "" {
			line += fmt.Sprintf(" · 🏆 %s", e.WinnerName)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// renderRoster formats one event's roster
func renderRoster(out *series.GetRosterOutput) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("**%s** (%s) · %s\n", out.Event.Name, out.Event.EventType, statusEmoji(out.Event.Status)))
	if len(out.Entries) == 0 {
		b.WriteString("Roster is empty")
		return b.String()
	}
	b.WriteString("```\n")
	for _, entry := range out.Entries {
		label := "veteran"
		if entry.Participation.IsDebut {
			label = "DEBUT"
		}
		b.WriteString(fmt.Sprintf("%-4d %-22s %-4s %s\n",
			entry.Player.ID, truncate(entry.Player.Name, 22), entry.Player.Province, label))
	}
	b.WriteString("```")
	return b.String()
}

// playerFields renders players as embed fields, one per player
func playerFields(players []*models.Player) []*discordgo.MessageEmbedField {
	fields := make([]*discordgo.MessageEmbedField, 0, len(players))
	for _, p := range players {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("#%d %s", p.ID, p.Name),
			Value:  fmt.Sprintf("%s · %s · %d events", p.Province, p.Status, p.TotalEvents),
			Inline: true,
		})
	}
	return fields
}

// historyFields renders a player's participations as embed fields
func historyFields(entries []*series.HistoryEntry) []*discordgo.MessageEmbedField {
	if len(entries) == 0 {
		return []*discordgo.MessageEmbedField{
			{Name: "History", Value: "No event participations yet"},
		}
	}

	fields := make([]*discordgo.MessageEmbedField, 0, len(entries))
	for _, entry := range entries {
		tags := make([]string, 0, 2)
		if entry.Participation.IsDebut {
			tags = append(tags, "debut")
		}
		if entry.IsWinner {
			tags = append(tags, "🏆 winner")
		}
		value := string(entry.Event.EventType)
		if len(tags) > 0 {
			value += " · " + strings.Join(tags, " · ")
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  entry.Event.Name,
			Value: value,
		})
	}
	return fields
}

func statusEmoji(status models.EventStatus) string {
	switch status {
	case models.EventStatusCompleted:
		return "✅ Completed"
	case models.EventStatusActive:
		return "🟢 Active"
	default:
		return "⏳ Pending"
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
