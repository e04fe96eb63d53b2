package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/tusklore/tuskbot/internal/domain"
	"github.com/tusklore/tuskbot/internal/logger"
)

// DailyCommand returns the daily draw command definition and handler
func DailyCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "daily",
		Description: "Claim your daily boar",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
		ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
		log := logger.FromContext(ctx)

		userID, username := interactionUser(i)
		result, err := b.boarService.Daily(ctx, userID, username, i.GuildID)
		if err != nil {
			if errors.Is(err, domain.ErrUserBanned) {
				respond(s, i, "You cannot claim boars.")
				return
			}
			log.Error("Daily draw failed", "error", err, "user_id", userID)
			respond(s, i, "Something went wrong, please try again.")
			return
		}

		var obtained []string
		for _, id := range result.BoarIDs {
			if id != domain.NoBoarID {
				obtained = append(obtained, id)
			}
		}
		if len(obtained) == 0 {
			respond(s, i, "No boar wandered by this time. Try again tomorrow!")
			return
		}
		respond(s, i, fmt.Sprintf("You got: %s (streak %d)",
			strings.Join(obtained, ", "), result.Streak))
	}

	return cmd, handler
}

// interactionUser extracts the acting user from a guild or DM interaction.
func interactionUser(i *discordgo.InteractionCreate) (string, string) {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID, i.Member.User.Username
	}
	if i.User != nil {
		return i.User.ID, i.User.Username
	}
	return "", ""
}
