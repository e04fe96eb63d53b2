package discord

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/tusklore/tuskbot/internal/logger"
)

// MarketCommand returns the powerup market command definition and handler
func MarketCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "market",
		Description: "Show open powerup orders",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
		ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
		log := logger.FromContext(ctx)

		market, err := b.store.LoadPowerups(ctx)
		if err != nil {
			log.Error("Failed to load market", "error", err)
			respond(s, i, "Something went wrong, please try again.")
			return
		}

		ids := make([]string, 0, len(market))
		for id := range market {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		var sb strings.Builder
		sb.WriteString("**Powerup market**\n")
		for _, id := range ids {
			item := market[id]
			fmt.Fprintf(&sb, "%s: %d buy orders, %d sell orders\n",
				id, len(item.Buyers), len(item.Sellers))
		}
		respond(s, i, sb.String())
	}

	return cmd, handler
}
