package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/tusklore/tuskbot/internal/domain"
	"github.com/tusklore/tuskbot/internal/logger"
)

// SetupCommand returns the guild setup command definition and handler.
// Finishing setup marks the guild document fullySetup; cancelling removes
// the document, which the store only allows while setup is incomplete.
func SetupCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "setup",
		Description: "Configure this server",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        "sb_server",
				Description: "Allow SB-restricted boars on this server",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        "cancel",
				Description: "Abandon setup and remove server data",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
		ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
		log := logger.FromContext(ctx)

		data := i.ApplicationCommandData()
		cancel := false
		sbServer := false
		for _, opt := range data.Options {
			switch opt.Name {
			case "cancel":
				cancel = opt.BoolValue()
			case "sb_server":
				sbServer = opt.BoolValue()
			}
		}

		if cancel {
			if err := b.guilds.Remove(ctx, i.GuildID); err != nil {
				log.Error("Failed to remove guild data", "error", err, "guild_id", i.GuildID)
				respond(s, i, "Something went wrong, please try again.")
				return
			}
			respond(s, i, "Setup cancelled.")
			return
		}

		_, err := b.guilds.Update(ctx, i.GuildID, func(g *domain.GuildData) error {
			g.IsSBServer = sbServer
			g.FullySetup = true
			g.ChannelIDs = append(g.ChannelIDs, i.ChannelID)
			return nil
		})
		if err != nil {
			log.Error("Failed to save guild data", "error", err, "guild_id", i.GuildID)
			respond(s, i, "Something went wrong, please try again.")
			return
		}

		respond(s, i, "Server configured. Happy hunting!")
	}

	return cmd, handler
}
