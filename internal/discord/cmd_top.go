package discord

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tusklore/tuskbot/internal/domain"
	"github.com/tusklore/tuskbot/internal/logger"
)

const topEntriesShown = 10

// TopCommand returns the leaderboard command definition and handler
func TopCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "top",
		Description: "Show a leaderboard",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "metric",
				Description: "Which leaderboard to show",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
		ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
		log := logger.FromContext(ctx)

		metric := i.ApplicationCommandData().Options[0].StringValue()

		boards, err := b.store.LoadBoards(ctx)
		if err != nil {
			log.Error("Failed to load leaderboards", "error", err)
			respond(s, i, "Something went wrong, please try again.")
			return
		}

		board, ok := boards[metric]
		if !ok {
			respond(s, i, fmt.Sprintf("No leaderboard named %q.", metric))
			return
		}

		respond(s, i, formatBoard(metric, board))
	}

	return cmd, handler
}

// formatBoard renders the top entries of one board. The fastest metric ranks
// ascending; everything else descending.
func formatBoard(metric string, board *domain.BoardData) string {
	type row struct {
		username string
		value    int64
	}
	rows := make([]row, 0, len(board.UserData))
	for _, entry := range board.UserData {
		rows = append(rows, row{username: entry.Username, value: entry.Value})
	}
	if len(rows) == 0 {
		return fmt.Sprintf("The %s leaderboard is empty.", metric)
	}

	sort.Slice(rows, func(a, b int) bool {
		if metric == domain.MetricFastest {
			return rows[a].value < rows[b].value
		}
		return rows[a].value > rows[b].value
	})
	if len(rows) > topEntriesShown {
		rows = rows[:topEntriesShown]
	}

	title := cases.Title(language.English).String(metric)
	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s leaderboard**\n", title)
	for n, r := range rows {
		fmt.Fprintf(&sb, "%d. %s: %d\n", n+1, r.username, r.value)
	}
	return sb.String()
}
