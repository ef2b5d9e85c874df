package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/frontierdeck/frontierdeck/deckbot"
	"github.com/frontierdeck/frontierdeck/deckbot/config"
	"github.com/frontierdeck/frontierdeck/deckbot/deck"
	"github.com/frontierdeck/frontierdeck/deckbot/utils"
)

var DeckCode = discord.SlashCommandCreate{
	Name:        "deckcode",
	Description: "📋 Share or load a deck through its code",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionSubCommand{
			Name:        "export",
			Description: "Export your deck as a shareable code",
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "import",
			Description: "Replace your deck with the cards from a code",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{
					Name:        "code",
					Description: "Comma-separated card ids, e.g. 12,7,12",
					Required:    true,
				},
			},
		},
	},
}

func DeckCodeHandler(b *deckbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.SearchTimeout)
		defer cancel()

		data := e.SlashCommandInteractionData()

		switch *data.SubCommandName {
		case "export":
			return handleExport(ctx, b, e)
		case "import":
			return handleImport(ctx, b, e, data.String("code"))
		default:
			return utils.EH.CreateErrorEmbed(e, "Invalid subcommand")
		}
	}
}

func handleExport(ctx context.Context, b *deckbot.Bot, e *handler.CommandEvent) error {
	d, err := b.DeckService.Deck(ctx, e.User().ID)
	if err != nil {
		return utils.EH.CreateErrorEmbed(e, "Your deck is not available right now")
	}

	if d.Size() == 0 {
		return utils.EH.CreateErrorEmbed(e, "Your deck is empty, there is nothing to export")
	}

	return e.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Title:       "📋 Deck Code",
			Description: fmt.Sprintf("```\n%s\n```", deck.Encode(d)),
			Color:       config.SuccessColor,
			Footer: &discord.EmbedFooter{
				Text: fmt.Sprintf("%d cards • total cost %d", d.Size(), d.TotalCost()),
			},
		}},
	})
}

func handleImport(ctx context.Context, b *deckbot.Bot, e *handler.CommandEvent, code string) error {
	d, err := b.DeckService.Import(ctx, e.User().ID, code)
	if err != nil {
		switch {
		case errors.Is(err, deck.ErrEmptyCode):
			return utils.EH.CreateErrorEmbed(e, "The deck code is empty")
		case errors.Is(err, deck.ErrNoValidCards):
			return utils.EH.CreateErrorEmbed(e, "The deck code contains no usable cards")
		default:
			return utils.EH.CreateErrorEmbed(e, "Your deck is not available right now")
		}
	}

	embed := buildDeckEmbed(e.User().Username, d)
	if skipped := countCodeEntries(code) - d.Size(); skipped > 0 {
		embed.Color = config.WarningColor
		embed.Fields = append(embed.Fields, discord.EmbedField{
			Name:  "Skipped",
			Value: fmt.Sprintf("%d entries were unknown, not Characters, or over the %d-card limit", skipped, deck.MaxSize),
		})
	}

	return e.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{embed},
	})
}

func countCodeEntries(code string) int {
	count := 0
	for _, token := range strings.Split(code, ",") {
		if strings.TrimSpace(token) != "" {
			count++
		}
	}
	return count
}
