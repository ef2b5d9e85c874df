package commands

import (
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/frontierdeck/frontierdeck/deckbot"
	"github.com/frontierdeck/frontierdeck/deckbot/config"
	"github.com/frontierdeck/frontierdeck/deckbot/utils"
)

var Packs = discord.SlashCommandCreate{
	Name:        "packs",
	Description: "📦 List the catalog's packs and their filter indices",
}

func PacksHandler(b *deckbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		packs := b.CatalogStore.Current().Packs()
		if len(packs) == 0 {
			return utils.EH.CreateInfoEmbed(e, "The catalog has no packs")
		}

		var description strings.Builder
		description.WriteString("```md\n# Packs\n")
		for i, name := range packs {
			description.WriteString(fmt.Sprintf("[%d] %s\n", i, name))
		}
		description.WriteString("```\nUse the index as the `pack` option of /searchcards.")

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       "📦 Card Packs",
				Description: description.String(),
				Color:       config.EmbedDefaultColor,
			}},
		})
	}
}
