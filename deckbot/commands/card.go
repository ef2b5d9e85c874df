package commands

import (
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/frontierdeck/frontierdeck/deckbot"
	"github.com/frontierdeck/frontierdeck/deckbot/config"
	"github.com/frontierdeck/frontierdeck/deckbot/utils"
)

var CardInfo = discord.SlashCommandCreate{
	Name:        "card",
	Description: "📖 Show a card's full details",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:         "card",
			Description:  "Card name or numeric id",
			Required:     true,
			Autocomplete: true,
		},
		discord.ApplicationCommandOptionBool{
			Name:        "show_qa",
			Description: "Include official Q&A rulings",
			Required:    false,
		},
	},
}

func CardInfoHandler(b *deckbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		data := e.SlashCommandInteractionData()
		input := data.String("card")

		card := resolveCardInput(b, input)
		if card == nil {
			return utils.EH.CreateError(e, "Card Not Found",
				fmt.Sprintf("No card matches %q", input))
		}

		detail := utils.FormatCardDetail(card, b.CatalogStore.Current().Packs(), data.Bool("show_qa"))

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       "📖 " + utils.FormatCardName(card.Name),
				Description: fmt.Sprintf("```md\n%s```", detail),
				Color:       config.EmbedDefaultColor,
			}},
		})
	}
}

// CardInfoAutocompleteHandler suggests any card, Ability cards included.
func CardInfoAutocompleteHandler(b *deckbot.Bot) handler.AutocompleteHandler {
	return func(e *handler.AutocompleteEvent) error {
		return suggestCardChoices(b, e, b.CatalogStore.Current().Cards())
	}
}
