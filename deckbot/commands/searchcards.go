package commands

import (
	"fmt"
	"math"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/paginator"
	"github.com/frontierdeck/frontierdeck/deckbot"
	"github.com/frontierdeck/frontierdeck/deckbot/catalog"
	"github.com/frontierdeck/frontierdeck/deckbot/config"
	"github.com/frontierdeck/frontierdeck/deckbot/utils"
)

var SearchCards = discord.SlashCommandCreate{
	Name:        "searchcards",
	Description: "🔍 Search the card catalog with filters",
	Options:     utils.CommonFilterOptions,
}

func SearchCardsHandler(b *deckbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		cat := b.CatalogStore.Current()
		if cat.Len() == 0 {
			return utils.EH.CreateErrorEmbed(e, "The card catalog is not loaded")
		}

		crit, err := utils.CriteriaFromOptions(e.SlashCommandInteractionData(), cat.Packs())
		if err != nil {
			return utils.EH.CreateError(e, "Unknown Pack",
				"No pack matches that index or name; see /packs")
		}

		results := catalog.Filter(cat.Cards(), crit)
		if len(results) == 0 {
			return utils.EH.CreateError(e, "No Results Found",
				"No cards match your search criteria")
		}

		return createSearchPaginator(b, e, results, crit, cat.Packs())
	}
}

func createSearchPaginator(b *deckbot.Bot, e *handler.CommandEvent, results []*catalog.Card, crit catalog.Criteria, packs []string) error {
	totalPages := int(math.Ceil(float64(len(results)) / float64(config.CardsPerPage)))

	return b.Paginator.Create(e.Respond, paginator.Pages{
		ID:      e.ID().String(),
		Creator: e.User().ID,
		PageFunc: func(page int, embed *discord.EmbedBuilder) {
			start := page * config.CardsPerPage
			end := start + config.CardsPerPage
			if end > len(results) {
				end = len(results)
			}

			embed.
				SetTitle("🔍 Card Search Results").
				SetDescription(buildSearchDescription(results[start:end], crit, packs)).
				SetColor(config.EmbedDefaultColor).
				SetFooter(fmt.Sprintf("Page %d/%d • Total: %d", page+1, totalPages, len(results)), "")
		},
		Pages:      totalPages,
		ExpireMode: paginator.ExpireModeAfterLastUsage,
	}, false)
}

func buildSearchDescription(pageCards []*catalog.Card, crit catalog.Criteria, packs []string) string {
	var description strings.Builder

	if filters := utils.BuildFilterDescription(crit, packs); filters != "" {
		description.WriteString(filters)
		description.WriteString("\n")
	}

	description.WriteString("```md\n# Cards\n")
	for _, card := range pageCards {
		description.WriteString(utils.FormatCardLine(card))
		description.WriteString("\n")
	}
	description.WriteString("```")
	return description.String()
}
