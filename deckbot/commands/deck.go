package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/frontierdeck/frontierdeck/deckbot"
	"github.com/frontierdeck/frontierdeck/deckbot/catalog"
	"github.com/frontierdeck/frontierdeck/deckbot/config"
	"github.com/frontierdeck/frontierdeck/deckbot/deck"
	"github.com/frontierdeck/frontierdeck/deckbot/utils"
)

var Deck = discord.SlashCommandCreate{
	Name:        "deck",
	Description: "🃏 Build and inspect your deck",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionSubCommand{
			Name:        "view",
			Description: "Show your current deck",
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "add",
			Description: "Add a Character card to your deck",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{
					Name:         "card",
					Description:  "Card name or numeric id",
					Required:     true,
					Autocomplete: true,
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "remove",
			Description: "Remove the card in a deck slot",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionInt{
					Name:        "slot",
					Description: fmt.Sprintf("Slot number (1-%d)", deck.MaxSize),
					Required:    true,
					MinValue:    utils.Ptr(1),
					MaxValue:    utils.Ptr(deck.MaxSize),
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "clear",
			Description: "Remove every card from your deck",
		},
	},
}

func DeckHandler(b *deckbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.SearchTimeout)
		defer cancel()

		data := e.SlashCommandInteractionData()

		switch *data.SubCommandName {
		case "view":
			return handleDeckView(ctx, b, e)
		case "add":
			return handleDeckAdd(ctx, b, e, data.String("card"))
		case "remove":
			return handleDeckRemove(ctx, b, e, data.Int("slot"))
		case "clear":
			return handleDeckClear(ctx, b, e)
		default:
			return utils.EH.CreateErrorEmbed(e, "Invalid subcommand")
		}
	}
}

func handleDeckView(ctx context.Context, b *deckbot.Bot, e *handler.CommandEvent) error {
	d, err := b.DeckService.Deck(ctx, e.User().ID)
	if err != nil {
		return utils.EH.CreateErrorEmbed(e, "Your deck is not available right now")
	}

	if d.Size() == 0 {
		return utils.EH.CreateInfoEmbed(e, "Your deck is empty. Use `/deck add` or `/deckcode import` to fill it.")
	}

	return e.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{buildDeckEmbed(e.User().Username, d)},
	})
}

func buildDeckEmbed(username string, d *deck.Deck) discord.Embed {
	var description strings.Builder
	description.WriteString("```md\n# Deck\n")
	for i, card := range d.Cards() {
		description.WriteString(fmt.Sprintf("%d. %s\n", i+1, utils.FormatCardLine(card)))
	}
	description.WriteString("```")

	return discord.Embed{
		Title:       fmt.Sprintf("🃏 %s's Deck", username),
		Description: description.String(),
		Color:       config.EmbedDefaultColor,
		Fields: []discord.EmbedField{
			{Name: "Cards", Value: fmt.Sprintf("%d/%d", d.Size(), deck.MaxSize), Inline: utils.Ptr(true)},
			{Name: "Total Cost", Value: strconv.Itoa(d.TotalCost()), Inline: utils.Ptr(true)},
		},
		Footer: &discord.EmbedFooter{
			Text: "Code: " + deck.Encode(d),
		},
	}
}

func handleDeckAdd(ctx context.Context, b *deckbot.Bot, e *handler.CommandEvent, input string) error {
	card := resolveCardInput(b, input)
	if card == nil {
		return utils.EH.CreateError(e, "Card Not Found",
			fmt.Sprintf("No card matches %q", input))
	}

	if err := b.DeckService.Add(ctx, e.User().ID, card); err != nil {
		switch {
		case errors.Is(err, deck.ErrDeckFull):
			return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("Your deck already holds %d cards", deck.MaxSize))
		case errors.Is(err, deck.ErrWrongCardType):
			return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("**%s** is not a Character card", utils.FormatCardName(card.Name)))
		default:
			return utils.EH.CreateErrorEmbed(e, "Your deck is not available right now")
		}
	}

	d, err := b.DeckService.Deck(ctx, e.User().ID)
	if err != nil {
		return utils.EH.CreateErrorEmbed(e, "Your deck is not available right now")
	}
	return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf("Added **%s** (%d/%d)",
		utils.FormatCardName(card.Name), d.Size(), deck.MaxSize))
}

// resolveCardInput accepts either the numeric card id (what autocomplete
// submits) or free text resolved by fuzzy name match.
func resolveCardInput(b *deckbot.Bot, input string) *catalog.Card {
	cat := b.CatalogStore.Current()
	input = strings.TrimSpace(input)

	if id, err := strconv.ParseInt(input, 10, 64); err == nil {
		if card, ok := cat.ByID(id); ok {
			return card
		}
		return nil
	}
	return b.SearchService.ResolveCard(cat.Cards(), input)
}

func handleDeckRemove(ctx context.Context, b *deckbot.Bot, e *handler.CommandEvent, slot int) error {
	removed, err := b.DeckService.RemoveAt(ctx, e.User().ID, slot-1)
	if err != nil {
		return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("Slot %d is empty", slot))
	}
	return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf("Removed **%s** from slot %d",
		utils.FormatCardName(removed.Name), slot))
}

func handleDeckClear(ctx context.Context, b *deckbot.Bot, e *handler.CommandEvent) error {
	if err := b.DeckService.Clear(ctx, e.User().ID); err != nil {
		return utils.EH.CreateErrorEmbed(e, "Your deck is not available right now")
	}
	return utils.EH.CreateSuccessEmbed(e, "Your deck has been cleared")
}

// DeckAutocompleteHandler suggests Character card names for /deck add,
// submitting the card id as the option value.
func DeckAutocompleteHandler(b *deckbot.Bot) handler.AutocompleteHandler {
	return func(e *handler.AutocompleteEvent) error {
		return suggestCardChoices(b, e, characterCards(b.CatalogStore.Current().Cards()))
	}
}

// suggestCardChoices answers a "card" option autocomplete from the
// given candidate list (max 25 choices per Discord's limit).
func suggestCardChoices(b *deckbot.Bot, e *handler.AutocompleteEvent, cards []*catalog.Card) error {
	focused := e.Data.Focused()
	if focused.Name != "card" {
		return nil
	}

	query := ""
	if focused.Value != nil {
		var s string
		if err := json.Unmarshal(focused.Value, &s); err != nil {
			return e.AutocompleteResult(nil)
		}
		query = strings.TrimSpace(s)
	}

	matches := b.SearchService.Suggest(cards, query, 25)

	choices := make([]discord.AutocompleteChoice, 0, len(matches))
	for _, card := range matches {
		choices = append(choices, discord.AutocompleteChoiceString{
			Name:  utils.FormatCardName(card.Name),
			Value: strconv.FormatInt(card.ID, 10),
		})
	}
	return e.AutocompleteResult(choices)
}

func characterCards(cards []*catalog.Card) []*catalog.Card {
	out := make([]*catalog.Card, 0, len(cards))
	for _, card := range cards {
		if card.Type == catalog.TypeCharacter {
			out = append(out, card)
		}
	}
	return out
}
