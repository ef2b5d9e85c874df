package commands

import (
	"bytes"
	"context"
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/frontierdeck/frontierdeck/deckbot"
	"github.com/frontierdeck/frontierdeck/deckbot/config"
	"github.com/frontierdeck/frontierdeck/deckbot/deck"
	"github.com/frontierdeck/frontierdeck/deckbot/utils"
)

var DeckImage = discord.SlashCommandCreate{
	Name:        "deckimage",
	Description: "🖼️ Render your deck as a 3x3 image",
}

func DeckImageHandler(b *deckbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		// Rendering takes seconds; defer so the interaction doesn't expire.
		if err := e.DeferCreateMessage(false); err != nil {
			return fmt.Errorf("failed to defer response: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), config.ImageRenderTimeout)
		defer cancel()

		d, err := b.DeckService.Deck(ctx, e.User().ID)
		if err != nil {
			return utils.EH.UpdateInteractionResponse(e, "Deck Unavailable",
				"Your deck is not available right now")
		}

		if d.Size() == 0 {
			return utils.EH.UpdateInteractionResponse(e, "Empty Deck",
				"Add cards with /deck add before rendering an image")
		}

		imageBytes, err := b.DeckImageService.GenerateDeckImage(ctx, d)
		if err != nil {
			return utils.EH.UpdateInteractionResponse(e, "Render Failed",
				"The deck image could not be rendered")
		}

		_, err = e.UpdateInteractionResponse(discord.MessageUpdate{
			Embeds: &[]discord.Embed{{
				Title: fmt.Sprintf("🖼️ %s's Deck", e.User().Username),
				Color: config.EmbedDefaultColor,
				Image: &discord.EmbedResource{URL: "attachment://deck.png"},
				Footer: &discord.EmbedFooter{
					Text: fmt.Sprintf("%d/%d cards • code: %s", d.Size(), deck.MaxSize, deck.Encode(d)),
				},
			}},
			Files: []*discord.File{
				discord.NewFile("deck.png", "", bytes.NewReader(imageBytes)),
			},
		})
		return err
	}
}
