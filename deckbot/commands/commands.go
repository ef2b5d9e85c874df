package commands

import (
	"github.com/disgoorg/disgo/discord"
)

var Commands = []discord.ApplicationCommandCreate{
	SearchCards,
	CardInfo,
	Deck,
	DeckCode,
	DeckImage,
	Packs,
	Version,
}
