package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/frontierdeck/frontierdeck/deckbot/catalog"
)

// Common filter options shared by the search commands. One option per
// filter predicate; every option is optional and unset options leave
// the predicate inactive.
var CommonFilterOptions = []discord.ApplicationCommandOption{
	discord.ApplicationCommandOptionString{
		Name:        "query",
		Description: "Text to match against card names, tags and text",
		Required:    false,
	},
	discord.ApplicationCommandOptionString{
		Name:        "pack",
		Description: "Filter by pack index or name (see /packs)",
		Required:    false,
	},
	discord.ApplicationCommandOptionInt{
		Name:        "cost_min",
		Description: "Minimum cost (inclusive)",
		Required:    false,
	},
	discord.ApplicationCommandOptionInt{
		Name:        "cost_max",
		Description: "Maximum cost (inclusive)",
		Required:    false,
	},
	discord.ApplicationCommandOptionInt{
		Name:        "power_min",
		Description: "Minimum power",
		Required:    false,
		Choices:     powerChoices,
	},
	discord.ApplicationCommandOptionInt{
		Name:        "power_max",
		Description: "Maximum power",
		Required:    false,
		Choices:     powerChoices,
	},
	discord.ApplicationCommandOptionString{
		Name:        "ability",
		Description: "Filter by ability keyword (exact match)",
		Required:    false,
	},
}

var powerChoices = []discord.ApplicationCommandOptionChoiceInt{
	{Name: "0", Value: 0},
	{Name: "1", Value: 1},
	{Name: "2", Value: 2},
	{Name: "3", Value: 3},
	{Name: "4", Value: 4},
	{Name: "5", Value: 5},
	{Name: "6", Value: 6},
	{Name: "7", Value: 7},
	{Name: "8+", Value: catalog.PowerCap},
}

// CriteriaFromOptions builds the filter criteria from a command's
// option set. The pack option takes either an index or a name
// substring; an unresolvable selector is an error rather than an
// empty result.
func CriteriaFromOptions(data discord.SlashCommandInteractionData, packs []string) (catalog.Criteria, error) {
	crit := catalog.Criteria{
		Query:   strings.TrimSpace(data.String("query")),
		Ability: strings.TrimSpace(data.String("ability")),
	}
	if selector := strings.TrimSpace(data.String("pack")); selector != "" {
		idx, ok := ResolvePack(selector, packs)
		if !ok {
			return crit, fmt.Errorf("unknown pack %q", selector)
		}
		crit.Pack = &idx
	}
	if v, ok := data.OptInt("cost_min"); ok {
		crit.CostMin = &v
	}
	if v, ok := data.OptInt("cost_max"); ok {
		crit.CostMax = &v
	}
	if v, ok := data.OptInt("power_min"); ok {
		crit.PowerMin = &v
	}
	if v, ok := data.OptInt("power_max"); ok {
		crit.PowerMax = &v
	}
	return crit, nil
}

// ResolvePack maps a pack selector to its index: a number selects by
// index, anything else matches case-insensitively as a name substring
// (first hit wins, in pack order).
func ResolvePack(selector string, packs []string) (int, bool) {
	selector = strings.TrimSpace(selector)
	if idx, err := strconv.Atoi(selector); err == nil {
		return idx, idx >= 0 && idx < len(packs)
	}

	lowered := strings.ToLower(selector)
	for i, name := range packs {
		if strings.Contains(strings.ToLower(name), lowered) {
			return i, true
		}
	}
	return 0, false
}

// BuildFilterDescription creates a formatted string of active filters
func BuildFilterDescription(crit catalog.Criteria, packs []string) string {
	if crit.IsZero() {
		return ""
	}

	var filterLines []string

	if crit.Query != "" {
		filterLines = append(filterLines, formatFilterLine("📝 Query", crit.Query))
	}
	if crit.Pack != nil {
		label := fmt.Sprintf("#%d", *crit.Pack)
		if *crit.Pack >= 0 && *crit.Pack < len(packs) {
			label = packs[*crit.Pack]
		}
		filterLines = append(filterLines, formatFilterLine("📦 Pack", label))
	}
	if crit.CostMin != nil {
		filterLines = append(filterLines, formatFilterLine("💧 Cost ≥", *crit.CostMin))
	}
	if crit.CostMax != nil {
		filterLines = append(filterLines, formatFilterLine("💧 Cost ≤", *crit.CostMax))
	}
	if crit.PowerMin != nil {
		filterLines = append(filterLines, formatFilterLine("⚔️ Power ≥", PowerLabel(*crit.PowerMin)))
	}
	if crit.PowerMax != nil {
		filterLines = append(filterLines, formatFilterLine("⚔️ Power ≤", PowerLabel(*crit.PowerMax)))
	}
	if crit.Ability != "" {
		filterLines = append(filterLines, formatFilterLine("✨ Ability", crit.Ability))
	}

	return "```md\n# Active Filters\n* " + strings.Join(filterLines, "\n* ") + "\n```"
}

// PowerLabel renders a power bound, showing the open-ended cap as "8+".
func PowerLabel(v int) string {
	if v >= catalog.PowerCap {
		return "8+"
	}
	return fmt.Sprintf("%d", v)
}

func formatFilterLine(label string, value interface{}) string {
	return fmt.Sprintf("%s: %v", label, value)
}
