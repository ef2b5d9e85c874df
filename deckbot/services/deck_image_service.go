package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/url"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/frontierdeck/frontierdeck/deckbot/config"
	"github.com/frontierdeck/frontierdeck/deckbot/deck"
)

// DeckImageService renders a deck as the fixed 3x3 grid image shared
// between players. Each cell shows the card image when the bucket has
// one, otherwise the card name as a textual fallback.
type DeckImageService struct {
	spaces *SpacesService
	logger *slog.Logger
}

type deckImageCell struct {
	ImageURL string
	Name     string
}

type deckImageData struct {
	Cells []deckImageCell
}

func NewDeckImageService(spaces *SpacesService) *DeckImageService {
	service := &DeckImageService{
		spaces: spaces,
		logger: slog.With(slog.String("service", "deck_image")),
	}

	service.testChromedpAvailability()

	return service
}

func (s *DeckImageService) testChromedpAvailability() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	chromedpCtx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	err := chromedp.Run(chromedpCtx, chromedp.Navigate("data:text/html,<html><body>test</body></html>"))
	if err != nil {
		s.logger.Error("chromedp not available - deck image rendering will fail",
			slog.String("error", err.Error()))
	} else {
		s.logger.Info("chromedp is available and working")
	}
}

// GenerateDeckImage renders the deck's 9 slots as a PNG.
func (s *DeckImageService) GenerateDeckImage(ctx context.Context, d *deck.Deck) ([]byte, error) {
	start := time.Now()

	slots := d.Slots()
	cells := make([]deckImageCell, len(slots))
	for i, slot := range slots {
		if slot.Empty() {
			continue
		}
		cell := deckImageCell{Name: slot.Name}
		if slot.Image != "" && s.spaces != nil {
			// An image that fails to resolve degrades to the name.
			cell.ImageURL = s.spaces.ImageURL(ctx, slot.Image)
		}
		cells[i] = cell
	}

	htmlContent, err := s.generateHTML(deckImageData{Cells: cells})
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	chromedpCtx, cancel := chromedp.NewContext(ctx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancel()

	chromedpCtx, cancel = context.WithTimeout(chromedpCtx, config.ImageRenderTimeout)
	defer cancel()

	var imageBytes []byte
	err = chromedp.Run(chromedpCtx,
		chromedp.Navigate("data:text/html,"+url.PathEscape(htmlContent)),
		chromedp.WaitVisible("#deck-grid", chromedp.ByID),
		chromedp.Sleep(500*time.Millisecond),
		chromedp.Screenshot("#deck-grid", &imageBytes, chromedp.ByID),
	)
	if err != nil {
		s.logger.Error("Failed to render deck image",
			slog.String("error", err.Error()),
			slog.Duration("elapsed", time.Since(start)))
		return nil, fmt.Errorf("failed to render deck image: %w", err)
	}

	s.logger.Info("Deck image rendered",
		slog.Int("bytes", len(imageBytes)),
		slog.Duration("took", time.Since(start)))
	return imageBytes, nil
}

var deckImageTemplate = template.Must(template.New("deck").Parse(`<!DOCTYPE html>
<html>
<head>
<style>
  body { margin: 0; background: #1d1f24; }
  #deck-grid {
    display: grid;
    grid-template-columns: repeat(3, 240px);
    grid-template-rows: repeat(3, 336px);
    gap: 8px;
    padding: 8px;
    width: fit-content;
  }
  .cell {
    background: #2b2d31;
    border-radius: 6px;
    overflow: hidden;
    display: flex;
    align-items: center;
    justify-content: center;
  }
  .cell img { width: 100%; height: 100%; object-fit: cover; }
  .cell .name {
    color: #e6e6e6;
    font: 20px/1.4 sans-serif;
    text-align: center;
    padding: 12px;
    word-break: break-word;
  }
</style>
</head>
<body>
<div id="deck-grid">
{{range .Cells}}  <div class="cell">{{if .ImageURL}}<img src="{{.ImageURL}}" alt="{{.Name}}">{{else if .Name}}<span class="name">{{.Name}}</span>{{end}}</div>
{{end}}</div>
</body>
</html>`))

func (s *DeckImageService) generateHTML(data deckImageData) (string, error) {
	var buf bytes.Buffer
	if err := deckImageTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
