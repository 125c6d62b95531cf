package render

import (
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/bubblepop/internal/infrastructure/config"
)

// ButtonStyleFrom builds a button style from the UI settings.
// Colors must already be validated.
func ButtonStyleFrom(ui config.UIConfig, face text.Face, background string, padding Padding) ButtonStyle {
	return ButtonStyle{
		Face:       face,
		FontSize:   ui.FontSize,
		Fill:       config.MustParseColor(ui.TextColor),
		HoverFill:  config.MustParseColor(ui.HoverColor),
		Background: config.MustParseColor(background),
		Padding:    padding,
	}
}
