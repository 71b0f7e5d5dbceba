// internal/ui/button.go
package ui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"vector-defense/internal/config"
)

// Button is an immediate-mode widget: Draw renders it for the current frame
// and reports whether it was clicked.
type Button struct {
	Bounds   rl.Rectangle
	Label    string
	Color    color.RGBA
	FontSize int32
}

func NewButton(x, y, width, height float32, label string, col color.RGBA) *Button {
	return &Button{
		Bounds:   rl.NewRectangle(x, y, width, height),
		Label:    label,
		Color:    col,
		FontSize: 24,
	}
}

// Draw renders the button and returns true if the left mouse button was
// pressed over it this frame.
func (b *Button) Draw() bool {
	mouse := rl.GetMousePosition()
	hovering := rl.CheckCollisionPointRec(mouse, b.Bounds)

	base := rl.NewColor(b.Color.R, b.Color.G, b.Color.B, b.Color.A)
	dark := rl.NewColor(config.ColorDarkGray.R, config.ColorDarkGray.G, config.ColorDarkGray.B, config.ColorDarkGray.A)
	white := rl.NewColor(config.ColorWhite.R, config.ColorWhite.G, config.ColorWhite.B, config.ColorWhite.A)

	if hovering {
		rl.DrawRectangleRec(b.Bounds, rl.Fade(base, 0.35))
		rl.DrawRectangleLinesEx(b.Bounds, 2, base)
	} else {
		rl.DrawRectangleRec(b.Bounds, rl.Fade(dark, 0.6))
		rl.DrawRectangleLinesEx(b.Bounds, 2, rl.Fade(white, 0.2))
	}

	textWidth := rl.MeasureText(b.Label, b.FontSize)
	textX := int32(b.Bounds.X) + int32(b.Bounds.Width)/2 - textWidth/2
	textY := int32(b.Bounds.Y) + int32(b.Bounds.Height)/2 - b.FontSize/2
	if hovering {
		rl.DrawText(b.Label, textX, textY, b.FontSize, white)
	} else {
		rl.DrawText(b.Label, textX, textY, b.FontSize, rl.Fade(white, 0.7))
	}

	return hovering && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

// Hovered reports whether the cursor is currently over the button.
func (b *Button) Hovered() bool {
	return rl.CheckCollisionPointRec(rl.GetMousePosition(), b.Bounds)
}
