package theme

import "github.com/go-drift/segmented/pkg/graphics"

// TextAttributes is a title style whose fields may be left unset.
// Unset fields are taken from the next layer that styles the same state.
type TextAttributes struct {
	Color       Opt[graphics.Color]
	FontSize    Opt[float64]
	FontWeight  Opt[graphics.FontWeight]
	ShadowColor Opt[graphics.Color]
}

// TextAttributesOf returns attributes with every field taken from ts.
func TextAttributesOf(ts graphics.TextStyle) TextAttributes {
	return TextAttributes{
		Color:       Some(ts.Color),
		FontSize:    Some(ts.FontSize),
		FontWeight:  Some(ts.FontWeight),
		ShadowColor: Some(ts.ShadowColor),
	}
}

// Merge returns a with every unset field taken from fallback.
func (a TextAttributes) Merge(fallback TextAttributes) TextAttributes {
	return TextAttributes{
		Color:       a.Color.Merge(fallback.Color),
		FontSize:    a.FontSize.Merge(fallback.FontSize),
		FontWeight:  a.FontWeight.Merge(fallback.FontWeight),
		ShadowColor: a.ShadowColor.Merge(fallback.ShadowColor),
	}
}

// TextStyle returns the attributes as a TextStyle. Unset fields are zero.
func (a TextAttributes) TextStyle() graphics.TextStyle {
	return graphics.TextStyle{
		Color:       a.Color.Or(graphics.ColorTransparent),
		FontSize:    a.FontSize.Or(0),
		FontWeight:  a.FontWeight.Or(graphics.FontWeightNormal),
		ShadowColor: a.ShadowColor.Or(graphics.ColorTransparent),
	}
}
