package dash

import (
	"splitdash/hal"
	"splitdash/telemetry"
)

// Weather icons are 16x16, stock logos and the metro roundel 8x8. All are
// row-major MSB-first, matching hal.Glyph.

var iconClear = hal.Glyph{Width: 16, Height: 16, Bits: []byte{
	0x00, 0x00,
	0x01, 0x80,
	0x11, 0x88,
	0x09, 0x90,
	0x03, 0xC0,
	0x07, 0xE0,
	0x6F, 0xF6,
	0x0F, 0xF0,
	0x0F, 0xF0,
	0x6F, 0xF6,
	0x07, 0xE0,
	0x03, 0xC0,
	0x09, 0x90,
	0x11, 0x88,
	0x01, 0x80,
	0x00, 0x00,
}}

var iconClouds = hal.Glyph{Width: 16, Height: 16, Bits: []byte{
	0x00, 0x00,
	0x00, 0x00,
	0x03, 0x80,
	0x07, 0xC0,
	0x0F, 0xE0,
	0x3F, 0xF8,
	0x7F, 0xFC,
	0x7F, 0xFC,
	0x3F, 0xF8,
	0x00, 0x00,
	0x07, 0x00,
	0x1F, 0xC0,
	0x3F, 0xE0,
	0x3F, 0xE0,
	0x1F, 0xC0,
	0x00, 0x00,
}}

var iconRain = hal.Glyph{Width: 16, Height: 16, Bits: []byte{
	0x00, 0x00,
	0x03, 0x80,
	0x0F, 0xE0,
	0x3F, 0xF8,
	0x7F, 0xFC,
	0x7F, 0xFC,
	0x3F, 0xF8,
	0x00, 0x00,
	0x12, 0x48,
	0x12, 0x48,
	0x24, 0x90,
	0x24, 0x90,
	0x49, 0x20,
	0x49, 0x20,
	0x00, 0x00,
	0x00, 0x00,
}}

var iconStorm = hal.Glyph{Width: 16, Height: 16, Bits: []byte{
	0x00, 0x00,
	0x03, 0x80,
	0x0F, 0xE0,
	0x3F, 0xF8,
	0x7F, 0xFC,
	0x7F, 0xFC,
	0x3F, 0xF8,
	0x01, 0xC0,
	0x03, 0x80,
	0x07, 0x00,
	0x0F, 0xE0,
	0x01, 0xC0,
	0x03, 0x80,
	0x07, 0x00,
	0x04, 0x00,
	0x00, 0x00,
}}

var iconSnow = hal.Glyph{Width: 16, Height: 16, Bits: []byte{
	0x00, 0x00,
	0x01, 0x80,
	0x09, 0x90,
	0x05, 0xA0,
	0x03, 0xC0,
	0x1D, 0xB8,
	0x3B, 0xDC,
	0x01, 0x80,
	0x01, 0x80,
	0x3B, 0xDC,
	0x1D, 0xB8,
	0x03, 0xC0,
	0x05, 0xA0,
	0x09, 0x90,
	0x01, 0x80,
	0x00, 0x00,
}}

var iconMist = hal.Glyph{Width: 16, Height: 16, Bits: []byte{
	0x00, 0x00,
	0x00, 0x00,
	0x3F, 0xF0,
	0x00, 0x00,
	0x0F, 0xFC,
	0x00, 0x00,
	0x7F, 0xF8,
	0x00, 0x00,
	0x1F, 0xFE,
	0x00, 0x00,
	0x3F, 0xF0,
	0x00, 0x00,
	0x0F, 0xF8,
	0x00, 0x00,
	0x00, 0x00,
	0x00, 0x00,
}}

// weatherIcons is indexed by telemetry.Condition; unrecognized codes never
// reach it (the decoder defaults them to clear).
var weatherIcons = [...]hal.Glyph{
	telemetry.CondClear:  iconClear,
	telemetry.CondClouds: iconClouds,
	telemetry.CondRain:   iconRain,
	telemetry.CondStorm:  iconStorm,
	telemetry.CondSnow:   iconSnow,
	telemetry.CondMist:   iconMist,
}

func weatherIcon(c telemetry.Condition) hal.Glyph {
	if int(c) >= len(weatherIcons) {
		return iconClear
	}
	return weatherIcons[c]
}

// stockLogos is indexed by the store cursor.
var stockLogos = [telemetry.StockCount]hal.Glyph{
	{Width: 8, Height: 8, Bits: []byte{
		0x3C, 0x42, 0x99, 0xA1, 0x85, 0x99, 0x42, 0x3C,
	}},
	{Width: 8, Height: 8, Bits: []byte{
		0x7E, 0x81, 0xB1, 0x89, 0x91, 0x8D, 0x81, 0x7E,
	}},
}

func stockLogo(index uint8) hal.Glyph {
	if index >= telemetry.StockCount {
		return stockLogos[0]
	}
	return stockLogos[index]
}

// metroAccent is the blinking roundel drawn next to the impacted line.
var metroAccent = hal.Glyph{Width: 8, Height: 8, Bits: []byte{
	0x3C, 0x7E, 0xFF, 0xFF, 0xFF, 0xFF, 0x7E, 0x3C,
}}
