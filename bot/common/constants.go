package common

// Discord color constants
const (
	ColorPrimary = 0x5865F2 // Discord blurple
	ColorSuccess = 0x57F287 // Green
	ColorInfo    = 0x3498DB // Blue
	ColorHelp    = 0x2ECC71 // Category green
	ColorInvalid = 0xE74C3C // Invalid category red
	ColorGold    = 0xF1C40F // Setup gold
	ColorAdmin   = 0xFF0000 // Admin views
)

// UI constants
const (
	MaxEmbedFieldLength = 1024
)
