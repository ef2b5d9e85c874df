package config

import "time"

// UI and display constants
const (
	// Pagination
	CardsPerPage = 10

	// Colors
	ErrorColor   = 0xFF0000
	SuccessColor = 0x00FF00
	InfoColor    = 0x0099FF
	WarningColor = 0xFFAA00

	EmbedDefaultColor = 0x2B2D31
)

// Timeouts
const (
	SearchTimeout      = 10 * time.Second
	ImageRenderTimeout = 15 * time.Second
)
