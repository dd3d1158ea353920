package controllers

import "errors"

var (
	ErrNoSelection         = errors.New("no text selected")
	ErrEmptyClipboard      = errors.New("clipboard is empty")
	ErrEmptyFind           = errors.New("no text entered")
	ErrNoReplacement       = errors.New("no replacement text entered")
	ErrInvalidFontSize     = errors.New("invalid font size")
	ErrNonPositiveFontSize = errors.New("font size must be positive")
)
