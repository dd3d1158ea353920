package models

import "sync"

// Clipboard holds the last cut or copied selection
type Clipboard struct {
	mu   sync.RWMutex
	text string
}

func NewClipboard() *Clipboard {
	return &Clipboard{}
}

// Set overwrites the clipboard
func (c *Clipboard) Set(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
}

func (c *Clipboard) Get() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.text
}

func (c *Clipboard) Empty() bool {
	return c.Get() == ""
}
