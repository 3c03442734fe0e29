// Package clip wraps system clipboard access behind a small interface so the
// watcher can be driven by a fake in tests.
package clip

import "github.com/atotto/clipboard"

// Clipboard is a plain get/set text interface over the OS clipboard.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}

type systemClipboard struct{}

// System returns the OS-backed clipboard.
func System() Clipboard {
	return systemClipboard{}
}

func (systemClipboard) ReadText() (string, error) {
	return clipboard.ReadAll()
}

func (systemClipboard) WriteText(text string) error {
	return clipboard.WriteAll(text)
}
