//go:build !test

package utils

import "github.com/sqweek/dialog"

// AskForFile opens a native file picker, starting in startingDir, and
// returns the chosen path.
func AskForFile(title, startingDir string) (string, error) {
	builder := dialog.File().SetStartDir(startingDir).Title(title).Filter("Game Boy ROM", "gb", "gz", "zip", "7z")

	// show the dialog
	return builder.Load()
}
