// Package i18n formats user-facing overlay text. The service renders
// English only today, but routing the strings through a message catalog
// keeps plural grammar out of the rendering code.
package i18n

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const commitKey = "%d commits today"

func init() {
	if err := message.Set(language.English, commitKey,
		plural.Selectf(1, "%d",
			plural.One, "%d commit today",
			plural.Other, "%d commits today",
		),
	); err != nil {
		panic(err)
	}
}

var printer = message.NewPrinter(language.English)

// CommitLabel renders the overlay caption for a daily commit count with
// singular/plural grammar.
func CommitLabel(count int) string {
	return printer.Sprintf(commitKey, count)
}
