// Package translate formats user visible messages for the current locale.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DEFAULT_LOCALE is used when the system locale cannot be determined.
const DEFAULT_LOCALE = "en-US"

var (
	mutex   sync.Mutex
	printer *message.Printer
)

// current returns the printer, choosing one from the system locales on first use.
func current() *message.Printer {
	mutex.Lock()
	defer mutex.Unlock()

	if printer == nil {
		locales, err := locale.GetLocales()
		if err != nil {
			log.Printf("cpu16: locale: %v", err)
		}

		if len(locales) == 0 {
			locales = []string{DEFAULT_LOCALE}
		}

		printer = message.NewPrinter(message.MatchLanguage(locales...))
	}

	return printer
}

// SetLanguage replaces the printer with one for tag.
func SetLanguage(tag language.Tag) {
	mutex.Lock()
	defer mutex.Unlock()

	printer = message.NewPrinter(tag)
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return current().Sprintf(key, args...)
}
