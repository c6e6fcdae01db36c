package timeutil

import (
	"time"

	"golang.org/x/text/language"
)

// localeNames holds display names for one supported language. The full message
// catalog lives with the clients; the service only needs calendar names for
// date-option and resume labels.
type localeNames struct {
	weekdays [7]string  // indexed by time.Weekday (Sunday = 0)
	months   [12]string // indexed by time.Month - 1
}

func (n *localeNames) weekday(d time.Weekday) string { return n.weekdays[d] }
func (n *localeNames) month(m time.Month) string     { return n.months[m-1] }

var supportedLocales = []language.Tag{
	language.English, // fallback
	language.German,
	language.French,
	language.Spanish,
}

var localeMatcher = language.NewMatcher(supportedLocales)

var localeTables = map[language.Tag]*localeNames{
	language.English: {
		weekdays: [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		months: [12]string{"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December"},
	},
	language.German: {
		weekdays: [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
		months: [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember"},
	},
	language.French: {
		weekdays: [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
		months: [12]string{"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre"},
	},
	language.Spanish: {
		weekdays: [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
		months: [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
	},
}

// localeFor resolves an opaque locale identifier (e.g. "de-AT") to the closest
// supported name table. Unknown or empty locales fall back to English.
func localeFor(locale string) *localeNames {
	if locale == "" {
		return localeTables[language.English]
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return localeTables[language.English]
	}
	_, idx, _ := localeMatcher.Match(tag)
	return localeTables[supportedLocales[idx]]
}
