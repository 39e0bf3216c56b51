package assets

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func collatorForClips() *collate.Collator {
	return collate.New(language.Und, collate.Numeric, collate.IgnoreCase)
}
