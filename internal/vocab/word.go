package vocab

import (
	"encoding/json"
	"strings"
)

// WordEntry is a single dataset record. Entries are immutable once loaded
// and are identified by Word.
type WordEntry struct {
	Word         string `json:"word"`
	Translation  string `json:"translation"`
	Definition   string `json:"definition,omitempty"`
	Level        Level  `json:"level"`
	PartOfSpeech string `json:"pos,omitempty"`
}

// rawEntry mirrors the dataset file, where the translation may be keyed
// either "thai" or "translation".
type rawEntry struct {
	Word         string `json:"word"`
	Thai         string `json:"thai"`
	Translation  string `json:"translation"`
	Definition   string `json:"definition"`
	Level        string `json:"level"`
	PartOfSpeech string `json:"pos"`
}

// UnmarshalJSON accepts both the "thai" and "translation" keys.
func (w *WordEntry) UnmarshalJSON(data []byte) error {
	var raw rawEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	translation := raw.Translation
	if translation == "" {
		translation = raw.Thai
	}
	*w = WordEntry{
		Word:         strings.TrimSpace(raw.Word),
		Translation:  strings.TrimSpace(translation),
		Definition:   strings.TrimSpace(raw.Definition),
		Level:        Level(strings.ToUpper(strings.TrimSpace(raw.Level))),
		PartOfSpeech: strings.TrimSpace(raw.PartOfSpeech),
	}
	return nil
}

// Initial returns the lowercase first letter of the word and whether it
// falls in a-z. Words starting with anything else have no letter bucket.
func (w WordEntry) Initial() (byte, bool) {
	if w.Word == "" {
		return 0, false
	}
	c := w.Word[0]
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	if c < 'a' || c > 'z' {
		return 0, false
	}
	return c, true
}
