package allocator

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/handiism/osuap/internal/model"
)

// SlotData is the configuration blob handed to a player's client.
//
// The key "PreformancePointsNeeded" is misspelled on purpose: deployed
// clients read it under that name.
type SlotData struct {
	Pairs                      Pairs `json:"Pairs"`
	PerformancePointsNeeded    int   `json:"PreformancePointsNeeded"`
	DisableDifficultyReduction bool  `json:"DisableDifficultyReduction"`
}

// MarshalJSON writes the pairs as a JSON object keyed by slot name, in
// pairing order.
func (p Pairs) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, pair := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(pair.Slot.Name)
		if err != nil {
			return nil, err
		}
		song, err := json.Marshal(pair.Song)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(song)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a pairs object, keeping the key order of the input.
// Slot kinds are inferred from the names: Victory is the victory slot,
// everything else is reported as included since the blob does not record
// which slots started unlocked.
func (p *Pairs) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("pairs: expected object, got %v", tok)
	}

	var out Pairs
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("pairs: expected slot name, got %v", tok)
		}
		var song model.Song
		if err := dec.Decode(&song); err != nil {
			return fmt.Errorf("pairs: %s: %w", name, err)
		}
		kind := model.SlotIncluded
		if name == model.VictorySlot {
			kind = model.SlotVictory
		}
		out = append(out, model.Pair{Slot: model.Slot{Name: name, Kind: kind}, Song: &song})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*p = out
	return nil
}
