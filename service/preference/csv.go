package preference

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/viant/guitarfest/model"
)

// DecodeCSV decodes delimited rows: person followed by ranked items.  Blank
// cells are ignored, blank rows and '#' comment lines are skipped.
func DecodeCSV(data []byte, comma rune, header bool) (model.Preferences, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = comma
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var ret model.Preferences
	seen := map[model.Person]bool{}
	for row := 0; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrMalformedPreference, err)
		}
		if header && row == 0 {
			continue
		}
		person := model.Person(strings.TrimSpace(record[0]))
		items := nonBlank(record[1:])
		if person == "" {
			if len(items) == 0 {
				continue
			}
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d has items but no person", model.ErrMalformedPreference, line)
		}
		if seen[person] {
			return nil, fmt.Errorf("%w: %v in preferences", model.ErrDuplicatePerson, person)
		}
		seen[person] = true
		ret = append(ret, &model.Preference{Person: person, Items: items})
	}
	return ret, nil
}

func nonBlank(cells []string) []model.Item {
	var ret []model.Item
	for _, cell := range cells {
		if cell = strings.TrimSpace(cell); cell != "" {
			ret = append(ret, model.Item(cell))
		}
	}
	return ret
}
