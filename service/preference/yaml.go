package preference

import (
	"fmt"

	"github.com/viant/guitarfest/internal/yml"
	"github.com/viant/guitarfest/model"
	"gopkg.in/yaml.v3"
)

// DecodeYAML decodes a mapping of person to ranked items, keeping document
// order.
func DecodeYAML(data []byte) (model.Preferences, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMalformedPreference, err)
	}
	root := (*yml.Node)(&node).Root()
	if root.IsEmpty() {
		return nil, nil
	}

	var ret model.Preferences
	seen := map[model.Person]bool{}
	err := root.Pairs(func(key string, value *yml.Node) error {
		person := model.Person(key)
		if person == "" {
			return fmt.Errorf("%w: blank person at line %d", model.ErrMalformedPreference, value.Line)
		}
		if seen[person] {
			return fmt.Errorf("%w: %v in preferences", model.ErrDuplicatePerson, person)
		}
		seen[person] = true
		items, err := value.Scalars()
		if err != nil {
			return fmt.Errorf("%w: %v: %v", model.ErrMalformedPreference, person, err)
		}
		pref := &model.Preference{Person: person}
		for _, item := range items {
			pref.Items = append(pref.Items, model.Item(item))
		}
		ret = append(ret, pref)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ret, nil
}
