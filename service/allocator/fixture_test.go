package allocator

import (
	"fmt"
	"math/rand"

	"github.com/viant/guitarfest/model"
)

func festPreferences() model.Preferences {
	return model.Preferences{
		{Person: "ty", Items: []model.Item{"1", "2", "3"}},
		{Person: "helene", Items: []model.Item{"1", "2", "4"}},
		{Person: "alex", Items: []model.Item{"2", "3", "4"}},
		{Person: "dominique", Items: []model.Item{"4", "1", "2"}},
	}
}

func festOrder() model.PriorityOrder {
	return model.PriorityOrder{"ty", "helene", "alex", "dominique"}
}

// randomFest generates persons ranking a random subset of items.
func randomFest(r *rand.Rand, persons, items int) (model.Preferences, model.PriorityOrder) {
	var preferences model.Preferences
	var order model.PriorityOrder
	for i := 0; i < persons; i++ {
		person := model.Person(fmt.Sprintf("p%d", i))
		depth := r.Intn(items + 1)
		pref := &model.Preference{Person: person}
		for _, idx := range r.Perm(items)[:depth] {
			pref.Items = append(pref.Items, model.Item(fmt.Sprintf("g%d", idx)))
		}
		preferences = append(preferences, pref)
		order = append(order, person)
	}
	r.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	return preferences, order
}
