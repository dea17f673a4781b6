package priority

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/viant/guitarfest/model"
)

// Random places the VIPs first, in the given order, followed by a seeded
// permutation of the remaining persons.
type Random struct {
	vips []model.Person
	seed int64
}

// Seed returns the seed used for the permutation.
func (r *Random) Seed() int64 {
	return r.seed
}

// Order returns the VIP prefix followed by the shuffled rest.
func (r *Random) Order(ctx context.Context, persons []model.Person) (model.PriorityOrder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ret := make(model.PriorityOrder, 0, len(persons)+len(r.vips))
	isVIP := make(map[model.Person]bool, len(r.vips))
	for _, vip := range r.vips {
		if isVIP[vip] {
			return nil, fmt.Errorf("%w: %v listed twice as VIP", model.ErrDuplicatePerson, vip)
		}
		isVIP[vip] = true
		ret = append(ret, vip)
	}

	rest := make([]model.Person, 0, len(persons))
	for _, person := range persons {
		if !isVIP[person] {
			rest = append(rest, person)
		}
	}
	// sort first so that the draw depends on the seed only, not on input order
	slices.Sort(rest)
	if len(slices.Compact(slices.Clone(rest))) != len(rest) {
		return nil, fmt.Errorf("%w: persons to order are not unique", model.ErrDuplicatePerson)
	}
	generator := rand.New(rand.NewPCG(uint64(r.seed), uint64(r.seed)>>32))
	generator.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })
	return append(ret, rest...), nil
}

// NewRandom creates a random provider.  A zero seed draws a fresh one from
// crypto/rand.
func NewRandom(vips []model.Person, seed int64) (*Random, error) {
	if seed == 0 {
		var err error
		if seed, err = NewSeed(); err != nil {
			return nil, err
		}
	}
	return &Random{vips: append([]model.Person{}, vips...), seed: seed}, nil
}

// NewSeed generates a non-zero random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	for {
		if _, err := crand.Read(b[:]); err != nil {
			return 0, fmt.Errorf("read random seed: %w", err)
		}
		if seed := int64(binary.LittleEndian.Uint64(b[:])); seed != 0 {
			return seed, nil
		}
	}
}
