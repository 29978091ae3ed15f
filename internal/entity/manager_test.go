package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

const (
	kindRock Kind = iota
	kindBird
)

type rock struct {
	Base
	name    string
	updates int
	draws   int
	log     *[]string
}

func (*rock) Kind() Kind { return kindRock }

func (r *rock) Update() {
	r.updates++
	if r.log != nil {
		*r.log = append(*r.log, "update:"+r.name)
	}
}

func (r *rock) Draw(*core.Canvas) {
	r.draws++
	if r.log != nil {
		*r.log = append(*r.log, "draw:"+r.name)
	}
}

type bird struct {
	Base
	name string
	log  *[]string
}

func (*bird) Kind() Kind { return kindBird }

func (b *bird) Update() {
	if b.log != nil {
		*b.log = append(*b.log, "update:"+b.name)
	}
}

func (b *bird) Draw(*core.Canvas) {}

func names[T interface {
	Entity
	label() string
}](list []T) []string {
	out := make([]string, 0, len(list))
	for _, e := range list {
		out = append(out, e.label())
	}
	return out
}

func (r *rock) label() string { return r.name }
func (b *bird) label() string { return b.name }

func TestCreateRegistersInArenaAndGroup(t *testing.T) {
	m := NewManager()

	r := Create(m, &rock{name: "r1"})
	b := Create(m, &bird{name: "b1"})

	require.NotNil(t, r)
	require.NotNil(t, b)
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, 1, CountOf[*rock](m))
	assert.Equal(t, 1, CountOf[*bird](m))
	assert.Same(t, r, All[*rock](m)[0])
	assert.Same(t, b, All[*bird](m)[0])
}

func TestAllOnEmptyKind(t *testing.T) {
	m := NewManager()
	Create(m, &rock{name: "r1"})

	assert.Empty(t, All[*bird](m))
	assert.Zero(t, m.Count(kindBird))
	assert.Nil(t, m.Group(Kind(42)))
}

func TestForEachVisitsInInsertionOrder(t *testing.T) {
	m := NewManager()
	for _, n := range []string{"a", "b", "c"} {
		Create(m, &rock{name: n})
		Create(m, &bird{name: "bird-" + n})
	}

	var visited []string
	ForEach(m, func(r *rock) {
		visited = append(visited, r.name)
		r.updates += 10 // mutation during iteration is allowed
	})

	assert.Equal(t, []string{"a", "b", "c"}, visited)
	for _, r := range All[*rock](m) {
		assert.Equal(t, 10, r.updates)
	}
}

func TestNestedForEach(t *testing.T) {
	m := NewManager()
	Create(m, &bird{name: "b1"})
	Create(m, &rock{name: "r1"})
	Create(m, &rock{name: "r2"})
	Create(m, &bird{name: "b2"})

	var pairs []string
	ForEach(m, func(b *bird) {
		ForEach(m, func(r *rock) {
			pairs = append(pairs, b.name+"/"+r.name)
		})
	})

	assert.Equal(t, []string{"b1/r1", "b1/r2", "b2/r1", "b2/r2"}, pairs)
}

func TestUpdateAndDrawFollowInsertionOrder(t *testing.T) {
	var log []string
	m := NewManager()
	Create(m, &rock{name: "r1", log: &log})
	Create(m, &bird{name: "b1", log: &log})
	Create(m, &rock{name: "r2", log: &log})

	m.Update()
	m.Draw(nil)

	assert.Equal(t, []string{
		"update:r1", "update:b1", "update:r2",
		"draw:r1", "draw:r2",
	}, log)
}

func TestRefreshRemovesOnlyDestroyed(t *testing.T) {
	m := NewManager()
	r1 := Create(m, &rock{name: "r1"})
	b1 := Create(m, &bird{name: "b1"})
	r2 := Create(m, &rock{name: "r2"})
	r3 := Create(m, &rock{name: "r3"})
	b2 := Create(m, &bird{name: "b2"})

	r2.Destroy()
	b1.Destroy()

	// Destroyed entities stay visible until Refresh
	assert.Equal(t, 5, m.Len())
	assert.Equal(t, 3, CountOf[*rock](m))

	m.Refresh()

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, []string{"r1", "r3"}, names(All[*rock](m)))
	assert.Equal(t, []string{"b2"}, names(All[*bird](m)))

	var arena []Entity
	arena = append(arena, m.Entities()...)
	assert.Equal(t, []Entity{r1, r3, b2}, arena)
}

func TestRefreshKeepsGroupsConsistentWithArena(t *testing.T) {
	m := NewManager()
	var rocks []*rock
	for i := 0; i < 20; i++ {
		rocks = append(rocks, Create(m, &rock{name: string(rune('a' + i))}))
		Create(m, &bird{name: "bird"})
	}
	for i, r := range rocks {
		if i%3 == 0 {
			r.Destroy()
		}
	}

	m.Refresh()

	inArena := make(map[Entity]bool)
	for _, e := range m.Entities() {
		require.False(t, e.Destroyed())
		inArena[e] = true
	}
	total := 0
	for _, k := range []Kind{kindRock, kindBird} {
		for _, e := range m.Group(k) {
			assert.True(t, inArena[e], "group entity missing from arena")
			assert.Equal(t, k, e.Kind())
			total++
		}
	}
	assert.Equal(t, m.Len(), total)
}

func TestClear(t *testing.T) {
	m := NewManager()
	Create(m, &rock{name: "r1"})
	Create(m, &bird{name: "b1"})

	m.Clear()

	assert.Zero(t, m.Len())
	assert.Empty(t, All[*rock](m))
	assert.Empty(t, All[*bird](m))

	Create(m, &bird{name: "b2"})
	assert.Equal(t, []string{"b2"}, names(All[*bird](m)))
}
