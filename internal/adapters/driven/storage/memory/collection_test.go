package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustcircle/trustcircle-cli/internal/core/domain"
)

func seeded() *Collection {
	c := NewCollection()
	c.ReplaceAll([]domain.Provider{
		{ID: "p1", BusinessName: "Acme Cleaning", NumLikes: 3, CurrentUserLiked: true, Tags: []string{"punctual"}},
		{ID: "p2", BusinessName: "Shiny Homes"},
	})
	return c
}

func TestNewCollection_Empty(t *testing.T) {
	c := NewCollection()

	assert.Empty(t, c.All())
	_, err := c.Get("p1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReplaceAll_RebuildsLikedSet(t *testing.T) {
	c := seeded()

	assert.True(t, c.Liked("p1"))
	assert.False(t, c.Liked("p2"))

	c.ReplaceAll([]domain.Provider{{ID: "p3"}})

	assert.False(t, c.Liked("p1"), "liked-set rebuilds from the new collection")
	assert.Len(t, c.All(), 1)
}

func TestAll_PreservesLoadOrderAndCopies(t *testing.T) {
	c := seeded()

	all := c.All()
	require.Len(t, all, 2)
	assert.Equal(t, "p1", all[0].ID)
	assert.Equal(t, "p2", all[1].ID)

	all[0].BusinessName = "Mutated"
	all[0].Tags[0] = "mutated"

	fresh, err := c.Get("p1")
	require.NoError(t, err)
	assert.Equal(t, "Acme Cleaning", fresh.BusinessName)
	assert.Equal(t, "punctual", fresh.Tags[0])
}

func TestGet_ReturnsCopy(t *testing.T) {
	c := seeded()

	p, err := c.Get("p1")
	require.NoError(t, err)
	p.NumLikes = 99

	again, _ := c.Get("p1")
	assert.Equal(t, 3, again.NumLikes)
}

func TestPut_ReplacesInPlace(t *testing.T) {
	c := seeded()

	p, _ := c.Get("p1")
	p.NumLikes = 4
	p.CurrentUserLiked = true
	c.Put(*p)

	got, _ := c.Get("p1")
	assert.Equal(t, 4, got.NumLikes)

	all := c.All()
	assert.Equal(t, "p1", all[0].ID, "position is stable")
}

func TestPut_UnknownIDIgnored(t *testing.T) {
	c := seeded()

	c.Put(domain.Provider{ID: "p9", BusinessName: "Ghost"})

	assert.Len(t, c.All(), 2)
	_, err := c.Get("p9")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSetLiked(t *testing.T) {
	c := seeded()

	c.SetLiked("p2", true)
	assert.True(t, c.Liked("p2"))

	c.SetLiked("p2", false)
	assert.False(t, c.Liked("p2"))
}

func TestSnapshotRestore_RoundTrip(t *testing.T) {
	c := seeded()
	providers, liked := c.Snapshot()

	// Mutate heavily after the snapshot.
	p, _ := c.Get("p1")
	p.NumLikes = 99
	c.Put(*p)
	c.SetLiked("p1", false)
	c.SetLiked("p2", true)

	c.Restore(providers, liked)

	got, err := c.Get("p1")
	require.NoError(t, err)
	assert.Equal(t, 3, got.NumLikes)
	assert.True(t, c.Liked("p1"))
	assert.False(t, c.Liked("p2"))
}

func TestSnapshot_IsDeepCopy(t *testing.T) {
	c := seeded()
	providers, liked := c.Snapshot()

	providers[0].Tags[0] = "mutated"
	liked["p2"] = true

	got, _ := c.Get("p1")
	assert.Equal(t, "punctual", got.Tags[0])
	assert.False(t, c.Liked("p2"))
}

func TestCollection_ConcurrentAccess(t *testing.T) {
	c := seeded()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			switch i % 4 {
			case 0:
				_ = c.All()
			case 1:
				_, _ = c.Get("p1")
			case 2:
				c.SetLiked("p1", i%2 == 0)
			case 3:
				p, err := c.Get("p2")
				if err == nil {
					c.Put(*p)
				}
			}
		}(i)
	}
	wg.Wait()

	assert.Len(t, c.All(), 2)
}
