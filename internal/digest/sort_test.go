package digest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linear-updates/internal/domain"
)

func projUpdate(name string, priority int) domain.Update {
	return domain.Update{Project: domain.Project{ID: name, Name: name, Priority: priority}}
}

func TestPriorityScore(t *testing.T) {
	cases := []struct {
		priority int
		want     int
	}{
		{1, 100},
		{2, 75},
		{3, 50},
		{4, 25},
		{0, 10},
		{5, 10},
		{-1, 10},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, PriorityScore(domain.Project{Priority: c.priority}),
			"priority %d", c.priority)
	}
}

func TestSortByPriority(t *testing.T) {
	t.Run("score descending, name ascending", func(t *testing.T) {
		in := []domain.Update{
			projUpdate("zeta", 0),
			projUpdate("beta", 1),
			projUpdate("alpha", 3),
			projUpdate("gamma", 1),
		}

		SortByPriority(in)

		names := make([]string, len(in))
		for i, u := range in {
			names[i] = u.Project.Name
		}
		assert.Equal(t, []string{"beta", "gamma", "alpha", "zeta"}, names)
	})

	t.Run("urgent outranks every other priority", func(t *testing.T) {
		in := []domain.Update{
			projUpdate("low", 4),
			projUpdate("none", 0),
			projUpdate("medium", 3),
			projUpdate("urgent", 1),
			projUpdate("high", 2),
		}

		SortByPriority(in)

		assert.Equal(t, "urgent", in[0].Project.Name)
	})

	t.Run("name comparison is case-insensitive", func(t *testing.T) {
		in := []domain.Update{
			projUpdate("banana", 2),
			projUpdate("Apple", 2),
			projUpdate("cherry", 2),
		}

		SortByPriority(in)

		assert.Equal(t, "Apple", in[0].Project.Name)
		assert.Equal(t, "banana", in[1].Project.Name)
	})

	t.Run("missing name sorts before any name", func(t *testing.T) {
		in := []domain.Update{
			projUpdate("alpha", 2),
			{Project: domain.Project{ID: "anon", Priority: 2}},
		}

		SortByPriority(in)

		assert.Equal(t, "anon", in[0].Project.ID)
	})

	t.Run("stable for equal score and name", func(t *testing.T) {
		a := domain.Update{ID: "a", Project: domain.Project{ID: "p1", Name: "Same", Priority: 2}}
		b := domain.Update{ID: "b", Project: domain.Project{ID: "p2", Name: "same", Priority: 2}}

		in := []domain.Update{a, b}
		SortByPriority(in)

		require.Len(t, in, 2)
		assert.Equal(t, "a", in[0].ID)
		assert.Equal(t, "b", in[1].ID)
	})

	t.Run("output is totally ordered", func(t *testing.T) {
		in := []domain.Update{
			projUpdate("d", 4),
			projUpdate("c", 0),
			projUpdate("b", 2),
			projUpdate("a", 2),
			projUpdate("e", 1),
		}

		SortByPriority(in)

		for i := 1; i < len(in); i++ {
			prev, cur := in[i-1], in[i]
			require.GreaterOrEqual(t, PriorityScore(prev.Project), PriorityScore(cur.Project))
			if PriorityScore(prev.Project) == PriorityScore(cur.Project) {
				require.LessOrEqual(t, prev.Project.Name, cur.Project.Name)
			}
		}
	})
}
