package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type rec struct {
	ID  string
	Val int
}

func keyOf(r rec) string { return r.ID }

func TestMergeDurableWins(t *testing.T) {
	durable := []rec{{ID: "A", Val: 1}}
	demo := []rec{{ID: "A", Val: 2}, {ID: "B", Val: 3}}

	got := Merge(durable, demo, keyOf)

	assert.Equal(t, []rec{{ID: "A", Val: 1}, {ID: "B", Val: 3}}, got)
}

func TestMergeNoDuplicateKeys(t *testing.T) {
	durable := []rec{{ID: "A", Val: 1}, {ID: "B", Val: 2}}
	demo := []rec{{ID: "B", Val: 9}, {ID: "C", Val: 3}, {ID: "A", Val: 9}}

	got := Merge(durable, demo, keyOf)

	seen := map[string]int{}
	for _, r := range got {
		seen[r.ID]++
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "key %s appears %d times", id, n)
	}
	// Every key from either input survives.
	assert.Len(t, got, 3)
}

func TestMergePreservesOrder(t *testing.T) {
	durable := []rec{{ID: "X", Val: 1}, {ID: "Y", Val: 2}}
	demo := []rec{{ID: "P", Val: 3}, {ID: "Q", Val: 4}}

	got := Merge(durable, demo, keyOf)

	assert.Equal(t, []string{"X", "Y", "P", "Q"}, []string{got[0].ID, got[1].ID, got[2].ID, got[3].ID})
}

func TestMergeEmptyInputs(t *testing.T) {
	assert.Empty(t, Merge(nil, nil, keyOf))
	assert.Equal(t, []rec{{ID: "A"}}, Merge([]rec{{ID: "A"}}, nil, keyOf))
	assert.Equal(t, []rec{{ID: "B"}}, Merge(nil, []rec{{ID: "B"}}, keyOf))
}
