package services

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-board/internal/models"
)

func st(id uint64, pre uint64) models.SubTask {
	s := models.SubTask{ID: id}
	if pre != 0 {
		s.PreSubTaskID = &pre
	}
	return s
}

func chainIDs(chains []Chain) [][]uint64 {
	out := make([][]uint64, len(chains))
	for i, c := range chains {
		out[i] = c.IDs()
	}
	return out
}

func TestBuildChains(t *testing.T) {
	tests := []struct {
		name  string
		input []models.SubTask
		want  [][]uint64
	}{
		{
			name:  "empty input",
			input: nil,
			want:  [][]uint64{},
		},
		{
			name:  "single linear chain",
			input: []models.SubTask{st(1, 0), st(2, 1), st(3, 2)},
			want:  [][]uint64{{1, 2, 3}},
		},
		{
			name:  "independent roots keep input order",
			input: []models.SubTask{st(7, 0), st(4, 0)},
			want:  [][]uint64{{7}, {4}},
		},
		{
			name:  "links define adjacency regardless of row order",
			input: []models.SubTask{st(3, 2), st(2, 1), st(1, 0)},
			want:  [][]uint64{{1, 2, 3}},
		},
		{
			name:  "two chains interleaved",
			input: []models.SubTask{st(1, 0), st(10, 0), st(2, 1), st(11, 10), st(3, 2)},
			want:  [][]uint64{{1, 2, 3}, {10, 11}},
		},
		{
			name:  "siblings are all appended but only the last is followed",
			input: []models.SubTask{st(1, 0), st(2, 1), st(3, 1), st(4, 2), st(5, 3)},
			want:  [][]uint64{{1, 2, 3, 5}},
		},
		{
			name:  "dangling predecessor is dropped",
			input: []models.SubTask{st(1, 0), st(9, 404)},
			want:  [][]uint64{{1}},
		},
		{
			name:  "zero predecessor id counts as none",
			input: []models.SubTask{{ID: 1, PreSubTaskID: new(uint64)}},
			want:  [][]uint64{{1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildChains(tt.input)
			assert.Equal(t, tt.want, chainIDs(got))
		})
	}
}

func TestBuildChains_KeepsRecords(t *testing.T) {
	name := "Design"
	input := []models.SubTask{
		{ID: 1, Name: "Design", MinDays: 3},
		{ID: 2, Name: "Build", PreSubTaskID: func() *uint64 { v := uint64(1); return &v }(), PreTaskName: &name},
	}

	chains := BuildChains(input)
	require.Len(t, chains, 1)
	require.Len(t, chains[0], 2)
	assert.Equal(t, 3, chains[0][0].MinDays)
	assert.Equal(t, "Build", chains[0][1].Name)
	assert.Equal(t, "Design", *chains[0][1].PreTaskName)
}

func TestBuildChains_StopsWhenNothingNewIsReachable(t *testing.T) {
	// Inconsistent rows reusing an id make the cursor land on a sub-task whose
	// only successor is already placed.
	input := []models.SubTask{st(1, 0), st(2, 1), st(1, 2)}

	chains := BuildChains(input)

	require.Len(t, chains, 1)
	assert.Equal(t, []uint64{1, 2, 1}, chains[0].IDs())
}

// Forests where no sub-task has more than one successor are partitioned
// exactly: every id lands in exactly one chain.
func TestBuildChains_PartitionsSingleSuccessorForests(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))

	for round := 0; round < 200; round++ {
		n := rng.IntN(30)
		var input []models.SubTask
		hasSuccessor := map[uint64]bool{}

		for id := uint64(1); id <= uint64(n); id++ {
			var candidates []uint64
			for prev := uint64(1); prev < id; prev++ {
				if !hasSuccessor[prev] {
					candidates = append(candidates, prev)
				}
			}
			if len(candidates) == 0 || rng.IntN(3) == 0 {
				input = append(input, st(id, 0))
				continue
			}
			pre := candidates[rng.IntN(len(candidates))]
			hasSuccessor[pre] = true
			input = append(input, st(id, pre))
		}
		rng.Shuffle(len(input), func(i, j int) { input[i], input[j] = input[j], input[i] })

		seen := map[uint64]int{}
		for _, chain := range BuildChains(input) {
			require.False(t, chain[0].HasPredecessor(), "chain must start at a root")
			for _, s := range chain {
				seen[s.ID]++
			}
		}

		require.Len(t, seen, n, "round %d", round)
		for id, count := range seen {
			require.Equal(t, 1, count, "round %d id %d", round, id)
		}
	}
}
