package services

import "github.com/yukikurage/project-board/internal/models"

// Chain is one left-to-right row of the sub-task diagram.
type Chain []models.SubTask

// BuildChains groups a task's sub-tasks into display chains.
//
// Every sub-task without a predecessor starts a chain, in input order. A
// chain then follows successor links from its root: all unvisited successors
// of the cursor are appended and the cursor moves to the last of them, so when
// a sub-task has several successors only the last one is followed further.
// A sub-task is placed in at most one chain.
//
// Sub-tasks whose predecessor is not in the input are neither roots nor
// reachable, so they are left out of the result.
func BuildChains(subTasks []models.SubTask) []Chain {
	byID := make(map[uint64]models.SubTask, len(subTasks))
	successors := make(map[uint64][]uint64)
	var roots []uint64

	for _, st := range subTasks {
		byID[st.ID] = st
		if st.HasPredecessor() {
			successors[*st.PreSubTaskID] = append(successors[*st.PreSubTaskID], st.ID)
		} else {
			roots = append(roots, st.ID)
		}
	}

	chains := make([]Chain, 0, len(roots))
	visited := make(map[uint64]bool, len(subTasks))

	for _, rootID := range roots {
		chain := Chain{byID[rootID]}
		current := rootID

		for {
			next, ok := successors[current]
			if !ok {
				break
			}

			advanced := false
			for _, id := range next {
				if visited[id] {
					continue
				}
				visited[id] = true
				chain = append(chain, byID[id])
				current = id
				advanced = true
			}
			if !advanced {
				break
			}
		}

		chains = append(chains, chain)
	}

	return chains
}

// IDs returns the chain's sub-task ids in order.
func (c Chain) IDs() []uint64 {
	ids := make([]uint64, len(c))
	for i, st := range c {
		ids[i] = st.ID
	}
	return ids
}
