package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func boardWithColumns(n int) *Board {
	board := &Board{CreatedBy: uuid.New(), Columns: []Column{}}
	for i := 0; i < n; i++ {
		board.Columns = append(board.Columns, Column{
			ID:    uuid.New(),
			Title: "col",
			Order: i + 1,
			Tasks: []Task{},
		})
	}
	return board
}

// For any valid (from, to) pair, reordering must keep the same column set and
// leave orders dense 1..N in list position.
func TestProperty_ReorderColumnsKeepsSetAndDensity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("reorder preserves the column set and densifies orders", prop.ForAll(
		func(n, from, to int) bool {
			board := boardWithColumns(n)
			from = from % n
			to = to % n

			before := make(map[uuid.UUID]bool, n)
			for _, c := range board.Columns {
				before[c.ID] = true
			}

			if err := board.ReorderColumns(from, to); err != nil {
				t.Logf("unexpected error for n=%d from=%d to=%d: %v", n, from, to, err)
				return false
			}

			if len(board.Columns) != n {
				return false
			}
			for i, c := range board.Columns {
				if !before[c.ID] {
					return false
				}
				if c.Order != i+1 {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 20),
		gen.IntRange(0, 1000),
		gen.IntRange(0, 1000),
	))

	properties.TestingRun(t)
}

// Moving a task between columns never changes the board's total task count
// and never duplicates the task.
func TestProperty_MoveTaskPreservesTotalCount(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("move preserves total task count and uniqueness", prop.ForAll(
		func(srcTasks, dstTasks, pick int) bool {
			board := boardWithColumns(2)
			src := &board.Columns[0]
			dst := &board.Columns[1]
			for i := 0; i < srcTasks; i++ {
				src.Tasks = append(src.Tasks, Task{ID: uuid.New(), Title: "t", Comments: []Comment{}})
			}
			for i := 0; i < dstTasks; i++ {
				dst.Tasks = append(dst.Tasks, Task{ID: uuid.New(), Title: "t", Comments: []Comment{}})
			}

			taskID := src.Tasks[pick%srcTasks].ID
			total := board.TaskCount()

			if _, err := board.MoveTask(src.ID, dst.ID, taskID); err != nil {
				t.Logf("unexpected error: %v", err)
				return false
			}

			if board.TaskCount() != total {
				return false
			}
			seen := map[uuid.UUID]int{}
			for _, c := range board.Columns {
				for _, task := range c.Tasks {
					seen[task.ID]++
				}
			}
			for _, n := range seen {
				if n != 1 {
					return false
				}
			}
			// the task must now live in the destination, at the end
			dstList := board.Columns[1].Tasks
			return dstList[len(dstList)-1].ID == taskID
		},
		gen.IntRange(1, 15),
		gen.IntRange(0, 15),
		gen.IntRange(0, 1000),
	))

	properties.TestingRun(t)
}

// Reordering within a column is a permutation: same multiset of tasks before
// and after, for any valid index pair.
func TestProperty_ReorderTasksIsPermutation(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("reorder within a column is a permutation", prop.ForAll(
		func(n, from, to int) bool {
			board := boardWithColumns(1)
			col := &board.Columns[0]
			for i := 0; i < n; i++ {
				col.Tasks = append(col.Tasks, Task{ID: uuid.New(), Title: "t", Comments: []Comment{}})
			}
			from = from % n
			to = to % n

			before := make(map[uuid.UUID]bool, n)
			for _, task := range col.Tasks {
				before[task.ID] = true
			}
			moved := col.Tasks[from].ID

			if err := board.ReorderTasks(col.ID, from, to); err != nil {
				t.Logf("unexpected error: %v", err)
				return false
			}

			after := board.Columns[0].Tasks
			if len(after) != n {
				return false
			}
			for _, task := range after {
				if !before[task.ID] {
					return false
				}
			}
			return after[to].ID == moved
		},
		gen.IntRange(1, 20),
		gen.IntRange(0, 1000),
		gen.IntRange(0, 1000),
	))

	properties.TestingRun(t)
}
