// Package crucible_test contains unit tests for the constrained search.
// They cover the reference scenarios, validation errors, the goal run check,
// witness-path constraints and the ordering guarantees of the frontier.
package crucible_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/crucible"
	"github.com/katalvlaran/crucible/gridgraph"
)

const cityMap = `2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533`

const corridorMap = `111111111111
999999999991
999999999991
999999999991
999999999991`

func mustGrid(t testing.TB, text string) *gridgraph.GridGraph {
	t.Helper()
	gg, err := gridgraph.ParseDigits(strings.NewReader(text))
	require.NoError(t, err)

	return gg
}

var models = []crucible.Model{crucible.ModelCompressed, crucible.ModelPerCell}

// ------------------------------------------------------------------------
// 1. Reference scenarios
// ------------------------------------------------------------------------

func TestSearch_ReferenceScenarios(t *testing.T) {
	cases := []struct {
		name string
		grid string
		mode crucible.Mode
		want int64
	}{
		{"CityBasic", cityMap, crucible.Basic, 102},
		{"CityUltra", cityMap, crucible.Ultra, 94},
		{"CorridorUltra", corridorMap, crucible.Ultra, 71},
	}
	for _, tc := range cases {
		for _, model := range models {
			t.Run(tc.name+"/"+model.String(), func(t *testing.T) {
				gg := mustGrid(t, tc.grid)
				res, err := crucible.Search(gg,
					crucible.WithMode(tc.mode),
					crucible.WithTransitionModel(model),
				)
				require.NoError(t, err)
				assert.Equal(t, tc.want, res.Cost)
			})
		}
	}
}

func TestShortestConstrainedPath(t *testing.T) {
	gg := mustGrid(t, cityMap)

	basic, err := crucible.ShortestConstrainedPath(gg, crucible.Basic)
	require.NoError(t, err)
	assert.Equal(t, int64(102), basic)

	ultra, err := crucible.ShortestConstrainedPath(gg, crucible.Ultra)
	require.NoError(t, err)
	assert.Equal(t, int64(94), ultra)
}

func TestSearch_SingleCell(t *testing.T) {
	gg := mustGrid(t, "7")
	for _, mode := range crucible.Modes() {
		res, err := crucible.Search(gg, crucible.WithMode(mode), crucible.WithReturnPath())
		require.NoError(t, err)
		assert.Equal(t, int64(0), res.Cost)
		assert.Equal(t, 1, res.Popped)
		assert.Zero(t, res.Settled, "no transition may be expanded")
		assert.Zero(t, res.Pushed)
		assert.Equal(t, []gridgraph.Position{{}}, res.Path)
	}
}

// ------------------------------------------------------------------------
// 2. Validation and failure modes
// ------------------------------------------------------------------------

func TestSearch_NilGrid(t *testing.T) {
	res, err := crucible.Search(nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, crucible.ErrNilGrid)
}

func TestSearch_InvalidModeHasPriority(t *testing.T) {
	_, err := crucible.Search(nil, crucible.WithMode(crucible.Mode{MinRun: 3, MaxRun: 2}))
	assert.ErrorIs(t, err, crucible.ErrOptionViolation)
	assert.ErrorIs(t, err, crucible.ErrInvalidMode)
}

func TestSearch_InvalidOptions(t *testing.T) {
	gg := mustGrid(t, "11\n11")
	cases := []struct {
		name string
		opt  crucible.Option
	}{
		{"ZeroMinRun", crucible.WithMode(crucible.Mode{MinRun: 0, MaxRun: 3})},
		{"MaxBelowMin", crucible.WithMode(crucible.Mode{MinRun: 4, MaxRun: 3})},
		{"UnknownModel", crucible.WithTransitionModel(crucible.Model(42))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := crucible.Search(gg, tc.opt)
			assert.ErrorIs(t, err, crucible.ErrOptionViolation)
		})
	}
}

func TestShortestConstrainedPath_InvalidMode(t *testing.T) {
	gg := mustGrid(t, "11\n11")
	_, err := crucible.ShortestConstrainedPath(gg, crucible.Mode{Name: "broken", MinRun: -1, MaxRun: 1})
	assert.ErrorIs(t, err, crucible.ErrInvalidMode)
}

func TestSearch_NoPath(t *testing.T) {
	cases := []struct {
		name string
		grid string
		mode crucible.Mode
	}{
		// a single row longer than MaxRun can never be crossed: no turn fits
		{"BasicRowTooLong", "11111", crucible.Basic},
		// ultra cannot even make its first run in a 1×3 strip
		{"UltraNarrowStrip", "111", crucible.Ultra},
	}
	for _, tc := range cases {
		for _, model := range models {
			t.Run(tc.name+"/"+model.String(), func(t *testing.T) {
				gg := mustGrid(t, tc.grid)
				res, err := crucible.Search(gg, crucible.WithMode(tc.mode), crucible.WithTransitionModel(model))
				assert.Nil(t, res)
				assert.True(t, errors.Is(err, crucible.ErrNoPath), "got %v", err)
			})
		}
	}
}

// ------------------------------------------------------------------------
// 3. Goal run-length check
// ------------------------------------------------------------------------

func TestSearch_GoalRunCheck(t *testing.T) {
	gg := mustGrid(t, "12")

	// two cells: the goal is one step away, which is short of Ultra's MinRun.
	_, err := crucible.Search(gg, crucible.WithMode(crucible.Ultra), crucible.WithTransitionModel(crucible.ModelPerCell))
	assert.ErrorIs(t, err, crucible.ErrNoPath)

	res, err := crucible.Search(gg,
		crucible.WithMode(crucible.Ultra),
		crucible.WithTransitionModel(crucible.ModelPerCell),
		crucible.WithGoalRunCheck(false),
	)
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Cost)

	// the compressed model never stands on a short run, so the check is moot.
	_, err = crucible.Search(gg,
		crucible.WithMode(crucible.Ultra),
		crucible.WithGoalRunCheck(false),
	)
	assert.ErrorIs(t, err, crucible.ErrNoPath)
}

func TestSearch_GoalRunCheckOffNeverWorse(t *testing.T) {
	for _, text := range []string{cityMap, corridorMap} {
		gg := mustGrid(t, text)
		strict, err := crucible.Search(gg, crucible.WithMode(crucible.Ultra), crucible.WithTransitionModel(crucible.ModelPerCell))
		require.NoError(t, err)
		loose, err := crucible.Search(gg,
			crucible.WithMode(crucible.Ultra),
			crucible.WithTransitionModel(crucible.ModelPerCell),
			crucible.WithGoalRunCheck(false),
		)
		require.NoError(t, err)
		assert.LessOrEqual(t, loose.Cost, strict.Cost)
	}
}

// ------------------------------------------------------------------------
// 4. Witness paths
// ------------------------------------------------------------------------

// stepDirection maps a unit step to its heading.
func stepDirection(t *testing.T, from, to gridgraph.Position) crucible.Direction {
	t.Helper()
	for _, d := range crucible.Directions() {
		dr, dc := d.Delta()
		if from.Add(dr, dc) == to {
			return d
		}
	}
	t.Fatalf("cells %s and %s are not adjacent", from, to)

	return crucible.None
}

// runs splits a path into straight segments.
func runs(t *testing.T, path []gridgraph.Position) (dirs []crucible.Direction, lengths []int) {
	t.Helper()
	for i := 1; i < len(path); i++ {
		d := stepDirection(t, path[i-1], path[i])
		if len(dirs) > 0 && dirs[len(dirs)-1] == d {
			lengths[len(lengths)-1]++
			continue
		}
		dirs = append(dirs, d)
		lengths = append(lengths, 1)
	}

	return dirs, lengths
}

func TestSearch_WitnessObeysMode(t *testing.T) {
	for _, mode := range crucible.Modes() {
		for _, model := range models {
			t.Run(mode.Name+"/"+model.String(), func(t *testing.T) {
				gg := mustGrid(t, cityMap)
				res, err := crucible.Search(gg,
					crucible.WithMode(mode),
					crucible.WithTransitionModel(model),
					crucible.WithReturnPath(),
				)
				require.NoError(t, err)
				require.NotEmpty(t, res.Path)
				assert.Equal(t, gg.Start(), res.Path[0])
				assert.Equal(t, gg.Goal(), res.Path[len(res.Path)-1])

				var sum int64
				for _, p := range res.Path[1:] {
					w, err := gg.Weight(p)
					require.NoError(t, err)
					sum += int64(w)
				}
				assert.Equal(t, res.Cost, sum, "path weights must add up to the cost")

				dirs, lengths := runs(t, res.Path)
				for i := range dirs {
					assert.GreaterOrEqual(t, lengths[i], mode.MinRun, "run %d", i)
					assert.LessOrEqual(t, lengths[i], mode.MaxRun, "run %d", i)
					if i > 0 {
						assert.NotEqual(t, dirs[i-1].Opposite(), dirs[i], "reversal at run %d", i)
					}
				}
			})
		}
	}
}

func TestSearch_CorridorWitness(t *testing.T) {
	gg := mustGrid(t, corridorMap)
	res, err := crucible.Search(gg, crucible.WithMode(crucible.Ultra), crucible.WithReturnPath())
	require.NoError(t, err)

	want := []crucible.State{
		{Pos: gridgraph.Position{Row: 0, Col: 0}, Dir: crucible.None, Run: 0},
		{Pos: gridgraph.Position{Row: 0, Col: 4}, Dir: crucible.East, Run: 4},
		{Pos: gridgraph.Position{Row: 0, Col: 5}, Dir: crucible.East, Run: 5},
		{Pos: gridgraph.Position{Row: 0, Col: 6}, Dir: crucible.East, Run: 6},
		{Pos: gridgraph.Position{Row: 0, Col: 7}, Dir: crucible.East, Run: 7},
		{Pos: gridgraph.Position{Row: 4, Col: 7}, Dir: crucible.South, Run: 4},
		{Pos: gridgraph.Position{Row: 4, Col: 11}, Dir: crucible.East, Run: 4},
	}
	if diff := cmp.Diff(want, res.States); diff != "" {
		t.Errorf("States mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, res.Path, 16)
}

// ------------------------------------------------------------------------
// 5. Ordering and determinism
// ------------------------------------------------------------------------

func TestSearch_PopOrderNonDecreasing(t *testing.T) {
	gg := mustGrid(t, cityMap)
	for _, mode := range crucible.Modes() {
		var costs []int64
		_, err := crucible.Search(gg,
			crucible.WithMode(mode),
			crucible.WithOnPop(func(_ crucible.State, cost int64) {
				costs = append(costs, cost)
			}),
		)
		require.NoError(t, err)
		require.NotEmpty(t, costs)
		assert.Equal(t, int64(0), costs[0])
		for i := 1; i < len(costs); i++ {
			if costs[i] < costs[i-1] {
				t.Fatalf("%s: pop %d cost %d after %d", mode, i, costs[i], costs[i-1])
			}
		}
	}
}

func TestSearch_SettledStatesRespectRunBounds(t *testing.T) {
	gg := mustGrid(t, cityMap)
	settled := 0
	res, err := crucible.Search(gg,
		crucible.WithMode(crucible.Ultra),
		crucible.WithOnSettle(func(s crucible.State, _ int64) {
			settled++
			if s.IsStart() {
				return
			}
			assert.GreaterOrEqual(t, s.Run, crucible.Ultra.MinRun)
			assert.LessOrEqual(t, s.Run, crucible.Ultra.MaxRun)
			assert.True(t, gg.InBounds(s.Pos))
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, res.Settled, settled)
	assert.LessOrEqual(t, res.Settled, res.Popped)
}

func TestSearch_Deterministic(t *testing.T) {
	gg := mustGrid(t, cityMap)
	first, err := crucible.Search(gg, crucible.WithMode(crucible.Ultra), crucible.WithReturnPath())
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := crucible.Search(gg, crucible.WithMode(crucible.Ultra), crucible.WithReturnPath())
		require.NoError(t, err)
		assert.Equal(t, first.Cost, again.Cost)
		if diff := cmp.Diff(first.Path, again.Path); diff != "" {
			t.Fatalf("run %d path differs (-first +again):\n%s", i, diff)
		}
	}
}

func TestSearch_ConcurrentCallsShareGrid(t *testing.T) {
	gg := mustGrid(t, cityMap)
	want := map[string]int64{"basic": 102, "ultra": 94}

	type outcome struct {
		name string
		cost int64
		err  error
	}
	out := make(chan outcome, 8)
	for i := 0; i < 4; i++ {
		for _, mode := range crucible.Modes() {
			go func(m crucible.Mode) {
				c, err := crucible.ShortestConstrainedPath(gg, m)
				out <- outcome{m.Name, c, err}
			}(mode)
		}
	}
	for i := 0; i < 8; i++ {
		o := <-out
		require.NoError(t, o.err)
		assert.Equal(t, want[o.name], o.cost, o.name)
	}
}

// ------------------------------------------------------------------------
// 6. Modes and models
// ------------------------------------------------------------------------

func TestModeByName(t *testing.T) {
	m, err := crucible.ModeByName("ULTRA")
	require.NoError(t, err)
	assert.Equal(t, crucible.Ultra, m)

	_, err = crucible.ModeByName("turbo")
	assert.ErrorIs(t, err, crucible.ErrUnknownMode)
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "basic(1..3)", crucible.Basic.String())
	assert.Equal(t, "custom(2..5)", crucible.Mode{MinRun: 2, MaxRun: 5}.String())
}

func TestParseModel(t *testing.T) {
	m, err := crucible.ParseModel("per-cell")
	require.NoError(t, err)
	assert.Equal(t, crucible.ModelPerCell, m)

	m, err = crucible.ParseModel("Compressed")
	require.NoError(t, err)
	assert.Equal(t, crucible.ModelCompressed, m)

	_, err = crucible.ParseModel("jumpy")
	assert.ErrorIs(t, err, crucible.ErrOptionViolation)
}

func TestSearch_CustomMode(t *testing.T) {
	// MinRun == MaxRun == 1 forces a zigzag: every step must turn.
	gg := mustGrid(t, "123\n456\n789")
	zigzag := crucible.Mode{Name: "zigzag", MinRun: 1, MaxRun: 1}
	res, err := crucible.Search(gg, crucible.WithMode(zigzag), crucible.WithReturnPath())
	require.NoError(t, err)
	// E,S,E,S = 2+5+6+9 or S,E,S,E = 4+5+8+9
	assert.Equal(t, int64(22), res.Cost)
	_, lengths := runs(t, res.Path)
	for _, l := range lengths {
		assert.Equal(t, 1, l)
	}
}
