package policy

import (
	"errors"
	"testing"

	"github.com/samuelfneumann/smartcab/valuetable"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

type light struct {
	green bool
	phase int
}

func (l light) Validate() error {
	if l.phase < 0 {
		return errors.New("negative phase")
	}
	return nil
}

func newTable(t *testing.T, initial float64,
	actions ...string) *valuetable.Table[light, string] {
	t.Helper()
	set, err := valuetable.NewActions(actions...)
	if err != nil {
		t.Fatalf("could not create actions: %v", err)
	}
	table, err := valuetable.New[light](set, initial)
	if err != nil {
		t.Fatalf("could not create table: %v", err)
	}
	return table
}

func TestSelectActionUnvisitedState(t *testing.T) {
	table := newTable(t, 1000, "none", "forward")
	p := NewGreedy(table)

	for _, s := range []light{{true, 0}, {false, 3}, {true, 9}} {
		a, err := p.SelectAction(s)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a != "none" {
			t.Errorf("selectAction(%v): want first action \"none\", have %q",
				s, a)
		}
	}
	if table.Len() != 3 {
		t.Errorf("selectAction should add unseen states: len = %d",
			table.Len())
	}
}

func TestSelectActionTieBreak(t *testing.T) {
	table := newTable(t, 0, "a", "b", "c", "d")
	p := NewGreedy(table)
	s := light{}

	row, _ := table.RowFor(s)
	row.Set("b", 3)
	row.Set("d", 3)

	if a, _ := p.SelectAction(s); a != "b" {
		t.Errorf("selectAction: want earliest maximal action \"b\", have %q",
			a)
	}

	row.Set("d", 4)
	if a, _ := p.SelectAction(s); a != "d" {
		t.Errorf("selectAction: want maximal action \"d\", have %q", a)
	}

	v, err := p.Value(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 4 {
		t.Errorf("value: want 4, have %v", v)
	}
}

func TestSelectActionIdempotent(t *testing.T) {
	seed := uint64(12345)
	src := rand.NewSource(seed)
	rng := distuv.Uniform{Min: -10.0, Max: 10.0, Src: src}

	table := newTable(t, 0, "a", "b", "c")
	p := NewGreedy(table)

	for phase := 0; phase < 50; phase++ {
		s := light{phase%2 == 0, phase}
		row, _ := table.RowFor(s)
		for i := 0; i < row.Len(); i++ {
			row.SetAt(i, rng.Rand())
		}
		before, _ := table.Lookup(s)

		first, _ := p.SelectAction(s)
		for i := 0; i < 5; i++ {
			a, _ := p.SelectAction(s)
			if a != first {
				t.Fatalf("selectAction(%v): changed from %q to %q", s, first,
					a)
			}
		}
		if !table.Actions().Contains(first) {
			t.Fatalf("selectAction(%v): %q is not a configured action", s,
				first)
		}

		after, _ := table.Lookup(s)
		if !floats.Equal(before, after) {
			t.Fatalf("selectAction(%v): values changed from %v to %v", s,
				before, after)
		}
	}
}

func TestSelectActionMalformedState(t *testing.T) {
	table := newTable(t, 0, "a")
	p := NewGreedy(table)

	if _, err := p.SelectAction(light{phase: -1}); !errors.Is(err,
		valuetable.ErrMalformedState) {
		t.Errorf("want ErrMalformedState, have %v", err)
	}
	if _, err := p.Value(light{phase: -1}); !errors.Is(err,
		valuetable.ErrMalformedState) {
		t.Errorf("want ErrMalformedState, have %v", err)
	}
	if table.Len() != 0 {
		t.Errorf("malformed state was stored")
	}
}

func TestValue(t *testing.T) {
	table := newTable(t, 7, "a", "b")
	p := NewGreedy(table)

	v, err := p.Value(light{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 7 {
		t.Errorf("value of unseen state: want 7, have %v", v)
	}
	if table.Len() != 1 {
		t.Errorf("value should add the unseen state: len = %d", table.Len())
	}

	row, _ := table.RowFor(light{})
	row.Set("b", 9)
	if v, _ := p.Value(light{}); v != 9 {
		t.Errorf("value: want 9, have %v", v)
	}
}
