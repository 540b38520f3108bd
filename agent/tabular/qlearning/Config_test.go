package qlearning

import (
	"strings"
	"testing"
)

func TestConfigListAt(t *testing.T) {
	list := NewConfigList(
		[]float64{0.0, 0.9},
		[]float64{0.1, 0.5, 1.0},
		[]float64{1000},
		SentinelFirstTouch, TrackedFirstTouch,
	)

	if list.Len() != 12 {
		t.Fatalf("len: want 12, have %d", list.Len())
	}

	seen := make(map[Config]bool)
	for i := 0; i < list.Len(); i++ {
		c, ok := list.At(i).(Config)
		if !ok {
			t.Fatalf("at(%d): config of type %T", i, list.At(i))
		}
		if err := c.Validate(); err != nil {
			t.Errorf("at(%d): invalid config: %v", i, err)
		}
		if seen[c] {
			t.Errorf("at(%d): config %v repeated", i, c)
		}
		seen[c] = true
	}

	want := Config{
		DiscountFactor: 0.9,
		LearningRate:   0.5,
		InitialValue:   1000,
		FirstTouch:     TrackedFirstTouch,
	}
	if have := list.At(9); have != want {
		t.Errorf("at(9): want %v, have %v", want, have)
	}
}

func TestConfigListDefaultFirstTouch(t *testing.T) {
	list := NewConfigList([]float64{0}, []float64{1}, []float64{5, 10})

	if list.Len() != 2 {
		t.Fatalf("len: want 2, have %d", list.Len())
	}
	c := list.At(1).(Config)
	if c.InitialValue != 10 || c.FirstTouch != SentinelFirstTouch {
		t.Errorf("at(1): have %v", c)
	}
}

func TestConfigListAtOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("at: expected panic for out of range index")
		}
	}()
	NewConfigList([]float64{0}, []float64{1}, nil).At(0)
}

func TestLoadConfigList(t *testing.T) {
	data := `{
		"DiscountFactor": [0, 0.5],
		"LearningRate": [1],
		"InitialValue": [9223372036854775807],
		"FirstTouch": ["Tracked"]
	}`

	list, err := LoadConfigList(strings.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.Len() != 2 {
		t.Fatalf("len: want 2, have %d", list.Len())
	}
	c := list.At(1).(Config)
	if c.DiscountFactor != 0.5 || c.FirstTouch != TrackedFirstTouch {
		t.Errorf("at(1): have %v", c)
	}

	if _, err := LoadConfigList(strings.NewReader(
		`{"Epsilon": [0.1]}`)); err == nil {
		t.Errorf("loadConfigList: unknown field should be rejected")
	}
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.DiscountFactor != 1 || c.LearningRate != 1 || c.InitialValue != 0 {
		t.Errorf("defaultConfig: have %v", c)
	}

	// With α = 1 a learned value keeps following new targets
	q, err := New[string]([]string{"stay", "go"}, c)
	if err != nil {
		t.Fatalf("could not create agent: %v", err)
	}
	q.Update("A", "go", "B", 3)
	q.Update("A", "go", "B", -2)
	if values, _ := q.Values("A"); values[1] != -2 {
		t.Errorf("want -2, have %v", values[1])
	}
}
