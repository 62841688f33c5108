package simulation

import (
	"testing"

	"github.com/google/uuid"
)

func newAgents(n int) []*Agent {
	agents := make([]*Agent, n)
	for i := range agents {
		agents[i] = &Agent{ID: uuid.New(), Speed: float64(i)}
	}
	return agents
}

func speeds(t *Table[*Agent]) []float64 {
	var out []float64
	for _, a := range t.Rows() {
		out = append(out, a.Speed)
	}
	return out
}

func checkIndex(t *testing.T, table *Table[*Agent]) {
	t.Helper()
	for i, a := range table.Rows() {
		got, ok := table.Get(a.ID)
		if !ok || got != a {
			t.Fatalf("row %d not reachable through the index", i)
		}
	}
}

func TestTable_InsertGetRemove(t *testing.T) {
	table := NewTable[*Agent]()
	agents := newAgents(5)
	for _, a := range agents {
		table.Insert(a)
	}
	if table.Len() != 5 {
		t.Fatalf("Len() = %d", table.Len())
	}

	if !table.Remove(agents[2].ID) {
		t.Fatal("Remove returned false for a present row")
	}
	if table.Remove(agents[2].ID) {
		t.Error("second Remove should report false")
	}
	want := []float64{0, 1, 3, 4}
	if got := speeds(table); !equalFloats(got, want) {
		t.Errorf("rows = %v; want %v", got, want)
	}
	checkIndex(t, table)

	replacement := &Agent{ID: agents[0].ID, Speed: 99}
	table.Insert(replacement)
	if got, _ := table.Get(agents[0].ID); got != replacement || table.Len() != 4 {
		t.Error("insert with an existing ID should replace in place")
	}
}

func TestTable_RemoveFirst(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want []float64
	}{
		{"None", 0, []float64{0, 1, 2, 3}},
		{"Two", 2, []float64{2, 3}},
		{"More than length", 10, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewTable[*Agent]()
			for _, a := range newAgents(4) {
				table.Insert(a)
			}
			table.RemoveFirst(tt.n)
			if got := speeds(table); !equalFloats(got, tt.want) {
				t.Errorf("rows = %v; want %v", got, tt.want)
			}
			checkIndex(t, table)
		})
	}
}

func TestTable_Retain(t *testing.T) {
	table := NewTable[*Agent]()
	agents := newAgents(6)
	for _, a := range agents {
		table.Insert(a)
	}
	removed := table.Retain(func(a *Agent) bool { return int(a.Speed)%2 == 0 })
	if removed != 3 {
		t.Errorf("removed = %d; want 3", removed)
	}
	if got := speeds(table); !equalFloats(got, []float64{0, 2, 4}) {
		t.Errorf("rows = %v", got)
	}
	if _, ok := table.Get(agents[1].ID); ok {
		t.Error("removed row still indexed")
	}
	checkIndex(t, table)

	table.Clear()
	if table.Len() != 0 {
		t.Error("Clear left rows behind")
	}
}

func TestRegistry_FixturesOrderAndReach(t *testing.T) {
	cfg := bareConfig()
	cfg.Collectors = []CollectorConfig{{Radius: 30, SnapRadius: 40}}
	cfg.Hoovers = []HooverConfig{{Radius: 220, SnapRadius: 6}}
	cfg.Influencers = []InfluenceConfig{{Radius: 140}}
	cfg.Emitters = []EmitterConfig{{}}
	w := newTestWorld(cfg)

	fixtures := w.Fixtures()
	wantKinds := []Kind{KindEmitter, KindInfluencer, KindHoover, KindCollector}
	if len(fixtures) != len(wantKinds) {
		t.Fatalf("got %d fixtures", len(fixtures))
	}
	wantReach := []float64{0, 140, 220, 40}
	for i, f := range fixtures {
		if f.Kind != wantKinds[i] {
			t.Errorf("fixture %d kind = %v; want %v", i, f.Kind, wantKinds[i])
		}
		if r := w.Registry().FixtureReach(f); r != wantReach[i] {
			t.Errorf("%v reach = %v; want %v", f.Kind, r, wantReach[i])
		}
	}
}

func TestKind_StringAndParse(t *testing.T) {
	for k := KindEmitter; k <= KindCollector; k++ {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("magnet"); err == nil {
		t.Error("expected an error for an unknown kind")
	}
}

func equalFloats(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
