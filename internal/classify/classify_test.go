package classify

import (
	"testing"

	"github.com/pdiddy/corpus-engine/internal/taxonomy"
	"github.com/pdiddy/corpus-engine/pkg/types"
)

func mustTaxonomy(t *testing.T, categories []taxonomy.Category) *taxonomy.Taxonomy {
	t.Helper()
	tax, err := taxonomy.New(categories)
	if err != nil {
		t.Fatalf("taxonomy.New(): %v", err)
	}
	return tax
}

func abTaxonomy(t *testing.T) *taxonomy.Taxonomy {
	return mustTaxonomy(t, []taxonomy.Category{
		{Name: "A", Keywords: []string{"foo"}},
		{Name: "B", Keywords: []string{"foo", "bar"}},
	})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantCategory string
		wantScore    int
	}{
		// "foo bar bar": A scores 1, B scores 1+2=3.
		{"higher total wins", "foo bar bar", "B", 3},
		// "foo": both score 1; tie resolves to the first declared.
		{"tie goes to first declared", "foo", "A", 1},
		{"no keyword occurs", "quux corge", Unclassified, 0},
		{"empty text", "", Unclassified, 0},
		{"case folded", "FOO Bar BAR", "B", 3},
		// Three occurrences contribute 3, not 1.
		{"occurrences accumulate", "bar bar bar", "B", 3},
	}
	tax := abTaxonomy(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.text, tax)
			if got.Category != tt.wantCategory {
				t.Errorf("Category = %q, want %q", got.Category, tt.wantCategory)
			}
			if got.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", got.Score, tt.wantScore)
			}
		})
	}
}

func TestClassifyTieBreakFollowsDeclarationOrder(t *testing.T) {
	// Swapping declaration order must flip the tie case and only the tie case.
	forward := mustTaxonomy(t, []taxonomy.Category{
		{Name: "A", Keywords: []string{"foo"}},
		{Name: "B", Keywords: []string{"foo", "bar"}},
	})
	reversed := mustTaxonomy(t, []taxonomy.Category{
		{Name: "B", Keywords: []string{"foo", "bar"}},
		{Name: "A", Keywords: []string{"foo"}},
	})

	if got := Classify("foo", forward).Category; got != "A" {
		t.Errorf("forward tie = %q, want A", got)
	}
	if got := Classify("foo", reversed).Category; got != "B" {
		t.Errorf("reversed tie = %q, want B", got)
	}

	// The non-tie case is order-insensitive.
	if got := Classify("foo bar bar", forward).Category; got != "B" {
		t.Errorf("forward non-tie = %q, want B", got)
	}
	if got := Classify("foo bar bar", reversed).Category; got != "B" {
		t.Errorf("reversed non-tie = %q, want B", got)
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	tax := abTaxonomy(t)
	first := Classify("foo bar", tax)
	for i := 0; i < 50; i++ {
		got := Classify("foo bar", tax)
		if got != first {
			t.Fatalf("call %d returned %+v, first call returned %+v", i, got, first)
		}
	}
}

func TestClassifyNoCrossCallState(t *testing.T) {
	// A high-scoring call must not inflate a later unrelated call.
	tax := abTaxonomy(t)
	Classify("foo foo foo bar bar bar", tax)
	got := Classify("bar", tax)
	if got.Category != "B" || got.Score != 1 {
		t.Errorf("Classify after busy call = %+v, want {B 1}", got)
	}
	got = Classify("quux", tax)
	if got.Category != Unclassified || got.Score != 0 {
		t.Errorf("Classify after busy call = %+v, want unclassified", got)
	}
}

func TestClassifyRecord(t *testing.T) {
	tax := mustTaxonomy(t, []taxonomy.Category{
		{Name: "lidar_optical", Keywords: []string{"lidar", "doppler"}},
		{Name: "thermal_flow", Keywords: []string{"thermal", "anemometer"}},
	})
	r := types.Record{
		ID:       "US1",
		Title:    "Doppler lidar wind measurement",
		Abstract: "A lidar unit measures airspeed aloft.",
	}
	got := ClassifyRecord(r, tax)
	if got.Category != "lidar_optical" {
		t.Errorf("Category = %q, want lidar_optical", got.Category)
	}
	// "lidar" twice + "doppler" once.
	if got.Score != 3 {
		t.Errorf("Score = %d, want 3", got.Score)
	}
}

func TestClassifyDefaultTaxonomy(t *testing.T) {
	tax := taxonomy.Default()
	tests := []struct {
		name string
		text string
		want string
	}{
		{"mems", "A MEMS pressure sensor on a piezoresistive diaphragm", "mems_pressure"},
		{"pitot", "Heated pitot tube with angle of attack compensation", "pitot_probes"},
		{"lidar", "Doppler lidar measures backscatter from aerosols", "lidar_optical"},
		// "ultrasonic anemometer" ties acoustic_ultrasonic with thermal_flow
		// at 1; acoustic_ultrasonic is declared earlier.
		{"ultrasonic anemometer tie", "ultrasonic anemometer", "acoustic_ultrasonic"},
		{"unrelated", "a method for browning toast evenly", Unclassified},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.text, tax)
			if got.Category != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.text, got.Category, tt.want)
			}
		})
	}
}

func TestScores(t *testing.T) {
	tax := abTaxonomy(t)
	scores := Scores("foo bar bar", tax)
	if len(scores) != 2 {
		t.Fatalf("len(scores) = %d, want 2", len(scores))
	}
	if scores[0].Category != "A" || scores[0].Score != 1 {
		t.Errorf("scores[0] = %+v, want {A 1}", scores[0])
	}
	if scores[1].Category != "B" || scores[1].Score != 3 {
		t.Errorf("scores[1] = %+v, want {B 3}", scores[1])
	}
}
