package schedule

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"alex l", "ALEX L"},
		{"  Paul   G  ", "PAUL G"},
		{"", ""},
		{"   ", ""},
	}
	for _, c := range cases {
		got := Normalize(c.input)
		if got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestCleanNameRetail(t *testing.T) {
	p, err := ProfileByName("retail")
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		input string
		want  string
	}{
		{"024 - PAINT PAUL G ", "PAUL G"},
		{"• Jones K ", "JONES K"},
		{"- alex l ", "ALEX L"},
		{"FLOOR CARE SMITH A B ", "SMITH A B"},
		{"ALEX L ", "ALEX L"},
		{"MARTINEZ ", "MARTINEZ"},
		{"NAME", ""},
		{"TOTAL HOURS", ""},
		{"PAGE 3", ""},
		{"QUERY RESULTS", ""},
		{"024 - ", ""},
		{"*** ", ""},
		{"", ""},
	}
	for _, c := range cases {
		got := p.CleanName(c.input)
		if got != c.want {
			t.Errorf("CleanName(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestCleanNamePlainKeepsFullField(t *testing.T) {
	p, err := ProfileByName("plain")
	if err != nil {
		t.Fatal(err)
	}
	// The plain profile does not trim role words or department codes.
	if got := p.CleanName("PAINT PAUL G"); got != "PAINT PAUL G" {
		t.Errorf("CleanName(%q) = %q, want %q", "PAINT PAUL G", got, "PAINT PAUL G")
	}
	if got := p.CleanName("ASSOCIATE"); got != "" {
		t.Errorf("CleanName(%q) = %q, want empty", "ASSOCIATE", got)
	}
}

func TestTrimToSurname(t *testing.T) {
	cases := []struct {
		input []string
		want  []string
	}{
		{[]string{"PAINT", "PAUL", "G"}, []string{"PAUL", "G"}},
		{[]string{"ALEX", "L"}, []string{"ALEX", "L"}},
		{[]string{"SMITH", "A", "B"}, []string{"SMITH", "A", "B"}},
		{[]string{"FLOOR", "CARE", "SMITH", "A", "B"}, []string{"SMITH", "A", "B"}},
		{[]string{"MARTINEZ"}, []string{"MARTINEZ"}},
		{[]string{"MARY", "ANN", "LOPEZ"}, []string{"MARY", "ANN", "LOPEZ"}},
	}
	for _, c := range cases {
		got := trimToSurname(c.input)
		if len(got) != len(c.want) {
			t.Errorf("trimToSurname(%v) = %v, want %v", c.input, got, c.want)
			continue
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("trimToSurname(%v) = %v, want %v", c.input, got, c.want)
				break
			}
		}
	}
}
