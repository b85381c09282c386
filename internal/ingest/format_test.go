package ingest

import "testing"

func TestDetectFormat(t *testing.T) {
	cases := []struct {
		name     string
		override Format
		want     Format
	}{
		{"events.f13", FormatAuto, FormatURQMD},
		{"run7.f13.gz", FormatAuto, FormatURQMD},
		{"events.dat", FormatAuto, FormatStd},
		{"", FormatAuto, FormatStd}, // unnamed stream defaults to std
		{"events.f13", FormatStd, FormatStd},
		{"events.dat", FormatURQMD, FormatURQMD},
	}
	for _, c := range cases {
		if got := DetectFormat(c.name, c.override); got != c.want {
			t.Errorf("DetectFormat(%q, %v) = %v, want %v", c.name, c.override, got, c.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for s, want := range map[string]Format{"auto": FormatAuto, "": FormatAuto, "std": FormatStd, "urqmd": FormatURQMD} {
		got, err := ParseFormat(s)
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", s, err)
		}
		if got != want {
			t.Errorf("ParseFormat(%q) = %v, want %v", s, got, want)
		}
	}

	if _, err := ParseFormat("hepmc"); err == nil {
		t.Error("ParseFormat should reject unknown format names")
	}
}
