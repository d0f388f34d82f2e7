package version

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Version
		wantErr bool
	}{
		{"1.0.207", Version{1, 0, 207}, false},
		{"v1.0.207", Version{1, 0, 207}, false},
		{"1.2", Version{1, 2, 0}, false},
		{"18", Version{18, 0, 0}, false},
		{"  1.0.207  ", Version{1, 0, 207}, false},
		{"", Version{}, true},
		{"abc", Version{}, true},
		{"1.0.207-extra", Version{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseOptional(t *testing.T) {
	v, err := ParseOptional("")
	if err != nil || v != nil {
		t.Errorf("ParseOptional(\"\") = %v, %v, want nil, nil", v, err)
	}

	v, err = ParseOptional("1.0.200")
	if err != nil {
		t.Fatalf("ParseOptional error = %v", err)
	}
	if *v != (Version{1, 0, 200}) {
		t.Errorf("ParseOptional = %v, want 1.0.200", v)
	}

	if _, err = ParseOptional("bad"); err == nil {
		t.Error("ParseOptional(bad) error = nil, want error")
	}
}

func TestExtract(t *testing.T) {
	tests := []struct {
		input   string
		want    Version
		wantErr bool
	}{
		{"Lean CLI v1.0.207", Version{1, 0, 207}, false},
		{"version 2.5", Version{2, 5, 0}, false},
		{"Python 3.11 / Lean CLI v1.0.207", Version{1, 0, 207}, false},
		{"no digits here", Version{}, true},
	}

	for _, tt := range tests {
		got, err := Extract(tt.input)
		if (err != nil) != tt.wantErr {
			t.Fatalf("Extract(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("Extract(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b Version
		want int
	}{
		{Version{1, 0, 0}, Version{1, 0, 0}, 0},
		{Version{1, 0, 0}, Version{2, 0, 0}, -1},
		{Version{2, 0, 0}, Version{1, 9, 9}, 1},
		{Version{1, 1, 0}, Version{1, 0, 9}, 1},
		{Version{1, 0, 1}, Version{1, 0, 2}, -1},
	}

	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("%v.Compare(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAtLeast(t *testing.T) {
	if !(Version{1, 0, 207}).AtLeast(Version{1, 0, 200}) {
		t.Error("1.0.207 should be at least 1.0.200")
	}
	if (Version{1, 0, 199}).AtLeast(Version{1, 0, 200}) {
		t.Error("1.0.199 should not be at least 1.0.200")
	}
	if !(Version{1, 0, 200}).AtLeast(Version{1, 0, 200}) {
		t.Error("equal versions satisfy AtLeast")
	}
}
