package parsley

import "testing"

func TestSuggestField(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   Field
		wantOK bool
	}{
		{"transposed", "titel", FieldTitle, true},
		{"truncated", "episod", FieldEpisode, true},
		{"case insensitive", "THETVDB", FieldTheTVDB, true},
		{"exact", "genre", FieldGenre, true},
		{"nothing close", "zzqx", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SuggestField(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("SuggestField(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("SuggestField(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFieldByName(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   Field
		wantOK bool
	}{
		{"exact", "title", FieldTitle, true},
		{"uppercase", "TITLE", FieldTitle, true},
		{"camel case field", "encodingtool", FieldEncodingTool, true},
		{"unknown", "album", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FieldByName(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("FieldByName(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("FieldByName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFields_CoversTable(t *testing.T) {
	fields := Fields()
	if len(fields) != len(fieldTable) {
		t.Fatalf("Fields() returned %d fields, table has %d", len(fields), len(fieldTable))
	}
	seen := map[Field]bool{}
	for _, f := range fields {
		if seen[f] {
			t.Errorf("duplicate field %q", f)
		}
		seen[f] = true
	}
}
