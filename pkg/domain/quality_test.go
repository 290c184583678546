package domain

import "testing"

func TestParseQuality(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    DecisionQuality
		wantErr bool
	}{
		{name: "Excellent", input: "excellent", want: QualityExcellent},
		{name: "Good", input: "good", want: QualityGood},
		{name: "Poor", input: "poor", want: QualityPoor},
		{name: "Failure", input: "failure", want: QualityFailure},
		{name: "Unknown tag", input: "mediocre", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
		{name: "Case sensitive", input: "GOOD", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseQuality(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseQuality(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseQuality(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseQuality(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestQualitiesAreValid(t *testing.T) {
	for _, q := range Qualities() {
		if !q.Valid() {
			t.Errorf("quality %q reported invalid", q)
		}
	}
	if DecisionQuality("sloppy").Valid() {
		t.Error("unknown quality reported valid")
	}
}
