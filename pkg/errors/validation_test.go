package errors

import (
	"testing"
)

func TestValidateRange(t *testing.T) {
	tests := []struct {
		name    string
		v       int
		wantErr bool
	}{
		{"lower bound", 3, false},
		{"upper bound", 30, false},
		{"inside", 15, false},
		{"below", 2, true},
		{"above", 31, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRange("numRows", tt.v, 3, 30)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRange(%d) error = %v, wantErr %v", tt.v, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidConfig) {
				t.Errorf("ValidateRange(%d) code = %v, want %v", tt.v, GetCode(err), ErrCodeInvalidConfig)
			}
		})
	}
}

func TestValidateFloatRange(t *testing.T) {
	if err := ValidateFloatRange("jitterIntensity", 200, 0, 200); err != nil {
		t.Errorf("upper bound rejected: %v", err)
	}
	if err := ValidateFloatRange("jitterIntensity", -0.5, 0, 200); err == nil {
		t.Error("negative intensity accepted")
	}
}

func TestValidateOneOf(t *testing.T) {
	if err := ValidateOneOf("orientation", "vertical", "vertical", "horizontal"); err != nil {
		t.Errorf("vertical rejected: %v", err)
	}
	err := ValidateOneOf("orientation", "diagonal", "vertical", "horizontal")
	if err == nil {
		t.Fatal("diagonal accepted")
	}
	if msg := UserMessage(err); msg != `orientation must be one of vertical, horizontal, got "diagonal"` {
		t.Errorf("UserMessage() = %q", msg)
	}
}

func TestValidateTypeKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "normal", false},
		{"underscore", "mini_boss_editable", false},
		{"digits", "floor2_event", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 65)), true},
		{"uppercase", "Elite", true},
		{"dash", "mini-boss", true},
		{"space", "mini boss", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTypeKey(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTypeKey(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
