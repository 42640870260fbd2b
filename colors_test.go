package md2site

import (
	"errors"
	"testing"
)

func TestValidateColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		color   string
		wantErr error // nil means valid
	}{
		{name: "hex 6 digits", color: "#ff0000"},
		{name: "hex 3 digits", color: "#fff"},
		{name: "hex 4 digits", color: "#ff00"},
		{name: "hex 8 digits", color: "#ff0000aa"},
		{name: "hex uppercase digits", color: "#FF00AA"},
		{name: "named color", color: "red"},
		{name: "named color uppercase", color: "RED"},
		{name: "named color mixed case", color: "ToMaTo"},
		{name: "hex 7 digits", color: "#fff000a", wantErr: ErrInvalidColorLength},
		{name: "hex 5 digits", color: "#ff000", wantErr: ErrInvalidColorLength},
		{name: "hex empty", color: "#", wantErr: ErrInvalidColorLength},
		{name: "hex bad character", color: "#ggg", wantErr: ErrInvalidColorDigit},
		{name: "hex bad character long", color: "#ff00zz", wantErr: ErrInvalidColorDigit},
		{name: "unknown name", color: "chartreuse", wantErr: ErrUnknownColorName},
		{name: "empty string", color: "", wantErr: ErrUnknownColorName},
		{name: "rgb() not supported", color: "rgb(255,0,0)", wantErr: ErrUnknownColorName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateColor(tt.color)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ValidateColor(%q) = %v, want nil", tt.color, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateColor(%q) = %v, want %v", tt.color, err, tt.wantErr)
			}
		})
	}
}

func TestValidateColor_AllNamedColors(t *testing.T) {
	t.Parallel()

	for name := range namedColors {
		if err := ValidateColor(name); err != nil {
			t.Errorf("ValidateColor(%q) = %v, want nil", name, err)
		}
	}
}
