package version

import (
	"testing"

	"github.com/fatih/color"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	if _, err := Semver(); err != nil {
		t.Errorf("default version must be semver: %v", err)
	}
}

func TestSatisfies(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	tests := []struct {
		version    string
		constraint string
		want       bool
		wantErr    bool
	}{
		{"0.1.0", ">= 0.1", true, false},
		{"0.1.0-dev", ">= 0.1.0", true, false},
		{"0.1.0", "^1.0", false, false},
		{"1.2.3", "~1.2", true, false},
		{"1.2.3", "not a constraint", false, true},
		{"dev", ">= 0.1", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.version+" "+tt.constraint, func(t *testing.T) {
			Version = tt.version
			got, err := Satisfies(tt.constraint)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Satisfies = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColored(t *testing.T) {
	orig := Version
	origNoColor := color.NoColor
	defer func() {
		Version = orig
		color.NoColor = origNoColor
	}()
	color.NoColor = true

	Version = "1.2.3-rc.1"
	if got := Colored(); got != "1.2.3-rc.1" {
		t.Errorf("Colored() = %q", got)
	}
	Version = "weird"
	if got := Colored(); got != "weird" {
		t.Errorf("Colored() = %q", got)
	}
}
