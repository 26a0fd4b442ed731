package core

import (
	"strings"
	"testing"
)

func TestHere(t *testing.T) {
	loc := Here(0)
	if loc == nil {
		t.Fatal("Here(0) returned nil")
	}
	if !strings.Contains(loc.Function, "TestHere") {
		t.Errorf("Function = %q, want it to contain TestHere", loc.Function)
	}
	if !strings.HasSuffix(loc.File, "location_test.go") {
		t.Errorf("File = %q, want suffix location_test.go", loc.File)
	}
	if loc.Line <= 0 {
		t.Errorf("Line = %d, want > 0", loc.Line)
	}
}

func TestHere_ExcessiveSkip(t *testing.T) {
	if loc := Here(10000); loc != nil {
		t.Errorf("Here(10000) = %+v, want nil", loc)
	}
}
