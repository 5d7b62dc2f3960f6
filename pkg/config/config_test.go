package config

import "testing"

func TestGetEnvVariable(t *testing.T) {
	if _, err := GetEnvVariable(""); err == nil {
		t.Fatal("expected error for empty variable name")
	}
	if _, err := GetEnvVariable("HEXBALL_TEST_UNSET"); err == nil {
		t.Fatal("expected error for unset variable")
	}

	t.Setenv("HEXBALL_TEST_SCENE", "scenes/demo.json")
	got, err := GetEnvVariable("HEXBALL_TEST_SCENE")
	if err != nil {
		t.Fatalf("GetEnvVariable: %v", err)
	}
	if got != "scenes/demo.json" {
		t.Fatalf("value = %q, want scenes/demo.json", got)
	}
}
