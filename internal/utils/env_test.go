package utils

import "testing"

func TestGetEnvAsBool(t *testing.T) {
	cases := []struct {
		name       string
		value      string
		set        bool
		defaultVal bool
		want       bool
	}{
		{name: "unset uses default", defaultVal: true, want: true},
		{name: "true literal", value: "true", set: true, defaultVal: false, want: true},
		{name: "numeric zero", value: "0", set: true, defaultVal: true, want: false},
		{name: "short form", value: "t", set: true, defaultVal: false, want: true},
		{name: "garbage uses default", value: "sim", set: true, defaultVal: true, want: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.set {
				t.Setenv("TEST_BOOL_FLAG", tc.value)
			}
			if got := GetEnvAsBool("TEST_BOOL_FLAG", tc.defaultVal, nil); got != tc.want {
				t.Fatalf("GetEnvAsBool(%q, %v) = %v, want %v", tc.value, tc.defaultVal, got, tc.want)
			}
		})
	}
}

func TestGetEnvAsIntFallsBackOnGarbage(t *testing.T) {
	t.Setenv("TEST_INT_VAL", "quarenta")
	if got := GetEnvAsInt("TEST_INT_VAL", 40, nil); got != 40 {
		t.Fatalf("GetEnvAsInt = %d, want default 40", got)
	}
	t.Setenv("TEST_INT_VAL", "41")
	if got := GetEnvAsInt("TEST_INT_VAL", 40, nil); got != 41 {
		t.Fatalf("GetEnvAsInt = %d, want 41", got)
	}
}
