package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

type sample struct {
	Kind  string `yaml:"kind"`
	Theme string `yaml:"theme"`
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	t.Run("valid input", func(t *testing.T) {
		t.Parallel()

		var s sample
		err := UnmarshalStrict([]byte("kind: activity\ntheme: dark\n"), &s)
		if err != nil {
			t.Fatalf("UnmarshalStrict() error = %v", err)
		}
		if s.Kind != "activity" || s.Theme != "dark" {
			t.Errorf("got %+v", s)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()

		var s sample
		err := UnmarshalStrict([]byte("kind: activity\nbogus: 1\n"), &s)
		if err == nil {
			t.Error("expected error for unknown field")
		}
	})

	t.Run("empty data", func(t *testing.T) {
		t.Parallel()

		var s sample
		if err := UnmarshalStrict(nil, &s); !errors.Is(err, ErrNilData) {
			t.Errorf("error = %v, want ErrNilData", err)
		}
	})

	t.Run("nil destination", func(t *testing.T) {
		t.Parallel()

		if err := UnmarshalStrict([]byte("kind: x"), nil); !errors.Is(err, ErrNilDestination) {
			t.Errorf("error = %v, want ErrNilDestination", err)
		}
	})

	t.Run("oversized input", func(t *testing.T) {
		t.Parallel()

		var s sample
		big := []byte("kind: " + strings.Repeat("x", MaxInputSize))
		if err := UnmarshalStrict(big, &s); !errors.Is(err, ErrInputTooLarge) {
			t.Errorf("error = %v, want ErrInputTooLarge", err)
		}
	})
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	data, err := Marshal(sample{Kind: "usecase", Theme: "light"})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), "kind: usecase") {
		t.Errorf("output missing field: %q", data)
	}
}
