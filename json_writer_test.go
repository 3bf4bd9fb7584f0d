package budget

import (
	"math"
	"testing"
)

func TestJsonObjectWriter(t *testing.T) {
	t.Run("empty object", func(t *testing.T) {
		var w jsonObjectWriter
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "{}"; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("keeps insertion order", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("z", 1)
		w.Append("a", "hello")
		w.Append("m", 0) // zero values are written too.
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"z":1,"a":"hello","m":0}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("escapes keys", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append(`a"b`, true)
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"a\"b":true}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("keeps first error", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("a", 1)
		w.Append("nan", math.NaN())
		w.Append("b", 2)
		if _, err := w.MarshalJSON(); err == nil {
			t.Error("MarshalJSON() succeeded with a NaN value, want an error")
		}
	})
}
