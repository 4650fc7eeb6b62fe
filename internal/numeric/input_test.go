package numeric

import (
	"strconv"
	"testing"

	"github.com/ytget/formkit/internal/model"
)

type commitRecorder struct {
	values []model.Value
}

func (r *commitRecorder) commit(v model.Value) {
	r.values = append(r.values, v)
}

func (r *commitRecorder) last(t *testing.T) model.Value {
	t.Helper()
	if len(r.values) == 0 {
		t.Fatal("Expected a commit, got none")
	}
	return r.values[len(r.values)-1]
}

func temperatureBounds() model.Bounds {
	return model.NewBounds(0, 2, 0.01)
}

func TestNewInput(t *testing.T) {
	in := NewInput(0.5, temperatureBounds(), nil)

	if in.Pending() != "0.50" {
		t.Errorf("Expected pending text 0.50, got %q", in.Pending())
	}
	if in.Position() != 0.5 {
		t.Errorf("Expected position 0.5, got %g", in.Position())
	}
}

func TestTextEdit_AcceptsNumbersInRange(t *testing.T) {
	rec := &commitRecorder{}
	b := temperatureBounds()
	in := NewInput(0.5, b, rec.commit)

	for k := 0; k <= 200; k += 7 {
		n := b.Min + float64(k)*b.Step
		raw := strconv.FormatFloat(n, 'f', -1, 64)

		if !in.TextEdit(raw) {
			t.Fatalf("TextEdit(%q) was rejected", raw)
		}
		got, ok := rec.last(t).Float()
		if !ok || got != n {
			t.Errorf("TextEdit(%q) forwarded %g (ok=%v), expected %g", raw, got, ok, n)
		}
	}
}

func TestTextEdit_DecimalPointEscape(t *testing.T) {
	for _, raw := range []string{"0.", "-.", "1.", "x.y"} {
		rec := &commitRecorder{}
		in := NewInput(0.5, temperatureBounds(), rec.commit)

		if !in.TextEdit(raw) {
			t.Errorf("TextEdit(%q) should be accepted", raw)
			continue
		}
		v := rec.last(t)
		if !v.IsPending() || v.Text() != raw {
			t.Errorf("TextEdit(%q) forwarded %s, expected pending(%q)", raw, v, raw)
		}
	}
}

func TestTextEdit_RejectsGarbage(t *testing.T) {
	for _, raw := range []string{"abc", "", "-", "1e", "NaN"} {
		rec := &commitRecorder{}
		in := NewInput(0.5, temperatureBounds(), rec.commit)

		if in.TextEdit(raw) {
			t.Errorf("TextEdit(%q) should be rejected", raw)
		}
		if len(rec.values) != 0 {
			t.Errorf("TextEdit(%q) committed %v", raw, rec.values)
		}
		if in.Pending() != "0.50" {
			t.Errorf("TextEdit(%q) changed pending text to %q", raw, in.Pending())
		}
	}
}

func TestTextEdit_ExponentBypassesBounds(t *testing.T) {
	rec := &commitRecorder{}
	in := NewInput(0.5, temperatureBounds(), rec.commit)

	if !in.TextEdit("1e5") {
		t.Fatal("TextEdit(\"1e5\") should be accepted")
	}
	if v := rec.last(t); v.Text() != "1e5" {
		t.Errorf("Expected forwarded text 1e5, got %s", v)
	}
	if in.Position() != 2 {
		t.Errorf("Slider position should be clamped to 2, got %g", in.Position())
	}
}

func TestSliderEdit_ForwardsEveryStep(t *testing.T) {
	rec := &commitRecorder{}
	b := temperatureBounds()
	in := NewInput(0.5, b, rec.commit)

	for k := 0; k <= 200; k++ {
		v := b.Min + float64(k)*b.Step
		in.SliderEdit(v)

		got := rec.last(t)
		if got.IsPending() {
			t.Fatalf("SliderEdit(%g) forwarded a pending value", v)
		}
		if n, _ := got.Float(); n != v {
			t.Errorf("SliderEdit(%g) forwarded %g", v, n)
		}
	}
}

func TestTemperatureScenario(t *testing.T) {
	rec := &commitRecorder{}
	in := NewInput(0.5, temperatureBounds(), rec.commit)

	if !in.TextEdit("0.") {
		t.Fatal("\"0.\" should be accepted")
	}
	if v := rec.last(t); v.Text() != "0." {
		t.Errorf("Expected forwarded 0., got %s", v)
	}

	if !in.TextEdit("0.7") {
		t.Fatal("\"0.7\" should be accepted")
	}
	if v := rec.last(t); v.Text() != "0.7" {
		t.Errorf("Expected forwarded 0.7, got %s", v)
	}
	if in.Position() != 0.7 {
		t.Errorf("Slider should follow the typed value, got %g", in.Position())
	}

	in.SliderEdit(1.2)
	v := rec.last(t)
	if n, _ := v.Float(); v.IsPending() || n != 1.2 {
		t.Errorf("Expected forwarded confirmed 1.2, got %s", v)
	}
	if in.Pending() != "1.20" {
		t.Errorf("Entry text should show 1.20 after the slider moved, got %q", in.Pending())
	}

	if len(rec.values) != 3 {
		t.Errorf("Expected 3 commits, got %d", len(rec.values))
	}
}

func TestBlur(t *testing.T) {
	t.Run("clamps and confirms typed text", func(t *testing.T) {
		rec := &commitRecorder{}
		in := NewInput(0.5, temperatureBounds(), rec.commit)

		in.TextEdit("5")
		v, committed := in.Blur()
		if !committed {
			t.Fatal("Blur should commit resolved text")
		}
		if n, _ := v.Float(); v.IsPending() || n != 2 {
			t.Errorf("Expected confirmed 2, got %s", v)
		}
		if rec.last(t) != v {
			t.Errorf("Blur committed %s, returned %s", rec.last(t), v)
		}
		if in.Pending() != "2.00" {
			t.Errorf("Expected reformatted text 2.00, got %q", in.Pending())
		}
	})

	t.Run("reverts unparseable text", func(t *testing.T) {
		rec := &commitRecorder{}
		in := NewInput(0.5, temperatureBounds(), rec.commit)

		in.TextEdit("-.")
		commits := len(rec.values)
		if _, committed := in.Blur(); committed {
			t.Error("Blur should not commit unparseable text")
		}
		if len(rec.values) != commits {
			t.Error("Blur committed unparseable text")
		}
		if in.Pending() != "0.50" {
			t.Errorf("Expected text to revert to 0.50, got %q", in.Pending())
		}
	})

	t.Run("no commit without edits", func(t *testing.T) {
		rec := &commitRecorder{}
		in := NewInput(0.5, temperatureBounds(), rec.commit)

		if _, committed := in.Blur(); committed {
			t.Error("Blur without edits should not commit")
		}
		if len(rec.values) != 0 {
			t.Errorf("Expected no commits, got %v", rec.values)
		}
	})
}

func TestReset(t *testing.T) {
	rec := &commitRecorder{}
	in := NewInput(0.5, temperatureBounds(), rec.commit)

	in.TextEdit("0.")
	in.Reset(1.5)

	if in.Pending() != "1.50" || in.Position() != 1.5 {
		t.Errorf("Reset should update both surfaces, got %q / %g", in.Pending(), in.Position())
	}
	if len(rec.values) != 1 {
		t.Errorf("Reset should not commit, got %d commits", len(rec.values))
	}
	if _, committed := in.Blur(); committed {
		t.Error("Reset should clear pending edits")
	}
}

func TestWithGate_Prefix(t *testing.T) {
	rec := &commitRecorder{}
	in := NewInput(0.5, temperatureBounds(), rec.commit, WithGate(Prefix))

	for _, raw := range []string{"", "-", "-1", "-1e", "10."} {
		if !in.TextEdit(raw) {
			t.Errorf("Prefix gate rejected %q", raw)
		}
	}
	if in.TextEdit("abc") {
		t.Error("Prefix gate accepted abc")
	}
	if len(rec.values) != 5 {
		t.Errorf("Expected 5 commits, got %d", len(rec.values))
	}
}
