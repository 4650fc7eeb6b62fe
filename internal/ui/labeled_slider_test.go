package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/formkit/internal/model"
	"github.com/ytget/formkit/internal/numeric"
)

type valueRecorder struct {
	values []model.Value
}

func (r *valueRecorder) commit(v model.Value) {
	r.values = append(r.values, v)
}

func (r *valueRecorder) last(t *testing.T) string {
	t.Helper()
	if len(r.values) == 0 {
		t.Fatal("Expected a commit, got none")
	}
	return r.values[len(r.values)-1].String()
}

func newTemperatureSlider(rec *valueRecorder, opts ...numeric.Option) *LabeledSlider {
	return NewLabeledSlider("Temperature", 0.5, model.NewBounds(0, 2, 0.01), rec.commit, opts...)
}

func TestNewLabeledSlider(t *testing.T) {
	test.NewApp()
	rec := &valueRecorder{}
	ls := newTemperatureSlider(rec)

	if ls.Label() != "Temperature" {
		t.Errorf("Expected label Temperature, got %q", ls.Label())
	}
	if ls.Text() != "0.50" {
		t.Errorf("Expected entry text 0.50, got %q", ls.Text())
	}
	if ls.SliderValue() != 0.5 {
		t.Errorf("Expected slider at 0.5, got %g", ls.SliderValue())
	}
	if ls.slider.Step != 0.01 || ls.slider.Min != 0 || ls.slider.Max != 2 {
		t.Errorf("Unexpected slider range: min=%g max=%g step=%g", ls.slider.Min, ls.slider.Max, ls.slider.Step)
	}
	if len(rec.values) != 0 {
		t.Errorf("Construction should not commit, got %v", rec.values)
	}
}

func TestLabeledSlider_TemperatureScenario(t *testing.T) {
	test.NewApp()
	rec := &valueRecorder{}
	ls := newTemperatureSlider(rec)

	if !ls.HandleTextEdit("0.7") {
		t.Fatal("0.7 should be accepted")
	}
	if got := rec.last(t); got != `pending("0.7")` {
		t.Errorf("Expected pending 0.7, got %s", got)
	}
	if ls.SliderValue() != 0.7 {
		t.Errorf("Slider should follow parsed text, got %g", ls.SliderValue())
	}

	if ls.HandleTextEdit("0.7a") {
		t.Error("0.7a should be rejected")
	}
	if ls.Text() != "0.7" {
		t.Errorf("Rejected text should revert to 0.7, got %q", ls.Text())
	}
	if len(rec.values) != 1 {
		t.Errorf("Rejected text should not commit, got %v", rec.values)
	}

	ls.HandleSliderEdit(1.25)
	if got := rec.last(t); got != "confirmed(1.25)" {
		t.Errorf("Expected confirmed 1.25, got %s", got)
	}
	if ls.Text() != "1.25" {
		t.Errorf("Entry should show the slider value, got %q", ls.Text())
	}
}

func TestLabeledSlider_DecimalPointEscape(t *testing.T) {
	test.NewApp()
	rec := &valueRecorder{}
	ls := newTemperatureSlider(rec)
	var reverted []model.Value
	ls.SetOnRevert(func(v model.Value) { reverted = append(reverted, v) })

	// Accepted because the second character is a decimal point.
	if !ls.HandleTextEdit("1.x") {
		t.Fatal("1.x should be accepted")
	}
	if got := rec.last(t); got != `pending("1.x")` {
		t.Errorf("Expected pending 1.x, got %s", got)
	}
	if ls.SliderValue() != 0.5 {
		t.Errorf("Unparseable text should not move the slider, got %g", ls.SliderValue())
	}

	ls.HandleBlur()
	if ls.Text() != "0.50" {
		t.Errorf("Unparseable text should revert on blur, got %q", ls.Text())
	}
	if len(rec.values) != 1 {
		t.Errorf("Reverting should not commit, got %v", rec.values)
	}
	if len(reverted) != 1 || reverted[0].String() != "confirmed(0.5)" {
		t.Errorf("Expected revert to 0.5 to be reported, got %v", reverted)
	}
}

func TestLabeledSlider_BlurClampsOutOfRange(t *testing.T) {
	test.NewApp()
	rec := &valueRecorder{}
	ls := newTemperatureSlider(rec)

	if !ls.HandleTextEdit("3") {
		t.Fatal("3 should pass the gate")
	}
	if ls.SliderValue() != 2 {
		t.Errorf("Slider should stop at max, got %g", ls.SliderValue())
	}

	ls.HandleBlur()
	if got := rec.last(t); got != "confirmed(2)" {
		t.Errorf("Expected confirmed 2, got %s", got)
	}
	if ls.Text() != "2.00" {
		t.Errorf("Expected entry text 2.00, got %q", ls.Text())
	}
}

func TestLabeledSlider_SliderEditsForwardEveryStep(t *testing.T) {
	test.NewApp()
	rec := &valueRecorder{}
	ls := newTemperatureSlider(rec)

	for _, v := range []float64{0, 0.01, 1.99, 2} {
		ls.slider.OnChanged(v)
	}

	if len(rec.values) != 4 {
		t.Fatalf("Expected 4 commits, got %d", len(rec.values))
	}
	for i, want := range []string{"confirmed(0)", "confirmed(0.01)", "confirmed(1.99)", "confirmed(2)"} {
		if got := rec.values[i].String(); got != want {
			t.Errorf("Commit %d: expected %s, got %s", i, want, got)
		}
	}
}

func TestLabeledSlider_TypingRejectsGarbage(t *testing.T) {
	test.NewApp()
	rec := &valueRecorder{}
	// No decimal point in second position, wherever the cursor is.
	ls := NewLabeledSlider("Level", 10, model.NewBounds(0, 100, 1), rec.commit)

	test.Type(ls.entry, "x")

	if ls.Text() != "10.00" {
		t.Errorf("Typed garbage should be reverted, got %q", ls.Text())
	}
	if len(rec.values) != 0 {
		t.Errorf("Rejected keystroke should not commit, got %v", rec.values)
	}
}

func TestLabeledSlider_TypingWithPrefixGate(t *testing.T) {
	test.NewApp()
	rec := &valueRecorder{}
	ls := newTemperatureSlider(rec, numeric.WithGate(numeric.Prefix))

	ls.entry.SetText("")
	if ls.Text() != "" {
		t.Fatalf("Prefix gate should accept an empty field, got %q", ls.Text())
	}

	test.Type(ls.entry, "0.7")

	if ls.Text() != "0.7" {
		t.Errorf("Expected entry text 0.7, got %q", ls.Text())
	}
	if got := rec.last(t); got != `pending("0.7")` {
		t.Errorf("Expected pending 0.7, got %s", got)
	}
	if ls.SliderValue() != 0.7 {
		t.Errorf("Expected slider at 0.7, got %g", ls.SliderValue())
	}

	ls.entry.FocusLost()
	if got := rec.last(t); got != "confirmed(0.7)" {
		t.Errorf("Focus loss should confirm 0.7, got %s", got)
	}
	if ls.Text() != "0.70" {
		t.Errorf("Expected entry text 0.70, got %q", ls.Text())
	}
}

func TestLabeledSlider_SetValue(t *testing.T) {
	test.NewApp()
	rec := &valueRecorder{}
	ls := newTemperatureSlider(rec)

	ls.SetValue(1.5)

	if ls.Text() != "1.50" || ls.SliderValue() != 1.5 {
		t.Errorf("Expected 1.50 on both surfaces, got %q and %g", ls.Text(), ls.SliderValue())
	}
	if len(rec.values) != 0 {
		t.Errorf("SetValue should not commit, got %v", rec.values)
	}
}

func TestLabeledSlider_SetColor(t *testing.T) {
	test.NewApp()
	ls := newTemperatureSlider(&valueRecorder{})

	ls.SetColor(color.NRGBA{R: 0x2e, G: 0xa0, B: 0x43, A: 0xff})
	if _, ok := ls.track.Objects[0].(*container.ThemeOverride); !ok {
		t.Errorf("Expected the slider to be wrapped in a theme override, got %T", ls.track.Objects[0])
	}

	ls.SetColor(nil)
	if ls.track.Objects[0] != ls.slider {
		t.Error("SetColor(nil) should restore the plain slider")
	}
}

func TestLabeledSlider_Renders(t *testing.T) {
	test.NewApp()
	ls := newTemperatureSlider(&valueRecorder{})

	w := test.NewWindow(ls)
	defer w.Close()

	if ls.MinSize().Width < NumericEntryWidth {
		t.Errorf("Expected room for the numeric entry, got width %g", ls.MinSize().Width)
	}
}
