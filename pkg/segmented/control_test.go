package segmented

import (
	"image"
	"image/color"
	"testing"

	"github.com/go-logr/logr"

	"github.com/go-drift/segmented/pkg/errors"
	"github.com/go-drift/segmented/pkg/theme"
)

type recordingHandler struct {
	errs   []*errors.WidgetError
	panics []*errors.PanicError
}

func (h *recordingHandler) HandleError(err *errors.WidgetError) { h.errs = append(h.errs, err) }
func (h *recordingHandler) HandlePanic(err *errors.PanicError)  { h.panics = append(h.panics, err) }

func captureErrors(t *testing.T) *recordingHandler {
	t.Helper()
	h := &recordingHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return h
}

func testOptions(reg *theme.Registry, opts ...Option) []Option {
	if reg == nil {
		reg = theme.NewRegistry()
	}
	return append([]Option{WithRegistry(reg), WithLogger(logr.Discard())}, opts...)
}

func newTitles(t *testing.T, titles []string, opts ...Option) *Control {
	t.Helper()
	c, err := NewWithTitles(titles, testOptions(nil, opts...)...)
	if err != nil {
		t.Fatalf("NewWithTitles: %v", err)
	}
	return c
}

type selection struct {
	index   int
	control *Control
}

func recordSelections(c *Control) *[]selection {
	var calls []selection
	c.SetControlEventHandler(func(index int, control *Control) {
		calls = append(calls, selection{index, control})
	})
	return &calls
}

func testIcon(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 0x20, G: 0x40, B: 0x60, A: 0xFF})
		}
	}
	return img
}

func TestSelectionFollowsInsertedSegment(t *testing.T) {
	c := newTitles(t, []string{"One", "Two", "Three"})
	if c.NumberOfSegments() != 3 {
		t.Fatalf("expected 3 segments, got %d", c.NumberOfSegments())
	}
	if c.SelectedIndex() != NoSegment {
		t.Fatalf("expected no selection, got %d", c.SelectedIndex())
	}

	calls := recordSelections(c)
	if err := c.SetSelectedIndex(1); err != nil {
		t.Fatalf("SetSelectedIndex: %v", err)
	}
	if len(*calls) != 1 || (*calls)[0].index != 1 || (*calls)[0].control != c {
		t.Fatalf("expected one call with (1, c), got %v", *calls)
	}

	if err := c.SetSelectedIndex(1); err != nil {
		t.Fatalf("SetSelectedIndex: %v", err)
	}
	if len(*calls) != 1 {
		t.Fatalf("re-selecting fired the handler: %v", *calls)
	}

	if err := c.InsertSegment("Zero", nil, 0, false); err != nil {
		t.Fatalf("InsertSegment: %v", err)
	}
	if c.NumberOfSegments() != 4 {
		t.Fatalf("expected 4 segments, got %d", c.NumberOfSegments())
	}
	if s, _ := c.Segment(2); s.Title != "Two" {
		t.Errorf("expected Two at index 2, got %q", s.Title)
	}
	if c.SelectedIndex() != 2 {
		t.Errorf("expected selection to follow Two to 2, got %d", c.SelectedIndex())
	}
	if len(*calls) != 1 {
		t.Errorf("insert fired the handler: %v", *calls)
	}
}

func TestConstructorCounts(t *testing.T) {
	icons := []image.Image{testIcon(4, 4), testIcon(4, 4)}

	c, err := NewWithIcons(icons, testOptions(nil)...)
	if err != nil {
		t.Fatalf("NewWithIcons: %v", err)
	}
	if c.NumberOfSegments() != 2 {
		t.Errorf("expected 2 icon segments, got %d", c.NumberOfSegments())
	}
	for i, s := range c.Segments() {
		if !s.HasImage() || s.HasTitle() {
			t.Errorf("segment %d: expected icon only", i)
		}
	}

	c, err = NewWithTitlesAndIcons([]string{"A", "B", "C"}, icons, testOptions(nil)...)
	if err != nil {
		t.Fatalf("NewWithTitlesAndIcons: %v", err)
	}
	if c.NumberOfSegments() != 3 {
		t.Fatalf("expected padding to 3 segments, got %d", c.NumberOfSegments())
	}
	last, _ := c.Segment(2)
	if last.Title != "C" || last.HasImage() {
		t.Errorf("expected padded segment with title only, got %+v", last)
	}
	first, _ := c.Segment(0)
	if first.Title != "A" || first.Image != icons[0] {
		t.Errorf("expected titles and icons paired by index")
	}
	if !first.Enabled {
		t.Error("segments should start enabled")
	}
}

func TestConstructorRequiresSegments(t *testing.T) {
	h := captureErrors(t)

	_, err := NewWithTitlesAndIcons(nil, nil, testOptions(nil)...)
	if !errors.Is(err, errors.ErrNoSegments) {
		t.Fatalf("expected ErrNoSegments, got %v", err)
	}
	if errors.KindOf(err) != errors.KindInvalidArgument {
		t.Errorf("expected invalid_argument, got %s", errors.KindOf(err))
	}
	if len(h.errs) != 1 {
		t.Errorf("expected the error to be reported, got %d reports", len(h.errs))
	}
}

func TestWithSelectedIndex(t *testing.T) {
	c := newTitles(t, []string{"A", "B"}, WithSelectedIndex(1))
	if c.SelectedIndex() != 1 {
		t.Errorf("expected initial selection 1, got %d", c.SelectedIndex())
	}

	_, err := NewWithTitles([]string{"A", "B"}, testOptions(nil, WithSelectedIndex(2))...)
	if !errors.Is(err, errors.ErrIndexOutOfRange) {
		t.Errorf("expected out of range, got %v", err)
	}
}

func TestSetSelectedIndexRejectsOutOfRange(t *testing.T) {
	h := captureErrors(t)
	c := newTitles(t, []string{"A", "B"}, WithSelectedIndex(0))
	calls := recordSelections(c)

	for _, index := range []int{-2, 2, 100} {
		err := c.SetSelectedIndex(index)
		if !errors.Is(err, errors.ErrIndexOutOfRange) {
			t.Errorf("index %d: expected ErrIndexOutOfRange, got %v", index, err)
		}
		var we *errors.WidgetError
		if !errors.As(err, &we) || we.Index != index || we.Op != "segmented.SetSelectedIndex" {
			t.Errorf("index %d: unexpected error detail %+v", index, we)
		}
	}
	if c.SelectedIndex() != 0 {
		t.Errorf("rejected calls changed the selection to %d", c.SelectedIndex())
	}
	if len(*calls) != 0 {
		t.Errorf("rejected calls fired the handler: %v", *calls)
	}
	if len(h.errs) != 3 {
		t.Errorf("expected 3 reported errors, got %d", len(h.errs))
	}
}

func TestClearSelection(t *testing.T) {
	c := newTitles(t, []string{"A", "B"})
	calls := recordSelections(c)

	if err := c.SetSelectedIndex(NoSegment); err != nil {
		t.Fatalf("clearing an empty selection: %v", err)
	}
	if len(*calls) != 0 {
		t.Fatalf("clearing an empty selection fired the handler")
	}

	_ = c.SetSelectedIndex(0)
	_ = c.SetSelectedIndex(NoSegment)
	if len(*calls) != 2 || (*calls)[1].index != NoSegment {
		t.Errorf("expected clear to fire with -1, got %v", *calls)
	}
}

func TestHandlerSingleSlot(t *testing.T) {
	c := newTitles(t, []string{"A", "B", "C"})
	var first, second int
	c.SetControlEventHandler(func(int, *Control) { first++ })
	c.SetControlEventHandler(func(int, *Control) { second++ })

	_ = c.SetSelectedIndex(1)
	if first != 0 || second != 1 {
		t.Errorf("expected only the latest handler to run, got first=%d second=%d", first, second)
	}

	c.SetControlEventHandler(nil)
	_ = c.SetSelectedIndex(2)
	if second != 1 {
		t.Errorf("nil handler should clear the slot")
	}
	if c.SelectedIndex() != 2 {
		t.Errorf("selection should change without a handler, got %d", c.SelectedIndex())
	}
}

func TestHandlerPanicIsRecovered(t *testing.T) {
	h := captureErrors(t)
	c := newTitles(t, []string{"A", "B"})
	c.SetControlEventHandler(func(int, *Control) { panic("boom") })

	if err := c.SetSelectedIndex(1); err != nil {
		t.Fatalf("SetSelectedIndex: %v", err)
	}
	if c.SelectedIndex() != 1 {
		t.Errorf("selection should stick after a panicking handler")
	}
	if len(h.panics) != 1 || h.panics[0].Value != "boom" {
		t.Fatalf("expected the panic to be reported, got %v", h.panics)
	}
	if h.panics[0].Op != "segmented.Control.notify" {
		t.Errorf("unexpected op %q", h.panics[0].Op)
	}
}

func TestInsertSegmentBounds(t *testing.T) {
	captureErrors(t)
	c := newTitles(t, []string{"A"})

	if err := c.InsertSegment("B", nil, 1, true); err != nil {
		t.Fatalf("appending at len should succeed: %v", err)
	}
	for _, index := range []int{-1, 3} {
		if err := c.InsertSegment("X", nil, index, false); !errors.Is(err, errors.ErrIndexOutOfRange) {
			t.Errorf("index %d: expected ErrIndexOutOfRange, got %v", index, err)
		}
	}
	if c.NumberOfSegments() != 2 {
		t.Errorf("rejected inserts changed the length to %d", c.NumberOfSegments())
	}
	titles := []string{}
	for _, s := range c.Segments() {
		titles = append(titles, s.Title)
	}
	if titles[0] != "A" || titles[1] != "B" {
		t.Errorf("unexpected order %v", titles)
	}
}

func TestInsertAfterSelectionKeepsIndex(t *testing.T) {
	c := newTitles(t, []string{"A", "B"}, WithSelectedIndex(0))
	if err := c.InsertSegment("C", nil, 1, false); err != nil {
		t.Fatal(err)
	}
	if c.SelectedIndex() != 0 {
		t.Errorf("insert above the selection moved it to %d", c.SelectedIndex())
	}
}

func TestRemoveSegment(t *testing.T) {
	c := newTitles(t, []string{"A", "B", "C", "D"}, WithSelectedIndex(2))
	calls := recordSelections(c)

	if err := c.RemoveSegment(0); err != nil {
		t.Fatal(err)
	}
	if c.SelectedIndex() != 1 || len(*calls) != 0 {
		t.Errorf("removing below the selection: selected=%d calls=%v", c.SelectedIndex(), *calls)
	}

	if err := c.RemoveSegment(2); err != nil {
		t.Fatal(err)
	}
	if c.SelectedIndex() != 1 || len(*calls) != 0 {
		t.Errorf("removing above the selection: selected=%d calls=%v", c.SelectedIndex(), *calls)
	}

	if err := c.RemoveSegment(1); err != nil {
		t.Fatal(err)
	}
	if c.SelectedIndex() != NoSegment {
		t.Errorf("removing the selected segment should clear, got %d", c.SelectedIndex())
	}
	if len(*calls) != 1 || (*calls)[0].index != NoSegment {
		t.Errorf("expected one call with -1, got %v", *calls)
	}
	if c.NumberOfSegments() != 1 {
		t.Errorf("expected 1 segment left, got %d", c.NumberOfSegments())
	}

	captureErrors(t)
	if err := c.RemoveSegment(1); !errors.Is(err, errors.ErrIndexOutOfRange) {
		t.Errorf("expected out of range, got %v", err)
	}
}

func TestRemoveAllSegments(t *testing.T) {
	c := newTitles(t, []string{"A", "B"}, WithSelectedIndex(1))
	calls := recordSelections(c)

	c.RemoveAllSegments()
	if c.NumberOfSegments() != 0 || c.SelectedIndex() != NoSegment {
		t.Errorf("expected empty control, got %d segments selected %d", c.NumberOfSegments(), c.SelectedIndex())
	}
	if len(*calls) != 1 {
		t.Errorf("expected clear to fire once, got %v", *calls)
	}
	if err := c.InsertSegment("New", nil, 0, false); err != nil {
		t.Errorf("insert into empty control: %v", err)
	}
}

func TestSetTitleAndImage(t *testing.T) {
	c := newTitles(t, []string{"A", "B"})
	icon := testIcon(2, 2)

	if err := c.SetTitle("Alpha", 0); err != nil {
		t.Fatal(err)
	}
	if err := c.SetImage(icon, 1); err != nil {
		t.Fatal(err)
	}
	s0, _ := c.Segment(0)
	s1, _ := c.Segment(1)
	if s0.Title != "Alpha" || s1.Image != icon {
		t.Errorf("unexpected segments %+v %+v", s0, s1)
	}
	if _, ok := c.Segment(2); ok {
		t.Error("Segment(2) should report false")
	}

	captureErrors(t)
	if err := c.SetTitle("X", 5); !errors.Is(err, errors.ErrIndexOutOfRange) {
		t.Errorf("expected out of range, got %v", err)
	}
}

func TestSegmentsReturnsCopies(t *testing.T) {
	c := newTitles(t, []string{"A"})
	if err := c.SetSegmentImageColor(0xFF112233, StateNormal, 0); err != nil {
		t.Fatal(err)
	}

	segs := c.Segments()
	segs[0].Title = "changed"
	segs[0].ImageColors[StateNormal] = 0

	s, _ := c.Segment(0)
	if s.Title != "A" || s.ImageColors[StateNormal] != 0xFF112233 {
		t.Errorf("mutating the copy changed the control: %+v", s)
	}
}

func TestEnabledAndState(t *testing.T) {
	c := newTitles(t, []string{"A", "B", "C"}, WithSelectedIndex(0))

	if err := c.SetEnabled(false, 2); err != nil {
		t.Fatal(err)
	}
	if c.IsEnabled(2) || !c.IsEnabled(1) || c.IsEnabled(9) {
		t.Error("unexpected enabled flags")
	}
	if err := c.SetHighlightedIndex(1); err != nil {
		t.Fatal(err)
	}

	want := []ControlState{StateSelected, StateHighlighted, StateDisabled}
	for i, w := range want {
		if got := c.State(i); got != w {
			t.Errorf("State(%d): expected %s, got %s", i, w, got)
		}
	}

	if err := c.SetSelectedIndex(2); err != nil {
		t.Errorf("disabled segments stay programmatically selectable: %v", err)
	}
	if c.State(2) != StateDisabled {
		t.Errorf("disabled wins over selected, got %s", c.State(2))
	}
}

func TestHighlightFollowsInsert(t *testing.T) {
	c := newTitles(t, []string{"A", "B"})
	_ = c.SetHighlightedIndex(1)
	_ = c.InsertSegment("Z", nil, 0, false)
	if c.HighlightedIndex() != 2 {
		t.Errorf("expected highlight to move to 2, got %d", c.HighlightedIndex())
	}
	_ = c.SetHighlightedIndex(NoSegment)
	if c.HighlightedIndex() != NoSegment {
		t.Error("expected highlight cleared")
	}
}
