package core

import "testing"

func TestInputFramePointerEdges(t *testing.T) {
	f := NewInputFrame()
	if f.Pointer.Known {
		t.Fatal("new frame should not know the pointer")
	}

	f.Press(5, 6, true)
	p := f.Pointer
	if !p.Known || !p.Moved || !p.Pressed || !p.Alt || p.X != 5 || p.Y != 6 {
		t.Errorf("after Press: %+v", p)
	}

	f.Clear()
	p = f.Pointer
	if p.Moved || p.Pressed || p.Released || p.Alt {
		t.Errorf("Clear kept edges: %+v", p)
	}
	if !p.Known || p.X != 5 || p.Y != 6 {
		t.Errorf("Clear lost position: %+v", p)
	}

	f.MoveTo(5, 6)
	if f.Pointer.Moved {
		t.Error("moving to the same cell is not motion")
	}

	f.Release(7, 6)
	if !f.Pointer.Moved || !f.Pointer.Released || f.Pointer.X != 7 {
		t.Errorf("after Release: %+v", f.Pointer)
	}
}

func TestInputFrameActions(t *testing.T) {
	var f InputFrame
	if f.Has(ActionDraw) {
		t.Fatal("zero frame has no actions")
	}

	f.Set(ActionDraw)
	f.Set(ActionFocusLost)
	if !f.Has(ActionDraw) || !f.Has(ActionFocusLost) {
		t.Error("Set actions should be reported by Has")
	}

	f.Clear()
	if f.Has(ActionDraw) || f.Has(ActionFocusLost) {
		t.Error("Clear should drop actions")
	}
}

func TestActionString(t *testing.T) {
	if ActionDraw.String() == ActionNone.String() {
		t.Error("actions should have distinct names")
	}
}
