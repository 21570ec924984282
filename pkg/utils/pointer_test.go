package utils

import "testing"

func TestPointerTrackerMouse(t *testing.T) {
	pt := NewPointerTracker()

	steps := []struct {
		name   string
		sample pointerSample
		check  func(PointerState) bool
	}{
		{"移动", pointerSample{x: 10, y: 20}, func(s PointerState) bool {
			return s.Hovering && !s.Pressed && !s.JustPressed && s.X == 10 && s.Y == 20
		}},
		{"按下", pointerSample{x: 10, y: 20, down: true}, func(s PointerState) bool {
			return s.JustPressed && s.Pressed && s.DX == 0
		}},
		{"拖动", pointerSample{x: 15, y: 12, down: true}, func(s PointerState) bool {
			return !s.JustPressed && s.DX == 5 && s.DY == -8
		}},
		{"释放", pointerSample{x: 15, y: 12}, func(s PointerState) bool {
			return s.JustReleased && !s.Pressed && s.DX == 0
		}},
		{"空闲", pointerSample{x: 15, y: 12}, func(s PointerState) bool {
			return !s.JustReleased && !s.JustPressed
		}},
	}

	for _, step := range steps {
		got := pt.apply(step.sample)
		if !step.check(got) {
			t.Fatalf("%s: unexpected state %+v", step.name, got)
		}
	}
}

func TestPointerTrackerTouchRelease(t *testing.T) {
	pt := NewPointerTracker()

	pt.apply(pointerSample{x: 100, y: 200, down: true, touch: true})
	if !pt.lastTouch {
		t.Fatal("active touch should be remembered")
	}
	pt.apply(pointerSample{x: 110, y: 180, down: true, touch: true})

	// 触摸结束：位置沿用最后一次触摸坐标
	got := pt.apply(pointerSample{x: -1, y: -1, touch: true})
	if !got.JustReleased || got.X != 110 || got.Y != 180 {
		t.Errorf("touch release = %+v, want JustReleased at (110, 180)", got)
	}
	if got.Hovering {
		t.Error("released touch should not hover")
	}
	if pt.lastTouch {
		t.Error("released touch should not be remembered")
	}
	if pt.State() != got {
		t.Error("State() should return the last result")
	}
}
