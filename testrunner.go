package panzoom

import (
	"encoding/json"
	"fmt"
	"strings"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string   `json:"action"`
	X      float64  `json:"x,omitempty"`
	Y      float64  `json:"y,omitempty"`
	FromX  float64  `json:"fromX,omitempty"`
	FromY  float64  `json:"fromY,omitempty"`
	ToX    float64  `json:"toX,omitempty"`
	ToY    float64  `json:"toY,omitempty"`
	Frames int      `json:"frames,omitempty"`
	DeltaY float64  `json:"deltaY,omitempty"`
	Button string   `json:"button,omitempty"`
	Mods   []string `json:"mods,omitempty"`

	button    MouseButton
	modifiers KeyModifiers
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected gestures across frames for automated
// testing. Attach to a Canvas via SetTestRunner.
//
// Actions: "press", "move", "release" (x, y, button, mods), "drag" and
// "pan" (fromX, fromY, toX, toY, frames, button, mods; pan defaults to the
// right button), "zoom" (x, y, deltaY, mods), "blur", "wait" (frames).
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Canvas via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i := range script.Steps {
		if err := script.Steps[i].resolve(); err != nil {
			return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// resolve validates the action and decodes button and modifier names.
func (st *testStep) resolve() error {
	switch st.Action {
	case "press", "move", "release", "drag", "zoom", "blur", "wait":
	case "pan":
		if st.Button == "" {
			st.Button = "right"
		}
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	if st.Button != "" {
		b, err := ParseMouseButton(st.Button)
		if err != nil {
			return err
		}
		st.button = b
	}
	mods, err := ParseModifiers(st.Mods)
	if err != nil {
		return err
	}
	st.modifiers = mods
	return nil
}

// ParseMouseButton maps "left", "right" or "middle" to a MouseButton.
func ParseMouseButton(name string) (MouseButton, error) {
	switch strings.ToLower(name) {
	case "left", "primary":
		return MouseButtonLeft, nil
	case "right", "secondary":
		return MouseButtonRight, nil
	case "middle":
		return MouseButtonMiddle, nil
	}
	return 0, fmt.Errorf("unknown mouse button %q", name)
}

// ParseModifiers maps names such as "ctrl" and "shift" to a KeyModifiers mask.
func ParseModifiers(names []string) (KeyModifiers, error) {
	var mods KeyModifiers
	for _, name := range names {
		switch strings.ToLower(name) {
		case "shift":
			mods |= ModShift
		case "ctrl", "control":
			mods |= ModCtrl
		case "alt", "option":
			mods |= ModAlt
		case "meta", "cmd", "command":
			mods |= ModMeta
		default:
			return 0, fmt.Errorf("unknown modifier %q", name)
		}
	}
	return mods, nil
}

// SetTestRunner attaches a TestRunner to the canvas. The runner's step method
// is called from Canvas.Update before input processing each frame.
func (c *Canvas) SetTestRunner(runner *TestRunner) {
	c.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Canvas.Update.
func (r *TestRunner) step(c *Canvas) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(c.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		c.InjectPress(st.X, st.Y, st.button, st.modifiers)
	case "move":
		c.InjectMove(st.X, st.Y, st.modifiers)
	case "release":
		c.InjectRelease(st.X, st.Y, st.button, st.modifiers)
	case "drag", "pan":
		c.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames, st.button, st.modifiers)
	case "zoom":
		c.InjectWheel(st.X, st.Y, st.DeltaY, st.modifiers)
	case "blur":
		c.InjectBlur()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(c.injectQueue) == 0 {
		r.done = true
	}
}
