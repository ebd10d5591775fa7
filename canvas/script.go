package canvas

import (
	"encoding/json"

	"github.com/cockroachdb/errors"

	"github.com/phanxgames/bstviz"
)

// scriptStep is one action in a script.
type scriptStep struct {
	Action string  `json:"action"`
	Input  string  `json:"input,omitempty"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script replays commands, clicks, waits and screenshots across frames, one
// step per frame, for demos and visual regression runs.
//
//	{"steps": [
//	  {"action": "build", "input": "5,3,8,1,4"},
//	  {"action": "wait", "frames": 40},
//	  {"action": "search", "input": "4"},
//	  {"action": "wait", "frames": 90},
//	  {"action": "screenshot", "label": "found-4"}
//	]}
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

var scriptActions = map[string]bool{
	"build": true, "search": true, "delete": true, "theme": true,
	"click": true, "wait": true, "screenshot": true,
}

// LoadScript parses a JSON script.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "parse script")
	}
	if len(f.Steps) == 0 {
		return nil, errors.New("parse script: no steps")
	}
	for i, st := range f.Steps {
		if !scriptActions[st.Action] {
			return nil, errors.Newf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// Done reports whether every step has run.
func (s *Script) Done() bool { return s.done }

// step runs at most one step. Called from Game.Update before input.
func (s *Script) step(g *Game) {
	if s.done {
		return
	}
	if len(g.clicks) > 0 {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "build":
		g.exec(bstviz.Command{Kind: bstviz.CmdBuild, Arg: st.Input})
	case "search":
		g.exec(bstviz.Command{Kind: bstviz.CmdSearch, Arg: st.Input})
	case "delete":
		g.exec(bstviz.Command{Kind: bstviz.CmdDelete})
	case "theme":
		g.toggleTheme()
	case "click":
		g.InjectClick(st.X, st.Y)
	case "screenshot":
		g.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1
		}
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 && len(g.clicks) == 0 {
		s.done = true
	}
}
