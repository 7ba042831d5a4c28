package state

// ModeKind names the active tool.
type ModeKind int

const (
	ModeBrush ModeKind = iota
	ModeEraser
	ModeText
)

func (k ModeKind) String() string {
	switch k {
	case ModeBrush:
		return "brush"
	case ModeEraser:
		return "eraser"
	case ModeText:
		return "text"
	}
	return "unknown"
}

// Mode is the tool variant. Only ModeText carries a pending string, and it
// remembers which drawing tool to resume once the text is placed.
type Mode struct {
	kind   ModeKind
	text   string
	resume ModeKind
}

func Brush() Mode  { return Mode{kind: ModeBrush} }
func Eraser() Mode { return Mode{kind: ModeEraser} }

// TextPlacement holds s until the next click; resume must be a drawing tool.
func TextPlacement(s string, resume ModeKind) Mode {
	if resume == ModeText {
		resume = ModeBrush
	}
	return Mode{kind: ModeText, text: s, resume: resume}
}

func (m Mode) Kind() ModeKind { return m.kind }

// Text returns the pending string while placing text.
func (m Mode) Text() (string, bool) {
	if m.kind != ModeText {
		return "", false
	}
	return m.text, true
}

// Drawing reports whether motion events should draw.
func (m Mode) Drawing() bool { return m.kind != ModeText }

func (m Mode) String() string { return m.kind.String() }
