package paint

import (
	"fmt"
	"image/color"
	"strings"
)

// Call is one recorded Surface invocation.
type Call struct {
	Op    string
	Args  []float64
	Text  string
	Color color.Color
}

func (c Call) String() string {
	var sb strings.Builder
	sb.WriteString(c.Op)
	sb.WriteByte('(')
	for i, a := range c.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", a)
	}
	if c.Text != "" {
		if len(c.Args) > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%q", c.Text)
	}
	if c.Color != nil {
		r, g, b, a := c.Color.RGBA()
		fmt.Fprintf(&sb, "#%02x%02x%02x%02x", r>>8, g>>8, b>>8, a>>8)
	}
	sb.WriteByte(')')
	return sb.String()
}

// Recorder is a Surface that keeps every call instead of drawing. It also
// tracks the Save/Restore depth so unbalanced pipelines can be detected.
type Recorder struct {
	Calls []Call
	depth int
}

var _ Surface = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{}
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
	r.depth = 0
}

// Depth returns the number of unmatched Save calls.
func (r *Recorder) Depth() int {
	return r.depth
}

// Ops returns the operation names in call order.
func (r *Recorder) Ops() []string {
	ops := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}

// Count returns how many calls named op were recorded.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Find returns the recorded calls named op.
func (r *Recorder) Find(op string) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

func (r *Recorder) String() string {
	lines := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		lines[i] = c.String()
	}
	return strings.Join(lines, "\n")
}

func (r *Recorder) add(op string, args ...float64) {
	r.Calls = append(r.Calls, Call{Op: op, Args: args})
}

func (r *Recorder) Clear() { r.add("Clear") }

func (r *Recorder) Save() {
	r.depth++
	r.add("Save")
}

func (r *Recorder) Restore() {
	if r.depth > 0 {
		r.depth--
	}
	r.add("Restore")
}

func (r *Recorder) SetLineWidth(w float64)   { r.add("SetLineWidth", w) }
func (r *Recorder) SetLineCap(c LineCap)     { r.add("SetLineCap", float64(c)) }
func (r *Recorder) SetGlobalAlpha(a float64) { r.add("SetGlobalAlpha", a) }
func (r *Recorder) SetFont(size float64)     { r.add("SetFont", size) }

func (r *Recorder) SetStrokeColor(c color.Color) {
	r.Calls = append(r.Calls, Call{Op: "SetStrokeColor", Color: c})
}

func (r *Recorder) SetFillColor(c color.Color) {
	r.Calls = append(r.Calls, Call{Op: "SetFillColor", Color: c})
}

func (r *Recorder) BeginPath()          { r.add("BeginPath") }
func (r *Recorder) MoveTo(x, y float64) { r.add("MoveTo", x, y) }
func (r *Recorder) LineTo(x, y float64) { r.add("LineTo", x, y) }
func (r *Recorder) Stroke()             { r.add("Stroke") }

func (r *Recorder) StrokeCircle(x, y, radius float64) { r.add("StrokeCircle", x, y, radius) }

func (r *Recorder) FillText(text string, x, y float64) {
	r.Calls = append(r.Calls, Call{Op: "FillText", Args: []float64{x, y}, Text: text})
}
