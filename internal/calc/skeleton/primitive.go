package skeleton

import "encoding/json"

type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

type Kind string

const (
	KindLine   Kind = "line"
	KindCircle Kind = "circle"
	KindRect   Kind = "rect"
	KindText   Kind = "text"
)

type StrokeStyle string

const (
	Solid  StrokeStyle = "solid"
	Dashed StrokeStyle = "dashed"
)

// Primitive is one drawable element of a Diagram: Line, Circle, Rect or Text.
type Primitive interface {
	Kind() Kind
}

type Line struct {
	From  Point   `json:"from" yaml:"from"`
	To    Point   `json:"to" yaml:"to"`
	Width float64 `json:"width" yaml:"width"`
	Color string  `json:"color" yaml:"color"`
}

type Circle struct {
	Center Point       `json:"center" yaml:"center"`
	Radius float64     `json:"radius" yaml:"radius"`
	Filled bool        `json:"filled" yaml:"filled"`
	Style  StrokeStyle `json:"style" yaml:"style"`
	Color  string      `json:"color" yaml:"color"`
}

type Rect struct {
	Corner Point   `json:"corner" yaml:"corner"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	Filled bool    `json:"filled" yaml:"filled"`
	Color  string  `json:"color" yaml:"color"`
	Alpha  float64 `json:"alpha" yaml:"alpha"`
}

type Text struct {
	Position Point   `json:"position" yaml:"position"`
	Content  string  `json:"content" yaml:"content"`
	HAlign   string  `json:"h_align" yaml:"h_align"`
	VAlign   string  `json:"v_align" yaml:"v_align"`
	FontSize float64 `json:"font_size" yaml:"font_size"` // points
	Color    string  `json:"color" yaml:"color"`
}

func (Line) Kind() Kind   { return KindLine }
func (Circle) Kind() Kind { return KindCircle }
func (Rect) Kind() Kind   { return KindRect }
func (Text) Kind() Kind   { return KindText }

type Bounds struct {
	MinX float64 `json:"min_x" yaml:"min_x"`
	MinY float64 `json:"min_y" yaml:"min_y"`
	MaxX float64 `json:"max_x" yaml:"max_x"`
	MaxY float64 `json:"max_y" yaml:"max_y"`
}

func (b Bounds) Width() float64  { return b.MaxX - b.MinX }
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Diagram is drawn back to front in Primitives order.
type Diagram struct {
	Title      string
	Bounds     Bounds
	Primitives []Primitive
}

// Tagged wraps each primitive with its kind so the list survives JSON/YAML encoding.
func (d Diagram) Tagged() []map[string]any {
	out := make([]map[string]any, 0, len(d.Primitives))
	for _, p := range d.Primitives {
		m := map[string]any{"kind": p.Kind()}
		switch v := p.(type) {
		case Line:
			m["from"], m["to"], m["width"], m["color"] = v.From, v.To, v.Width, v.Color
		case Circle:
			m["center"], m["radius"], m["filled"], m["style"], m["color"] = v.Center, v.Radius, v.Filled, v.Style, v.Color
		case Rect:
			m["corner"], m["width"], m["height"], m["filled"], m["color"], m["alpha"] = v.Corner, v.Width, v.Height, v.Filled, v.Color, v.Alpha
		case Text:
			m["position"], m["content"], m["h_align"], m["v_align"], m["font_size"], m["color"] = v.Position, v.Content, v.HAlign, v.VAlign, v.FontSize, v.Color
		}
		out = append(out, m)
	}
	return out
}

type document struct {
	Title      string           `json:"title" yaml:"title"`
	Bounds     Bounds           `json:"bounds" yaml:"bounds"`
	Primitives []map[string]any `json:"primitives" yaml:"primitives"`
}

func (d Diagram) MarshalJSON() ([]byte, error) {
	return json.Marshal(document{Title: d.Title, Bounds: d.Bounds, Primitives: d.Tagged()})
}

func (d Diagram) MarshalYAML() (any, error) {
	return document{Title: d.Title, Bounds: d.Bounds, Primitives: d.Tagged()}, nil
}
