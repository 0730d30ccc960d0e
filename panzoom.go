package panzoom

import (
	"errors"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrContainerNotFound is returned when a canvas is constructed against a
// container that does not exist.
var ErrContainerNotFound = errors.New("panzoom: container not found")

// ErrInvalidOptions is returned when Options describe an impossible scale range.
var ErrInvalidOptions = errors.New("panzoom: invalid options")

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default element color.
var ColorWhite = Color{1, 1, 1, 1}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.R*c.A*255 + 0.5),
		G: uint8(c.G*c.A*255 + 0.5),
		B: uint8(c.B*c.A*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}

// Vec2 is a 2D vector used for positions, translates and screen points.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul returns v scaled by s.
func (v Vec2) Mul(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// WhitePixel is a 1x1 white image used to draw solid color elements.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.toRGBA())
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// EventType identifies a kind of gesture notification.
type EventType uint8

const (
	EventDragStart EventType = iota // pointer-down on an element passed ValidateDrag
	EventDragMove                   // pointer moved while an element is dragged
	EventDragEnd                    // pointer released (or focus lost) while dragging
	EventPanStart                   // pointer-down on the container passed ValidatePan
	EventPanMove                    // pointer moved while panning
	EventPanEnd                     // pointer released (or focus lost) while panning
	EventZoom                       // wheel event passed ValidateZoom

	eventTypeCount
)

var eventTypeNames = [eventTypeCount]string{
	EventDragStart: "dragstart",
	EventDragMove:  "dragmove",
	EventDragEnd:   "dragend",
	EventPanStart:  "panstart",
	EventPanMove:   "panmove",
	EventPanEnd:    "panend",
	EventZoom:      "zoom",
}

// String returns the lower-case event name, e.g. "dragstart".
func (t EventType) String() string {
	if t < eventTypeCount {
		return eventTypeNames[t]
	}
	return "unknown"
}

// ParseEventType maps an event name such as "panmove" to its EventType.
func ParseEventType(name string) (EventType, bool) {
	for i, n := range eventTypeNames {
		if n == name {
			return EventType(i), true
		}
	}
	return 0, false
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)

	mouseButtonCount
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Has reports whether all modifiers in m are held.
func (k KeyModifiers) Has(m KeyModifiers) bool {
	return k&m == m
}

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Max(math.Min(v, hi), lo)
}
