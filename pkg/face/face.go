// Package face formats the time for each clock face style. Faces are
// pure string renderers; the windows decide how to present them.
package face

import "time"

// Options control how a face renders the time.
type Options struct {
	Use24Hour   bool
	ShowSeconds bool
}

// Face renders the current time for one clock style.
type Face interface {
	Name() string
	SupportsSeconds() bool
	FormatTime(t time.Time, opts Options) string
}

// Styles in cycle order.
const (
	StyleDigital = "digital"
	StyleAnalog  = "analog"
	StyleBinary  = "binary"
	StyleText    = "text"
)

// Manager holds the registered faces and the active style.
type Manager struct {
	faces   map[string]Face
	order   []string
	current string
}

// NewManager registers the built-in faces with digital active.
func NewManager() *Manager {
	m := &Manager{
		faces:   make(map[string]Face),
		current: StyleDigital,
	}
	for _, f := range []Face{digitalFace{}, analogFace{}, binaryFace{}, textFace{}} {
		m.faces[f.Name()] = f
		m.order = append(m.order, f.Name())
	}
	return m
}

// Available returns the registered style names in cycle order.
func (m *Manager) Available() []string {
	return append([]string(nil), m.order...)
}

// Get returns the face for a style name, falling back to digital for
// unknown names.
func (m *Manager) Get(name string) Face {
	if f, ok := m.faces[name]; ok {
		return f
	}
	return m.faces[StyleDigital]
}

// SetCurrent activates a style. Unknown names are ignored.
func (m *Manager) SetCurrent(name string) {
	if _, ok := m.faces[name]; ok {
		m.current = name
	}
}

// Current returns the active face.
func (m *Manager) Current() Face {
	return m.Get(m.current)
}

// CurrentName returns the active style name.
func (m *Manager) CurrentName() string {
	return m.current
}

// Next advances to the style after the active one, wrapping around,
// and returns its name.
func (m *Manager) Next() string {
	for i, name := range m.order {
		if name == m.current {
			m.current = m.order[(i+1)%len(m.order)]
			return m.current
		}
	}
	m.current = StyleDigital
	return m.current
}

type digitalFace struct{}

func (digitalFace) Name() string          { return StyleDigital }
func (digitalFace) SupportsSeconds() bool { return true }

func (digitalFace) FormatTime(t time.Time, opts Options) string {
	layout := pickLayout(opts)
	return t.Format(layout)
}

func pickLayout(opts Options) string {
	if opts.Use24Hour {
		if opts.ShowSeconds {
			return "15:04:05"
		}
		return "15:04"
	}
	if opts.ShowSeconds {
		return "03:04:05 PM"
	}
	return "03:04 PM"
}

// analogFace renders the same caption string as the digital face; no
// hands are drawn anywhere.
type analogFace struct{}

func (analogFace) Name() string          { return StyleAnalog }
func (analogFace) SupportsSeconds() bool { return true }

func (analogFace) FormatTime(t time.Time, opts Options) string {
	return digitalFace{}.FormatTime(t, opts)
}
