package tui

import (
	"sort"
	"strings"

	"github.com/akyairhashvil/calpick/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m PickerModel, key string) (PickerModel, tea.Cmd, bool)

type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string
	Modes       []inputMode
	// Requires hides the binding when the picker part it drives is not shown.
	Requires func(models.PickerOptions) bool
	Priority int
}

func (b KeyBinding) AppliesTo(mode inputMode, opts models.PickerOptions) bool {
	if b.Requires != nil && !b.Requires(opts) {
		return false
	}
	if len(b.Modes) == 0 {
		return true
	}
	for _, v := range b.Modes {
		if v == mode {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m PickerModel, key string) (PickerModel, tea.Cmd, bool) {
	opts := m.picker.Options()
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesTo(m.mode, opts) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) BindingsFor(mode inputMode, opts models.PickerOptions) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesTo(mode, opts) {
			out = append(out, b)
		}
	}
	return out
}

func (r *HandlerRegistry) HelpFor(mode inputMode, opts models.PickerOptions) string {
	bindings := r.BindingsFor(mode, opts)
	seen := make(map[string]bool)
	var parts []string
	for _, b := range bindings {
		if b.Description == "" {
			continue
		}
		if seen[b.Description] {
			continue
		}
		seen[b.Description] = true
		parts = append(parts, "["+b.Key+"]"+b.Description)
	}
	return strings.Join(parts, "|")
}
