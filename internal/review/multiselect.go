package review

// Option is one selectable entry of a MultiSelect.
type Option[T any] struct {
	Value    T
	Label    string
	Selected bool
}

// MultiSelect is an ordered list of options with a cursor.
// The cursor always addresses an existing option when the list is non-empty.
type MultiSelect[T any] struct {
	options []Option[T]
	cursor  int
}

// NewMultiSelect creates a MultiSelect with every option unselected and the cursor at 0.
func NewMultiSelect[T any](values []T, label func(T) string) *MultiSelect[T] {
	options := make([]Option[T], len(values))
	for i, v := range values {
		options[i] = Option[T]{Value: v, Label: label(v)}
	}
	return &MultiSelect[T]{options: options}
}

// Len returns the number of options.
func (m *MultiSelect[T]) Len() int { return len(m.options) }

// Cursor returns the focused index.
func (m *MultiSelect[T]) Cursor() int { return m.cursor }

// Previous moves the cursor up, saturating at the first option.
func (m *MultiSelect[T]) Previous() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// Next moves the cursor down, saturating at the last option.
func (m *MultiSelect[T]) Next() {
	if m.cursor < len(m.options)-1 {
		m.cursor++
	}
}

// Toggle flips the selection of the focused option.
func (m *MultiSelect[T]) Toggle() {
	if len(m.options) == 0 {
		return
	}
	m.options[m.cursor].Selected = !m.options[m.cursor].Selected
}

// Focused returns the value under the cursor. ok is false when the list is empty.
func (m *MultiSelect[T]) Focused() (value T, ok bool) {
	if len(m.options) == 0 {
		return value, false
	}
	return m.options[m.cursor].Value, true
}

// Options returns a copy of the options in list order.
func (m *MultiSelect[T]) Options() []Option[T] {
	out := make([]Option[T], len(m.options))
	copy(out, m.options)
	return out
}

// SelectedValues returns the selected values in list order.
func (m *MultiSelect[T]) SelectedValues() []T {
	var out []T
	for _, o := range m.options {
		if o.Selected {
			out = append(out, o.Value)
		}
	}
	return out
}
