package state

// HistoryLimit caps the transition log kept for the help pager.
const HistoryLimit = 50

// AppState holds the UI state that lives outside the combobox controller.
type AppState struct {
	// Status bar
	StatusMessage string
	ErrorMessage  string

	// Selection bookkeeping
	LastSelection string // label of the last committed item, "" when cleared
	HasSelected   bool
	TouchCount    int // how often the input lost focus

	// List viewport
	ViewportOffset int

	// Rendering
	InPagerMode bool

	history []string
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{}
}

// Record appends a transition line, dropping the oldest past HistoryLimit.
func (s *AppState) Record(line string) {
	s.history = append(s.history, line)
	if over := len(s.history) - HistoryLimit; over > 0 {
		s.history = append(s.history[:0:0], s.history[over:]...)
	}
}

// History returns a copy of the recorded transitions, oldest first.
func (s *AppState) History() []string {
	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}

// SetStatus shows msg and clears any error.
func (s *AppState) SetStatus(msg string) {
	s.StatusMessage = msg
	s.ErrorMessage = ""
}

// SetError shows msg in the error style.
func (s *AppState) SetError(msg string) {
	s.ErrorMessage = msg
}

// ClearStatus empties both status fields.
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.ErrorMessage = ""
}
