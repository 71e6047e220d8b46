package catalog

// State is the edit state of one entity kind: Viewing or Editing.
type State interface {
	isState()
}

// Viewing means no record of the kind is being edited.
type Viewing struct{}

// Editing holds the record being edited and its uncommitted draft.
type Editing struct {
	ID    int64
	Draft Draft
}

func (Viewing) isState() {}
func (Editing) isState() {}

// Session is the edit state machine of one entity kind. At most one record is
// in Editing at a time. Session is not safe for concurrent use; Controller
// guards it.
type Session struct {
	state State
}

// State returns the current state. The returned draft is a copy.
func (s *Session) State() State {
	if e, ok := s.state.(Editing); ok {
		return Editing{ID: e.ID, Draft: e.Draft.Clone()}
	}
	return Viewing{}
}

// Editing reports the id of the record being edited.
func (s *Session) Editing() (int64, bool) {
	e, ok := s.state.(Editing)
	return e.ID, ok
}

// Begin starts editing id with draft, leaving any other record's edit.
func (s *Session) Begin(id int64, draft Draft) {
	s.state = Editing{ID: id, Draft: draft.Clone()}
}

// Cancel discards the draft and returns to Viewing.
func (s *Session) Cancel() {
	s.state = Viewing{}
}

// CancelIf returns to Viewing only when id is the record being edited.
func (s *Session) CancelIf(id int64) {
	if cur, ok := s.Editing(); ok && cur == id {
		s.state = Viewing{}
	}
}

// Set changes one draft value.
func (s *Session) Set(name, value string) error {
	e, ok := s.state.(Editing)
	if !ok {
		return ErrNotEditing
	}
	e.Draft[name] = value
	return nil
}
