package combobox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func heroEnv() Env {
	return Env{Visible: heroes, ItemToString: StringItem}
}

func TestTransitionPayloads(t *testing.T) {
	open := State{IsOpen: true, HighlightedIndex: 2, InputValue: "x", SelectedItem: "Hulk"}
	closed := InitialState()

	tests := map[string]struct {
		state State
		event Event
		want  Payload
	}{
		"toggle opens": {
			state: closed,
			event: Event{Type: MenuToggle},
			want:  Payload{IsOpen: Set(true)},
		},
		"toggle closes and drops highlight": {
			state: open,
			event: Event{Type: MenuToggle},
			want:  Payload{IsOpen: Set(false), HighlightedIndex: Set(NoHighlight)},
		},
		"button click behaves like toggle": {
			state: closed,
			event: Event{Type: ButtonClick},
			want:  Payload{IsOpen: Set(true)},
		},
		"menu open": {
			state: open,
			event: Event{Type: MenuOpen},
			want:  Payload{IsOpen: Set(true)},
		},
		"menu close": {
			state: closed,
			event: Event{Type: MenuClose},
			want:  Payload{IsOpen: Set(false), HighlightedIndex: Set(NoHighlight)},
		},
		"input change reopens and clears selection": {
			state: closed,
			event: Event{Type: InputChange, Text: "sp"},
			want: Payload{
				InputValue:   Set("sp"),
				IsOpen:       Set(true),
				SelectedItem: Set[Item](nil),
			},
		},
		"blur commits highlighted": {
			state: open,
			event: Event{Type: InputBlur},
			want: Payload{
				IsOpen:           Set(false),
				HighlightedIndex: Set(NoHighlight),
				SelectedItem:     Set[Item]("Thor"),
				InputValue:       Set("Thor"),
			},
		},
		"enter commits highlighted": {
			state: open,
			event: Event{Type: InputKeydownEnter},
			want: Payload{
				IsOpen:           Set(false),
				HighlightedIndex: Set(NoHighlight),
				SelectedItem:     Set[Item]("Thor"),
				InputValue:       Set("Thor"),
			},
		},
		"arrow down": {
			state: open,
			event: Event{Type: InputKeydownArrowDown},
			want:  Payload{HighlightedIndex: Set(3), SelectedItem: Set[Item](nil)},
		},
		"arrow up": {
			state: open,
			event: Event{Type: InputKeydownArrowUp},
			want:  Payload{HighlightedIndex: Set(1), SelectedItem: Set[Item](nil)},
		},
		"escape": {
			state: open,
			event: Event{Type: InputKeydownEsc},
			want: Payload{
				IsOpen:           Set(false),
				HighlightedIndex: Set(NoHighlight),
				SelectedItem:     Set[Item](nil),
				InputValue:       Set(""),
			},
		},
		"click commits clicked item": {
			state: open,
			event: Event{Type: ItemMouseClick, Item: "Spider-Man"},
			want: Payload{
				IsOpen:           Set(false),
				HighlightedIndex: Set(NoHighlight),
				SelectedItem:     Set[Item]("Spider-Man"),
				InputValue:       Set("Spider-Man"),
			},
		},
		"mouse enter": {
			state: open,
			event: Event{Type: ItemMouseEnter, Item: "Iron Man"},
			want:  Payload{HighlightedIndex: Set(3)},
		},
		"mouse leave": {
			state: open,
			event: Event{Type: ItemMouseLeave, Item: "Iron Man"},
			want:  Payload{HighlightedIndex: Set(NoHighlight)},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			action, ok := Transition(tc.state, tc.event, heroEnv())
			require.True(t, ok)
			assert.Equal(t, tc.event.Type, action.Type)
			assert.Equal(t, tc.want, action.Payload)
		})
	}
}

func TestTransitionGuardsClosedState(t *testing.T) {
	for _, at := range ActionTypes() {
		_, ok := Transition(InitialState(), Event{Type: at}, heroEnv())
		assert.Equal(t, !at.RequiresOpen(), ok, at.String())
	}
}

func TestTransitionRejectsUnknownType(t *testing.T) {
	_, ok := Transition(State{IsOpen: true}, Event{Type: ActionType(99)}, heroEnv())
	assert.False(t, ok)
}

func TestCommitWithoutHighlightClearsInput(t *testing.T) {
	s := State{IsOpen: true, HighlightedIndex: NoHighlight, InputValue: "zz", SelectedItem: "Thor"}
	action, ok := Transition(s, Event{Type: InputKeydownEnter}, heroEnv())
	require.True(t, ok)

	next := s.Apply(action.Payload)
	assert.Nil(t, next.SelectedItem)
	assert.Equal(t, "", next.InputValue)
	assert.False(t, next.IsOpen)
}

func TestNextAndPrevIndex(t *testing.T) {
	tests := []struct {
		current, count, next, prev int
	}{
		{NoHighlight, 4, 0, 0},
		{0, 4, 1, 3},
		{3, 4, 0, 2},
		{0, 1, 0, 0},
		{NoHighlight, 0, NoHighlight, NoHighlight},
		{2, 0, NoHighlight, NoHighlight},
		{5, 3, 0, 1},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.next, NextIndex(tc.current, tc.count), "next(%d, %d)", tc.current, tc.count)
		assert.Equal(t, tc.prev, PrevIndex(tc.current, tc.count), "prev(%d, %d)", tc.current, tc.count)
	}
}

func TestApplyMergesOnlySetFields(t *testing.T) {
	s := State{IsOpen: true, HighlightedIndex: 1, InputValue: "h", SelectedItem: "Hulk", InputText: "p"}

	assert.Equal(t, s, s.Apply(Payload{}))

	next := s.Apply(Payload{InputValue: Set("hu")})
	assert.Equal(t, "hu", next.InputValue)
	assert.Equal(t, 1, next.HighlightedIndex)
	assert.Equal(t, "Hulk", next.SelectedItem)
	assert.Equal(t, "h", s.InputValue, "receiver is not mutated")

	closed := s.Apply(Payload{IsOpen: Set(false)})
	assert.Equal(t, NoHighlight, closed.HighlightedIndex)
}

func TestIndexOfUsesEquality(t *testing.T) {
	type hero struct{ Name string }
	items := []Item{hero{"Hulk"}, hero{"Thor"}}
	env := Env{Visible: items}

	assert.Equal(t, 1, env.IndexOf(hero{"Thor"}))
	assert.Equal(t, NoHighlight, env.IndexOf(hero{"Loki"}))
	assert.Equal(t, NoHighlight, env.IndexOf(nil))

	slices := []Item{[]string{"a"}, []string{"b"}}
	env = Env{Visible: slices}
	assert.Equal(t, 1, env.IndexOf([]string{"b"}), "non-comparable items fall back to deep equality")
}

func TestDefaultEqual(t *testing.T) {
	assert.True(t, DefaultEqual(nil, nil))
	assert.False(t, DefaultEqual(nil, "a"))
	assert.True(t, DefaultEqual("a", "a"))
	assert.False(t, DefaultEqual("a", 1))
	assert.True(t, DefaultEqual([]int{1}, []int{1}))
}

func TestActionTypeNames(t *testing.T) {
	for _, at := range ActionTypes() {
		parsed, ok := ParseActionType(at.String())
		require.True(t, ok, at.String())
		assert.Equal(t, at, parsed)
	}
	parsed, ok := ParseActionType("inputkeydownesc")
	assert.True(t, ok)
	assert.Equal(t, InputKeydownEsc, parsed)

	_, ok = ParseActionType("Submit")
	assert.False(t, ok)
	assert.Equal(t, "ActionType(42)", ActionType(42).String())
	assert.Len(t, ActionTypes(), 13)
}

func TestPayloadString(t *testing.T) {
	p := Payload{IsOpen: Set(false), InputValue: Set("Thor")}
	assert.Equal(t, `{open=false input="Thor"}`, p.String())
	assert.True(t, Payload{}.Empty())
	assert.False(t, p.Empty())
}
