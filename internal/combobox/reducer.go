package combobox

// Reducer may rewrite the payload of a computed action before it is merged.
// It must return an action of the same type and must not mutate state.
type Reducer func(s State, a Action) Action

// IdentityReducer returns a unchanged.
func IdentityReducer(_ State, a Action) Action {
	return a
}

// ChainReducers runs reducers left to right, feeding each the previous result.
func ChainReducers(reducers ...Reducer) Reducer {
	return func(s State, a Action) Action {
		for _, r := range reducers {
			if r == nil {
				continue
			}
			a = r(s, a)
		}
		return a
	}
}

// PreviewHighlightReducer shows the highlighted item's label in the input
// while navigating with the arrow keys, without touching InputValue. Any
// other action clears the preview.
func PreviewHighlightReducer(visible VisibleFunc, itemToString func(Item) string) Reducer {
	return func(s State, a Action) Action {
		switch a.Type {
		case InputKeydownArrowDown, InputKeydownArrowUp:
			text := ""
			if a.Payload.HighlightedIndex.Set && visible != nil && itemToString != nil {
				items := visible(s.InputValue)
				if i := a.Payload.HighlightedIndex.Value; i >= 0 && i < len(items) {
					text = itemToString(items[i])
				}
			}
			a.Payload.InputText = Set(text)
		default:
			a.Payload.InputText = Set("")
		}
		return a
	}
}

// KeepSelectionOnBlurReducer leaves the committed selection and input alone
// when the input loses focus, so a caller-controlled value survives blur. The
// menu still closes.
func KeepSelectionOnBlurReducer(s State, a Action) Action {
	if a.Type != InputBlur {
		return a
	}
	a.Payload.SelectedItem = Field[Item]{}
	a.Payload.InputValue = Field[string]{}
	return a
}

// HoldHighlightReducer makes the pointer inert: entering or leaving an item
// keeps the current highlight, so only the keyboard moves it.
func HoldHighlightReducer(s State, a Action) Action {
	switch a.Type {
	case ItemMouseEnter, ItemMouseLeave:
		a.Payload.HighlightedIndex = Set(s.HighlightedIndex)
	}
	return a
}

// SuppressCommitReducer drops the whole payload of item clicks and blurs.
// Neither closes the menu nor touches the selection; Enter is the only way
// to commit.
func SuppressCommitReducer(_ State, a Action) Action {
	switch a.Type {
	case ItemMouseClick, InputBlur:
		a.Payload = Payload{}
	}
	return a
}

// ControlledReducer is the full caller-controlled hook: arrow navigation
// previews the highlighted label, hovering keeps the highlight and clicks
// and blurs change nothing.
func ControlledReducer(visible VisibleFunc, itemToString func(Item) string) Reducer {
	return ChainReducers(
		PreviewHighlightReducer(visible, itemToString),
		HoldHighlightReducer,
		SuppressCommitReducer,
	)
}
