package combokit

// PluginContext is what a plugin sees: the configuration, the model the
// update started from, the original input and the output accumulated so far
type PluginContext[T any] struct {
	Config       Config[T]
	InitialModel Model[T]
	Input        Input[T]
	Output       Output[T]
}

// Plugin is a pure transformer chained after the core reducer. Each plugin
// receives the previous plugin's output and returns a possibly rewritten
// one. Plugins must not call Update again; they only reshape the output
// triple.
type Plugin[T any] func(PluginContext[T]) Output[T]

// PreserveSelections keeps the selection alive across item-list
// replacements. When a SetAllItems message would drop selected items, the
// pre-update selection and input state are reinstated and the missing items
// are appended back onto the candidate list.
func PreserveSelections[T any]() Plugin[T] {
	return func(ctx PluginContext[T]) Output[T] {
		if ctx.Input.Msg == nil || ctx.Input.Msg.Type() != MsgSetAllItems {
			return ctx.Output
		}
		before := ctx.InitialModel.selectedItems
		if len(before) == 0 {
			return ctx.Output
		}

		cfg := ctx.Config
		out := ctx.Output
		next := out.Model

		byID := make(map[string]T, len(next.allItems))
		for _, item := range next.allItems {
			byID[cfg.ItemID(item)] = item
		}

		restored := make([]T, 0, len(before))
		appended := false
		allItems := next.allItems
		for _, s := range before {
			if fresh, ok := byID[cfg.ItemID(s)]; ok {
				restored = append(restored, fresh)
				continue
			}
			// the new list no longer carries this item, put it back
			if !appended {
				allItems = make([]T, len(next.allItems), len(next.allItems)+1)
				copy(allItems, next.allItems)
				appended = true
			}
			allItems = append(allItems, s)
			restored = append(restored, s)
		}

		next.allItems = allItems
		next.selectedItems = restored
		next.inputValue = ctx.InitialModel.inputValue
		next.hasSearched = ctx.InitialModel.hasSearched

		out.Model = next
		out.Events = deriveEvents(ctx.InitialModel, next, !sameIDSet(cfg, ctx.InitialModel.selectedItems, next.selectedItems))
		return out
	}
}

// ToggleOnReselect turns re-choosing the already selected item of a
// single-select into a full unselect, with the input blurred. Without it a
// reselect is a no-op replace.
func ToggleOnReselect[T any]() Plugin[T] {
	return func(ctx PluginContext[T]) Output[T] {
		if ctx.InitialModel.mode.IsMulti() {
			return ctx.Output
		}

		cfg := ctx.Config
		var chosen T
		switch msg := ctx.Input.Msg.(type) {
		case PressedItem[T]:
			chosen = msg.Item
		case PressedEnter:
			item, ok := HighlightedItem(cfg, ctx.InitialModel)
			if !ok {
				return ctx.Output
			}
			chosen = item
		default:
			return ctx.Output
		}

		if !IsItemSelected(cfg, ctx.InitialModel, chosen) {
			return ctx.Output
		}
		if cfg.IsEmptyItem != nil && cfg.IsEmptyItem(chosen) {
			return ctx.Output
		}

		out := ctx.Output
		next := out.Model
		next = unselectItem(cfg, next, chosen)
		if next.searchable {
			next.inputValue = ""
			next.hasSearched = false
		}

		out.Model = next
		out.Effects = append(out.Effects, BlurInput{})
		out.Events = deriveEvents(ctx.InitialModel, next, !sameIDSet(cfg, ctx.InitialModel.selectedItems, next.selectedItems))
		return out
	}
}
