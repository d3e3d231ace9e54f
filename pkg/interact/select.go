package interact

import "github.com/kiln-ui/kiln/pkg/tree"

// toggleOption implements option-click behavior exactly per
// original_source/src/controls/select.rs's update_option_selected: in
// single mode, selecting an option deselects every sibling option and fires
// the parent select's "change" handler with the option's value; in multiple
// mode, it toggles only the clicked option and fires "change" with the
// array of every currently-selected sibling's value.
func toggleOption(tr *tree.Tree, option *tree.Element) (Call, bool, error) {
	parentID, err := tr.Parent(option.ID)
	if err != nil {
		return Call{}, false, nil
	}
	parent, err := tr.Get(parentID)
	if err != nil {
		return Call{}, false, nil
	}
	if parent.State.Behavior.Kind != tree.BehaviorSelect && parent.State.Behavior.Kind != tree.BehaviorMultiSelect {
		return Call{}, false, nil
	}

	value := option.Attrs["value"]

	if parent.State.Behavior.Kind == tree.BehaviorMultiSelect {
		selecting := !optionSelected(option)
		setOptionSelected(option, selecting)

		values := map[string]struct{}{}
		siblings, err := tr.Children(parentID)
		if err == nil {
			for _, sib := range siblings {
				if sib.Tag != "option" {
					continue
				}
				if optionSelected(sib) {
					values[sib.Attrs["value"]] = struct{}{}
				}
			}
		}
		parent.State.Behavior.Values = values

		arr := make([]any, 0, len(values))
		for v := range values {
			arr = append(arr, v)
		}
		return fireChange(parent, arr)
	}

	// Single-selection mode: selecting this option deselects every sibling.
	siblings, err := tr.Children(parentID)
	if err == nil {
		for _, sib := range siblings {
			if sib.Tag != "option" {
				continue
			}
			setOptionSelected(sib, sib.ID == option.ID)
		}
	}
	parent.State.Behavior.Value = value
	return fireChange(parent, value)
}

func optionSelected(option *tree.Element) bool {
	_, ok := option.Attrs["selected"]
	return ok
}

func setOptionSelected(option *tree.Element, selected bool) {
	option.State.Checked = selected
	if selected {
		option.Attrs["selected"] = ""
	} else {
		delete(option.Attrs, "selected")
	}
}

// fireChange assembles the select's outbound "change" Call, if it declared
// one. The argument is the freshly computed value/values, not resolved
// through the model — select state lives on the element, not the binder.
func fireChange(sel *tree.Element, arg any) (Call, bool, error) {
	h, ok := sel.Handlers["change"]
	if !ok {
		return Call{}, false, nil
	}
	return Call{Function: h.Function, Arguments: []any{arg}}, true, nil
}
