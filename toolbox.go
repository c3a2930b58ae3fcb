package basecamp

// A Toolbox groups the developer links every page lists
// outside of Production.
type Toolbox []Tool

// NewToolbox constructs the Toolbox pages list in env.
//
// Actions without a URL are dropped, then Tools left without actions.
// In Production, NewToolbox returns an empty Toolbox whatever tools holds.
func NewToolbox(env Environment, tools ...Tool) Toolbox {
	tb := make(Toolbox, 0, len(tools))
	if env.IsProduction() {
		return tb
	}

	for _, tool := range tools {
		actions := make([]ToolAction, 0, len(tool.Actions))
		for _, a := range tool.Actions {
			if a.URL != "" {
				actions = append(actions, a)
			}
		}

		tool.Actions = actions
		if tool.Render() {
			tb = append(tb, tool)
		}
	}

	return tb
}

// Len counts the actions across all Tools.
func (tb Toolbox) Len() int {
	var n int
	for _, tool := range tb {
		n += len(tool.Actions)
	}

	return n
}

// A Tool is a titled group of actions, such as those inspecting routes.
type Tool struct {
	Actions []ToolAction `json:"actions"`
	Title   string       `json:"title"`
}

// Render asserts whether the Tool has an action to link.
func (t Tool) Render() bool { return len(t.Actions) > 0 }

// A ToolAction links a developer endpoint, such as /api/routes.
type ToolAction struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
