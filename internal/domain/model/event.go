package model

// ToolInput carries the subset of tool arguments used to describe an activity.
type ToolInput struct {
	FilePath string `json:"file_path"`
	Command  string `json:"command"`
}

// HookEvent is one tool invocation reported by the agent runtime. The
// hookinput adapter fills it after validating the payload shape.
type HookEvent struct {
	EventName string
	ToolName  string
	ToolInput ToolInput
}

// Summary is the short human-readable description of a hook event.
type Summary struct {
	Title   string
	Details string
}

// Activity gathers everything needed to render a notification.
type Activity struct {
	EventName string
	ToolName  string
	AgentName string
	Title     string
	Details   string
	URL       string
	FilePath  string
	Command   string
}
