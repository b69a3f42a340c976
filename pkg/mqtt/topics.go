package mqtt

import (
	"fmt"
	"strings"
)

// Topic layout for the color temperature agent. Displays are addressed by
// the last topic segment; the agent never owns a timer, so evaluation is
// driven entirely by request messages on the request topic.
const (
	// Inbound
	TopicRequests  = "automation/request/colortemp/+"
	TopicOverrides = "automation/override/colortemp/+"

	// Outbound
	TopicCommandBase = "automation/command/colortemp"
	TopicContextBase = "automation/context/colortemp"
)

// RequestTopic constructs the evaluation request topic for a display
// Pattern: automation/request/colortemp/{display}
func RequestTopic(display string) string {
	return fmt.Sprintf("automation/request/colortemp/%s", display)
}

// CommandTopic constructs the command topic for a display
// Pattern: automation/command/colortemp/{display}
func CommandTopic(display string) string {
	return fmt.Sprintf("%s/%s", TopicCommandBase, display)
}

// ContextTopic constructs the context topic for a display
// Pattern: automation/context/colortemp/{display}
func ContextTopic(display string) string {
	return fmt.Sprintf("%s/%s", TopicContextBase, display)
}

// OverrideTopic constructs the manual override topic for a display
// Pattern: automation/override/colortemp/{display}
func OverrideTopic(display string) string {
	return fmt.Sprintf("automation/override/colortemp/%s", display)
}

// DisplayFromTopic extracts the display segment from any colortemp topic.
// Returns an empty string when the topic does not have the expected
// four-segment shape.
func DisplayFromTopic(topic string) string {
	parts := strings.Split(topic, "/")
	if len(parts) != 4 {
		return ""
	}
	return parts[3]
}
