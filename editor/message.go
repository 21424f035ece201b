package editor

type MessageType int

const (
	_ MessageType = iota
	MsgColorSelected
	MsgCleared
	MsgEraserOn
	MsgEraserOff
	MsgSaveUnsupported
)

func (mt MessageType) String() string {
	switch mt {
	case MsgColorSelected:
		return "Color Selected"
	case MsgCleared:
		return "Cleared"
	case MsgEraserOn:
		return "Eraser On"
	case MsgEraserOff:
		return "Eraser Off"
	case MsgSaveUnsupported:
		return "Save Unsupported"
	default:
		return "Unknown"
	}
}

// Message is a status notification for the host's HUD. The editor queues
// messages synchronously inside the event that produced them; the host
// drains the queue once per frame with PollMessages.
type Message struct {
	Type MessageType
	Text string
}
