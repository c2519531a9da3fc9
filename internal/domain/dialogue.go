package domain

// PendingIntent is the single outstanding question the bot has asked a user.
// At most one is active per user; any plain text message consumes it.
type PendingIntent string

const (
	IntentNone            PendingIntent = "none"
	IntentAwaitingInfo    PendingIntent = "awaiting_info"
	IntentAwaitingSetHome PendingIntent = "awaiting_sethome"
	IntentAwaitingCompare PendingIntent = "awaiting_compare"
)

// EventKind tags an inbound transport event.
type EventKind string

const (
	EventCommand EventKind = "command"
	EventText    EventKind = "text"
	EventButton  EventKind = "button"
)

// Event is a transport-independent inbound update.
type Event struct {
	Kind   EventKind
	UserID int64

	// Command name without the leading slash, plus its raw argument string.
	Command string
	Args    string

	// Body of a plain text message.
	Text string

	// Opaque button payload as carried by the pressed button.
	Payload string

	// Sender's display name (username, else first+last), used when saving
	// a home country.
	DisplayName string
}

// Markup selects how the transport should render reply text.
type Markup string

const (
	MarkupPlain Markup = "plain"
	MarkupRich  Markup = "rich"
)

// Button is one selectable choice attached to a reply.
type Button struct {
	Label   string
	Payload string
}

// ReplyPlan describes one outbound reply for the transport to render.
type ReplyPlan struct {
	Text     string
	Markup   Markup
	Buttons  []Button
	ShowMenu bool
}
