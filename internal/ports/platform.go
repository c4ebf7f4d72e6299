package ports

// InboundMessage is one message received from a social platform, reduced to
// what the correction pipeline needs. Text is plain display text: the adapter
// strips platform markup, links, and media references before handing it over.
//
// ID must be unique per bot identity across the platform. Platforms whose
// message ids are only scoped to a conversation (Telegram) fold the
// conversation id in.
type InboundMessage struct {
	ID     int64
	Author string
	Text   string
}

// Sender posts a reply to an inbound message and returns the platform id of
// the posted reply. Implementations own all network I/O and blocking.
type Sender interface {
	SendReply(msg InboundMessage, text string) (int64, error)
}

// Handler consumes inbound messages. Platform adapters call it once per
// message; raw is the adapter's original message payload for archival and
// may be nil. Matching and send failures are absorbed and logged inside the
// handler; a non-nil error signals an unrecoverable condition (reply state
// can no longer be persisted) and adapters must stop the loop and surface it.
type Handler interface {
	HandleMessage(sender Sender, msg InboundMessage, raw []byte) error
}
