package events

// Topic constants for domain events emitted by the restaurant backend.
const (
	TopicOrderLinePriced     = "order_line.priced"
	TopicInvoiceCreated      = "invoice.created"
	TopicNotificationCreated = "notification.created"
)

// DefaultTopics returns every topic the bus emits.
func DefaultTopics() []string {
	return []string{
		TopicOrderLinePriced,
		TopicInvoiceCreated,
		TopicNotificationCreated,
	}
}
