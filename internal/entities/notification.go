package entities

type NotificationKind string

const (
	NotificationOrderConfirmation NotificationKind = "order_confirmation"
	NotificationStatusUpdate      NotificationKind = "status_update"
)

func (k NotificationKind) Valid() bool {
	return k == NotificationOrderConfirmation || k == NotificationStatusUpdate
}
