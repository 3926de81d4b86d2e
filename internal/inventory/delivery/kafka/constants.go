package kafka

const (
	EventReceptionCreated = "reception.created"
	EventDeliveryCreated  = "delivery.created"
)
