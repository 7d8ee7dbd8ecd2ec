package domain

import "regexp"

// DeliveryStatus represents the lifecycle state of a delivery.
type DeliveryStatus string

// List of possible delivery statuses
const (
	DeliveryAssigned   DeliveryStatus = "assigned"
	DeliveryInProgress DeliveryStatus = "in_progress"
	DeliveryCompleted  DeliveryStatus = "completed"
	DeliveryCancelled  DeliveryStatus = "cancelled"
)

var allowedStatuses = [...]DeliveryStatus{
	DeliveryAssigned, DeliveryInProgress, DeliveryCompleted, DeliveryCancelled,
}

// ActiveStatuses are the statuses that count towards a driver's load.
var ActiveStatuses = []DeliveryStatus{DeliveryAssigned, DeliveryInProgress}

var transitions = map[DeliveryStatus][]DeliveryStatus{
	DeliveryAssigned:   {DeliveryInProgress, DeliveryCompleted, DeliveryCancelled},
	DeliveryInProgress: {DeliveryCompleted, DeliveryCancelled},
}

// Valid checks if the DeliveryStatus is valid
func (s DeliveryStatus) Valid() bool {
	for _, v := range allowedStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Active reports whether the status counts as pending work for the driver.
func (s DeliveryStatus) Active() bool {
	return s == DeliveryAssigned || s == DeliveryInProgress
}

// CanTransition reports whether a delivery may move from s to next.
func (s DeliveryStatus) CanTransition(next DeliveryStatus) bool {
	for _, v := range transitions[s] {
		if v == next {
			return true
		}
	}
	return false
}

// rePhone is a regex to validate phone numbers
var rePhone = regexp.MustCompile(`^\+?[0-9]{10,13}$`)

// ValidatePhone validates the phone number format
func ValidatePhone(s string) bool {
	return rePhone.MatchString(s)
}
