package order

// Status follows the vocabulary the admin panel uses. Orders are created
// Pending; everything after that is the admin's doing.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusCompleted  Status = "Completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusCompleted:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}
