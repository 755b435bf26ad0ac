package booking

type Status string

const (
	StatusConfirmed Status = "confirmed"
)

func InitialStatus() Status {
	return StatusConfirmed
}
