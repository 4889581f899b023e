package domain

// PendingAck marks a downtime record no admin has acknowledged yet.
const PendingAck = "Pending Ack"

// DowntimeCategories are the fixed stoppage labels, in display order.
var DowntimeCategories = []string{
	"Input Delay",
	"Ink Delay",
	"Screen Printing",
	"Glass Cleaning",
	"Correction",
	"Style Change",
	"Trainee",
	"Absent",
}

// IsDowntimeCategory reports whether label is one of DowntimeCategories.
func IsDowntimeCategory(label string) bool {
	for _, c := range DowntimeCategories {
		if c == label {
			return true
		}
	}
	return false
}
