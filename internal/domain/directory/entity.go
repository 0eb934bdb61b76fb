package directory

// User is an intranet directory entry
type User struct {
	ID     int
	Name   string
	Avatar string
}
