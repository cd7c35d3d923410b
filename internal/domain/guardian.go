package domain

// Guardian is an account holder who books parties for their children
type Guardian struct {
	ID         int64
	CustomerID *int64 // nil until the customer record is created
	Email      string
	FirstName  string
	LastName   string
}

// GuestContact holds contact details of an unauthenticated booker
type GuestContact struct {
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	ChildName      string
	ChildBirthDate string // YYYY-MM-DD, optional
}
