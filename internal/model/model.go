package model

// User is the data structure for one submission of the registration form.
// All fields are optional and default to the empty string.
type User struct {
	FirstName string `form:"firstName" json:"firstName" db:"first_name"`
	LastName  string `form:"lastName"  json:"lastName"  db:"last_name"`
	Email     string `form:"email"     json:"email"     db:"email"`
	Phone     string `form:"phone"     json:"phone"     db:"phone"`
}
