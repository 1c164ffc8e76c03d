package domain

// User represents a registered user of the API.
//
// The ID is assigned by the store on creation and is never supplied by
// clients. Field constraints (name length, email syntax, age bounds) are
// enforced on the request schemas in the api package before a User is
// ever constructed.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
}
