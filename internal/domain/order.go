package domain

// Order represents a purchase placed by a user.
//
// UserID references a User by id. The reference is checked against the
// user store when an order is created or fully replaced; it is not a
// standing constraint, so deleting a user leaves its orders in place.
type Order struct {
	ID       int     `json:"id"`
	UserID   int     `json:"user_id"`
	Item     string  `json:"item"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
}
