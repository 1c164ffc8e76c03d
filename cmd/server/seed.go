package main

import "github.com/phrazzld/orders-api/internal/domain"

// Demo fixture data. In a real deployment this would come from a
// persistence layer; here the stores are reset to these rows on every
// process start.

func seedUsers() []domain.User {
	return []domain.User{
		{ID: 1, Name: "Alice Rahman", Email: "alice@example.com", Age: 28},
		{ID: 2, Name: "Bob Hossain", Email: "bob@example.com", Age: 34},
		{ID: 3, Name: "Charlie Dev", Email: "charlie@example.com", Age: 22},
	}
}

func seedOrders() []domain.Order {
	return []domain.Order{
		{ID: 1, UserID: 1, Item: "Laptop", Quantity: 1, Total: 999.99},
		{ID: 2, UserID: 1, Item: "Mouse", Quantity: 2, Total: 49.98},
		{ID: 3, UserID: 2, Item: "Keyboard", Quantity: 1, Total: 89.99},
	}
}
