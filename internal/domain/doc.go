// Package domain defines the core business entities.
package domain
