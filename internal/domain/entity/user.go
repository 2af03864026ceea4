package entity

import "time"

// User operador de la panadería. Sin roles: todo usuario autenticado accede a todo.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
