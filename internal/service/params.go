package service

import "time"

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

type ProfileInput struct {
	FirstName string
	LastName  string
	Equipment string
}

type GameInput struct {
	Name        string
	Description string
	Location    string
	StartsAt    time.Time // zero means now
}
