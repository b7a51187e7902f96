// Package main VenueBook booking-management API
//
//	@title			VenueBook API
//	@version		1.0.0
//	@description	VenueBook is a booking-management platform for event venues
//
//	@contact.name	API Support
//	@contact.email	support@venuebook.io
//
//	@host			localhost:3000
//	@BasePath		/api
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import "github.com/venuebook/venuebook/internal"

//go:generate swag init --parseDependency --outputTypes go -g ./main.go -o ./internal/server/docs

func main() {
	internal.Run()
}
