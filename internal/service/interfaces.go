package service

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// BookingServiceInterface defines the interface for the booking allocation workflow
type BookingServiceInterface interface {
	CheckAvailability(ctx context.Context, req *AvailabilityRequest) ([]CrewAvailability, error)
	CreateBooking(ctx context.Context, req *CreateBookingRequest) (*BookingResponse, error)
	RescheduleBooking(ctx context.Context, id uint, req *RescheduleBookingRequest) (*BookingResponse, error)
	GetBooking(ctx context.Context, id uint) (*BookingResponse, error)
}

// RosterServiceInterface defines the interface for roster setup and listing
type RosterServiceInterface interface {
	Setup(ctx context.Context, req *RosterSetupRequest) (*RosterResponse, error)
	SeedDefault(ctx context.Context) (bool, error)
	ListTeams(ctx context.Context) (*RosterResponse, error)
}
