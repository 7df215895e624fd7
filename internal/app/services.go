package app

import (
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/Andyrulz/clinicmanagement-sub000/config"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/service/availability"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/service/booking"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/service/patient"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/service/schedule"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAvailabilityService,
		ProvideScheduleService,
		ProvideBookingService,
		ProvidePatientService,
	),
)

func ProvideAvailabilityService(db *repo.Client, nc *nats.Conn) availability.Service {
	return availability.New(db, nc)
}

func ProvideScheduleService(db *repo.Client, rdb *redis.Client, cfg *config.Config) schedule.Service {
	return schedule.New(db, rdb, cfg.Scheduling)
}

func ProvideBookingService(db *repo.Client, nc *nats.Conn) booking.Service {
	return booking.New(db, nc)
}

func ProvidePatientService(db *repo.Client) patient.Service {
	return patient.New(db)
}
