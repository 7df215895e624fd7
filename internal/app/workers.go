package app

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/Andyrulz/clinicmanagement-sub000/config"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo"
	entmember "github.com/Andyrulz/clinicmanagement-sub000/internal/repo/clinicmember"
	entvisit "github.com/Andyrulz/clinicmanagement-sub000/internal/repo/visit"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/service/schedule"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/slot"
	svcsms "github.com/Andyrulz/clinicmanagement-sub000/pkg/sms"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc          fx.Lifecycle
	NC          *nats.Conn
	DB          *repo.Client
	ScheduleSvc schedule.Service
	SMS         *svcsms.Client
	Cfg         *config.Config
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startCacheWorker(p.NC, p.ScheduleSvc)
			startSMSWorker(p.NC, p.DB, p.SMS, p.Cfg)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// cache_worker
// ---------------------------------------------------------------------------

// startCacheWorker drops cached doctor schedules whenever availability or
// bookings change. Every instance subscribes, so a multi-node deployment
// stays coherent without sharing state beyond Redis itself.
func startCacheWorker(nc *nats.Conn, scheduleSvc schedule.Service) {
	_, err := nc.Subscribe("clinic.schedule.changed.*", func(msg *nats.Msg) {
		parts := strings.Split(msg.Subject, ".")
		if len(parts) < 4 {
			return
		}
		clinicID, err := uuid.Parse(parts[3])
		if err != nil {
			return
		}
		doctorID, err := uuid.Parse(strings.TrimSpace(string(msg.Data)))
		if err != nil {
			return
		}

		scheduleSvc.Invalidate(context.Background(), clinicID, doctorID)
		slog.Debug("cache_worker: schedule invalidated", "clinic_id", clinicID, "doctor_id", doctorID)
	})
	if err != nil {
		slog.Error("cache_worker: subscribe schedule.changed failed", "err", err)
	}

	slog.Info("cache_worker: started")
}

// ---------------------------------------------------------------------------
// sms_worker
// ---------------------------------------------------------------------------

func startSMSWorker(nc *nats.Conn, db *repo.Client, smsCli *svcsms.Client, cfg *config.Config) {
	templateID := cfg.SMS.SMSIR.ReminderTemplateID

	_, err := nc.Subscribe("clinic.visit.created.*", func(msg *nats.Msg) {
		sendVisitSMS(db, smsCli, templateID, msg)
	})
	if err != nil {
		slog.Error("sms_worker: subscribe visit.created failed", "err", err)
	}

	_, err = nc.Subscribe("clinic.visit.moved.*", func(msg *nats.Msg) {
		sendVisitSMS(db, smsCli, templateID, msg)
	})
	if err != nil {
		slog.Error("sms_worker: subscribe visit.moved failed", "err", err)
	}

	slog.Info("sms_worker: started")
}

func sendVisitSMS(db *repo.Client, smsCli *svcsms.Client, templateID string, msg *nats.Msg) {
	if !smsCli.IsEnabled() || templateID == "" {
		return
	}

	visitID, err := uuid.Parse(strings.TrimSpace(string(msg.Data)))
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	v, err := db.Visit.Query().
		Where(entvisit.ID(visitID)).
		Only(ctx)
	if err != nil {
		slog.Warn("sms_worker: visit not found", "id", visitID, "err", err)
		return
	}

	p, err := db.Patient.Get(ctx, v.PatientID)
	if err != nil {
		slog.Warn("sms_worker: patient not found", "id", v.PatientID, "err", err)
		return
	}
	if p.Phone == nil || *p.Phone == "" {
		return
	}

	doctor, err := db.ClinicMember.Query().
		Where(entmember.ID(v.DoctorID)).
		Only(ctx)
	if err != nil {
		slog.Warn("sms_worker: doctor not found", "id", v.DoctorID, "err", err)
		return
	}

	err = smsCli.SendVisitReminder(ctx, *p.Phone, templateID, svcsms.ReminderParams{
		PatientName: p.FullName,
		DoctorName:  doctor.DisplayName,
		Date:        v.VisitDate.Format(time.DateOnly),
		Time:        slot.TimeOfDay(v.VisitTime).String(),
	})
	if err != nil {
		slog.Warn("sms_worker: send failed", "visit_id", visitID, "err", err)
		return
	}
	slog.Debug("sms_worker: reminder sent", "visit_id", visitID)
}
