package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smileworks/dental-clinic-api/internal/booking"
	"github.com/smileworks/dental-clinic-api/internal/db"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("seed starting")

	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		log.Fatal("POSTGRES_DSN is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := db.ConnectPostgres(ctx, dsn)
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	if err := db.Migrate(context.Background(), pool); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	gofakeit.Seed(time.Now().UnixNano())

	if err := seedAppointments(context.Background(), pool, 21); err != nil {
		log.Fatalf("seed appointments: %v", err)
	}

	log.Println("seed complete")
}

// seedAppointments books a random subset of legal slots for each of the next
// `days` clinic days. Occupied slots are left untouched so the seeder can be
// re-run against a live database.
func seedAppointments(ctx context.Context, pool *pgxpool.Pool, days int) error {
	log.Printf("seeding appointments for the next %d days", days)

	complaints := []string{
		"Regular dental checkup",
		"Tooth sensitivity to cold drinks",
		"Persistent toothache on the left side",
		"Bleeding gums while brushing",
		"Chipped front tooth",
		"Wisdom tooth pain",
		"Follow-up after filling",
		"Teeth cleaning and polishing",
		"Bad breath concerns",
		"Loose crown needs attention",
	}
	sexes := []booking.Sex{booking.SexMale, booking.SexFemale, booking.SexOther}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	inserted := 0
	day := time.Now()

	for d := 0; d < days; d++ {
		day = day.AddDate(0, 0, 1)
		if day.Weekday() == time.Sunday {
			continue
		}

		slots := booking.AllSlots
		if day.Weekday() == time.Saturday {
			slots = booking.MorningSlots
		}

		for _, slot := range slots {
			// leave roughly half the slots free for manual testing
			if gofakeit.Bool() {
				continue
			}

			tag, err := tx.Exec(ctx, `
				INSERT INTO appointments (id, name, sex, age, complaint, time_slot, appointment_date, created_at, status)
				VALUES ($1, $2, $3, $4, $5, $6, $7, now(), $8)
				ON CONFLICT (appointment_date, time_slot) DO NOTHING
			`,
				uuid.New(),
				gofakeit.Name(),
				sexes[gofakeit.Number(0, len(sexes)-1)],
				gofakeit.Number(5, 90),
				complaints[gofakeit.Number(0, len(complaints)-1)],
				slot,
				day.Format(booking.DateLayout),
				booking.StatusScheduled,
			)
			if err != nil {
				return err
			}
			inserted += int(tag.RowsAffected())
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	log.Printf("appointments seeded: %d", inserted)
	return nil
}
