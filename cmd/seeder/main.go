package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/tamathecxder/randomail"

	"github.com/UnknownOlympus/mnemosyne/internal/config"
	"github.com/UnknownOlympus/mnemosyne/internal/metrics"
	"github.com/UnknownOlympus/mnemosyne/internal/models"
	"github.com/UnknownOlympus/mnemosyne/internal/repository"
	"github.com/UnknownOlympus/mnemosyne/internal/services/employees"
)

const seedTimeout = time.Minute

var (
	firstNames  = []string{"Ada", "Grace", "Alan", "Edsger", "Barbara", "Donald", "Margaret", "Ken", "Frances", "Dennis"}
	surnames    = []string{"Lovelace", "Hopper", "Turing", "Dijkstra", "Liskov", "Knuth", "Hamilton", "Thompson"}
	positions   = []string{"engineer", "analyst", "designer", "manager", "technician"}
	departments = []string{"R&D", "Operations", "Finance", "Support", "Sales"}
)

func main() {
	count := flag.Int("count", 50, "Number of random employees to insert")
	flag.Parse()

	if *count <= 0 {
		log.Fatalf("count must be positive, got %d", *count)
	}

	cfg := config.MustLoad()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	dbpool, err := repository.NewDatabase(ctx,
		cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Dbname)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer dbpool.Close()

	appMetrics := metrics.NewMetrics(prometheus.NewRegistry())
	staff := employees.NewStaff(logger, repository.NewEmployeeRepository(dbpool, appMetrics), appMetrics)

	saved, err := staff.CreateBulk(ctx, randomEmployees(*count))
	if err != nil {
		log.Fatalf("Seeding failed, nothing was stored: %v", err)
	}

	logger.InfoContext(ctx, "Seeding completed", "inserted", len(saved),
		"first_id", saved[0].ID, "last_id", saved[len(saved)-1].ID)
}

func randomEmployees(count int) []models.Employee {
	staff := make([]models.Employee, 0, count)
	managers := make([]string, 0, 3)

	for index := range count {
		name := pick(firstNames)
		surname := pick(surnames)
		hired := randomDate(2005, 2024)

		employee := models.Employee{
			Name:             models.StringPtr(name),
			Surname:          models.StringPtr(surname),
			Email:            models.StringPtr(randomail.GenerateRandomEmail()),
			Phone:            models.StringPtr(fmt.Sprintf("+380%09d", rand.IntN(1_000_000_000))),
			DateOfBirth:      randomDate(1960, 2000),
			DateOfEmployment: hired,
			Position:         models.StringPtr(pick(positions)),
			Department:       models.StringPtr(pick(departments)),
		}
		if len(managers) > 0 {
			employee.Manager = models.StringPtr(pick(managers))
		}
		if index%10 == 9 {
			employee.DateOfDismissal = models.DateOf(hired.Time.AddDate(rand.IntN(5)+1, 0, 0))
		}
		if len(managers) < cap(managers) {
			managers = append(managers, name+" "+surname)
		}

		staff = append(staff, employee)
	}

	return staff
}

func pick(values []string) string {
	return values[rand.IntN(len(values))]
}

func randomDate(fromYear, toYear int) models.Date {
	start := time.Date(fromYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(toYear, time.December, 31, 0, 0, 0, 0, time.UTC)
	days := int(end.Sub(start).Hours() / 24)

	return models.DateOf(start.AddDate(0, 0, rand.IntN(days+1)))
}
