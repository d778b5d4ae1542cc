// Seeds the database with a test account and a batch of generated leads.
// Destructive: wipes the leads and users tables first.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/erino/leadcrm/internal/config"
	"github.com/erino/leadcrm/internal/entity"
	"github.com/erino/leadcrm/internal/infra/database"
)

const (
	testEmail    = "test@erino.io"
	testPassword = "Test_1234"
	leadCount    = 155
)

var (
	firstNames = []string{"Ana", "Bruno", "Carla", "Daniel", "Elena", "Felipe", "Grace", "Henry", "Isabela", "John", "Karen", "Lucas", "Maria", "Nina", "Oscar", "Paula", "Rita", "Samuel", "Tania", "Victor"}
	lastNames  = []string{"Almeida", "Brown", "Costa", "Davis", "Evans", "Ferreira", "Garcia", "Hill", "Ito", "Jones", "Klein", "Lima", "Miller", "Nunes", "Oliveira", "Park", "Reis", "Silva", "Taylor", "Wong"}
	companies  = []string{"Acme Corp", "Bluewave", "Cortex Labs", "DataForge", "Everline", "Fathom Inc", "GridWorks", "Helix Systems", "InfraNova", "Juniper Soft"}
	cities     = []string{"Austin", "Boston", "Chicago", "Denver", "El Paso", "Fresno", "Houston", "Miami", "Phoenix", "Seattle"}
	states     = []string{"TX", "MA", "IL", "CO", "CA", "FL", "AZ", "WA", "NY", "GA"}
)

func main() {
	cfg := config.Load()

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	ctx := context.Background()

	if err := database.RunMigrations(ctx, db); err != nil {
		log.Fatal(err)
	}

	log.Println("Start seeding...")

	if _, err := db.ExecContext(ctx, `DELETE FROM leads`); err != nil {
		log.Fatal(err)
	}
	if _, err := db.ExecContext(ctx, `DELETE FROM users`); err != nil {
		log.Fatal(err)
	}
	log.Println("Cleared existing data.")

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), 10)
	if err != nil {
		log.Fatal(err)
	}

	user := entity.NewUser(testEmail, string(hash))
	userRepo := database.NewUserRepository(db)
	if err := userRepo.Create(ctx, user); err != nil {
		log.Fatal(err)
	}
	log.Printf("Created test user: %s (password: %s)", testEmail, testPassword)

	leadRepo := database.NewLeadRepository(db)
	for i := 0; i < leadCount; i++ {
		if err := leadRepo.Create(ctx, randomLead(i)); err != nil {
			log.Fatal(err)
		}
	}
	log.Printf("Created %d leads.", leadCount)
	log.Println("Seeding finished.")
}

func randomLead(i int) *entity.Lead {
	first := pick(firstNames)
	last := pick(lastNames)

	lead := entity.NewLead(first, last, fmt.Sprintf("%s.%s.%d@example.com", first, last, i))
	lead.Phone = fmt.Sprintf("+1-555-%04d", rand.Intn(10000))
	lead.Company = pick(companies)
	lead.City = pick(cities)
	lead.State = pick(states)
	lead.Source = pick(entity.LeadSources)
	lead.Status = pick(entity.LeadStatuses)
	lead.Score = rand.Intn(101)
	lead.LeadValue = 500 + rand.Float64()*24500
	lead.IsQualified = rand.Intn(2) == 0

	activity := time.Now().Add(-time.Duration(rand.Intn(90*24)) * time.Hour)
	lead.LastActivityAt = &activity

	// Spread creation times over the last year so date filters have data.
	lead.CreatedAt = time.Now().Add(-time.Duration(rand.Intn(365*24)) * time.Hour)
	lead.UpdatedAt = lead.CreatedAt

	return lead
}

func pick(values []string) string {
	return values[rand.Intn(len(values))]
}
