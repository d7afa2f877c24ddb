package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	domainGoat "github.com/marai-app/marai/internal/domain/goat"
	"github.com/marai-app/marai/internal/infrastructure/config"
	"github.com/marai-app/marai/internal/infrastructure/database"
	"github.com/marai-app/marai/internal/infrastructure/repository"
	"github.com/marai-app/marai/internal/shared/constants"
	"github.com/marai-app/marai/internal/shared/logger"
	"github.com/marai-app/marai/internal/shared/scope"
)

var (
	env      string
	seedFile string
)

type breedSeed struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type seedData struct {
	Breeds []breedSeed `yaml:"breeds"`
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed reference data",
		Long:  `Load the breed catalog from a YAML file into every tenant. Existing entries are skipped.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().StringVarP(&seedFile, "file", "f", "./configs/seeds.yaml", "Path to the seed data file")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, env != constants.EnvProduction); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()

	raw, err := os.ReadFile(seedFile)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var data seedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}
	if len(data.Breeds) == 0 {
		return fmt.Errorf("seed file contains no breeds")
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	tenantRepo := repository.NewTenantRepository(database.Get(), log)
	breedRepo := repository.NewBreedRepository(database.Get(), log)

	tenants, err := tenantRepo.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list tenants: %w", err)
	}
	if len(tenants) == 0 {
		fmt.Println("No tenants registered yet, nothing to seed")
		return nil
	}

	// Breed names are matched case-sensitively, so normalize casing
	// before lookup to keep reruns idempotent.
	titler := cases.Title(language.English)
	for i := range data.Breeds {
		data.Breeds[i].Name = titler.String(data.Breeds[i].Name)
	}

	created, skipped := 0, 0
	for _, t := range tenants {
		// Breeds are tenant-scoped, so each tenant gets its own copy of
		// the catalog.
		ctx := scope.WithScope(context.Background(), scope.Scope{TenantID: t.ID()})

		for _, seed := range data.Breeds {
			existing, err := breedRepo.GetByName(ctx, seed.Name)
			if err != nil {
				return fmt.Errorf("failed to check breed %q: %w", seed.Name, err)
			}
			if existing != nil {
				skipped++
				continue
			}

			entity, err := domainGoat.NewBreed(seed.Name, seed.Description)
			if err != nil {
				return fmt.Errorf("invalid breed %q: %w", seed.Name, err)
			}
			if err := breedRepo.Create(ctx, entity); err != nil {
				return fmt.Errorf("failed to create breed %q: %w", seed.Name, err)
			}
			created++
		}
	}

	log.Infow("seed completed", "tenants", len(tenants), "created", created, "skipped", skipped)
	fmt.Printf("Seeded %d breeds across %d tenants (%d already present)\n", created, len(tenants), skipped)
	return nil
}
