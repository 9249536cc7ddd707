package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/frahmantamala/employee-records/internal/employee"
	employeeSQLite "github.com/frahmantamala/employee-records/internal/employee/sqlite"
	"github.com/frahmantamala/employee-records/pkg/logger"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the store with the example employee records",
	Long:  `Populate an empty store with the example employee records. Use --clear to discard the current collection first.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		logger.Init(cfg.Observability.Logging.Level, cfg.Observability.Logging.Format)

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer closeDB(db)

		storage := employeeSQLite.NewStorage(db)
		if err := storage.Migrate(); err != nil {
			log.Fatalf("failed to prepare storage: %v", err)
		}

		if clearData {
			if err := storage.Clear(); err != nil {
				log.Fatalf("failed to clear stored collection: %v", err)
			}
			fmt.Println("Cleared stored employee collection")
		}

		store := employee.NewStore(storage, logger.LoggerWrapper())
		records, err := store.Initialize()
		if err != nil {
			log.Fatalf("failed to initialize store: %v", err)
		}

		fmt.Printf("Store ready with %d employees\n", len(records))
	},
}
