package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/Bar-innutshell/Management-Karyawan/internal"
	"github.com/spf13/cobra"
)

// dbCheckCmd opens a raw connection and prints what it finds, for verifying
// a deployment's database wiring without starting the server.
var dbCheckCmd = &cobra.Command{
	Use:   "dbcheck",
	Short: "Verify database connectivity and print server info",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("connection failed: %v", err)
		}
		defer db.Close()

		ctx, cancel := internal.WithTimeout(context.Background(), 0)
		defer cancel()

		var version string
		if err := db.GetContext(ctx, &version, "SELECT version()"); err != nil {
			log.Fatalf("version query failed: %v", err)
		}
		fmt.Println("Connected.")
		fmt.Println("Server:", version)

		for _, table := range []string{"roles", "shifts", "users"} {
			var count int64
			if err := db.GetContext(ctx, &count, fmt.Sprintf("SELECT COUNT(*) FROM %s", table)); err != nil {
				fmt.Printf("%-8s (missing: %v)\n", table, err)
				continue
			}
			fmt.Printf("%-8s %d rows\n", table, count)
		}
	},
}
