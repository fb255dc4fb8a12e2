package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/Bigyayos/appgolf/internal/courses"
	"github.com/Bigyayos/appgolf/internal/database"
	"github.com/Bigyayos/appgolf/internal/logger"
	"github.com/Bigyayos/appgolf/internal/metrics"
	"github.com/Bigyayos/appgolf/internal/services"
	"github.com/Bigyayos/appgolf/pkg/config"
)

func main() {
	_ = godotenv.Load()

	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "golfctl:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "golfctl",
		Usage: "golf league administration",
		Commands: []*cli.Command{
			newRankCommand(),
			newMigrateCommand(),
			newImportCourseCommand(),
			newCreateAdminCommand(),
		},
	}
}

func newMigrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "database migrations",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "database-url", EnvVars: []string{"DATABASE_URL"}, Required: true},
		},
		Subcommands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply all pending migrations",
				Action: func(c *cli.Context) error {
					url := c.String("database-url")
					if err := database.RunMigrations(url); err != nil {
						return err
					}
					return printVersion(c, url)
				},
			},
			{
				Name:  "down",
				Usage: "roll back migrations",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "steps", Value: 1},
				},
				Action: func(c *cli.Context) error {
					url := c.String("database-url")
					if err := database.RollbackMigrations(url, c.Int("steps")); err != nil {
						return err
					}
					return printVersion(c, url)
				},
			},
			{
				Name:  "status",
				Usage: "print the current schema version",
				Action: func(c *cli.Context) error {
					return printVersion(c, c.String("database-url"))
				},
			},
		},
	}
}

func printVersion(c *cli.Context, url string) error {
	version, dirty, err := database.MigrationVersion(url)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "schema version %d (dirty=%t)\n", version, dirty)
	return nil
}

func newImportCourseCommand() *cli.Command {
	return &cli.Command{
		Name:  "import-course",
		Usage: "read par and ratings from a scorecard page",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "url", Required: true},
			&cli.IntFlag{Name: "rps", Value: 1, Usage: "requests per second"},
		},
		Action: func(c *cli.Context) error {
			client := courses.NewClient(c.Int("rps"))
			defer client.Close()

			info, err := courses.NewImporter(client).Import(c.Context, c.String("url"))
			if err != nil {
				return err
			}

			enc := json.NewEncoder(c.App.Writer)
			enc.SetIndent("", "  ")
			return enc.Encode(info)
		},
	}
}

func newCreateAdminCommand() *cli.Command {
	return &cli.Command{
		Name:  "create-admin",
		Usage: "create a super admin account",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringFlag{Name: "password", Required: true, EnvVars: []string{"ADMIN_PASSWORD"}},
		},
		Action: func(c *cli.Context) error {
			cfg := config.New()
			db, err := database.New(cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer db.Close()

			log := logger.NewSimpleLogger(logger.ParseLevel(cfg.LogLevel))
			svc := services.NewServices(db.DB, cfg, log, metrics.New())

			user, err := svc.Auth.CreateSuperAdmin(c.String("email"), c.String("password"))
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "created super admin %s (%s)\n", user.Email, user.ID)
			return nil
		},
	}
}
