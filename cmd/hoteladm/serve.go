package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Alp4ka/hotelpager/internal/server"
	"github.com/Alp4ka/hotelpager/model"
)

func (a *app) serve() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the backend API over PostgreSQL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Info().Msg("initializing database connection...")
			db, err := gorm.Open(postgres.Open(a.cfg.PostgresDSN), &gorm.Config{
				Logger: logger.Default.LogMode(logger.Warn),
			})
			if err != nil {
				log.Error().Err(err).Msg("could not initialize the database connection")
				return err
			}

			if migrate {
				log.Info().Msg("migrating schema...")
				err = db.WithContext(cmd.Context()).AutoMigrate(
					&model.Booking{},
					&model.Room{},
					&model.Employee{},
					&model.InventoryItem{},
					&model.Asset{},
					&model.MaintenanceSchedule{},
					&model.WorkSchedule{},
				)
				if err != nil {
					log.Error().Err(err).Msg("could not migrate the schema")
					return err
				}
			}

			service := &server.Service{
				ListenAddress: a.cfg.ListenAddress,
				DB:            db,
				Logger:        log.Logger,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errs := make(chan error, 1)
			go func() {
				log.Info().Str("address", a.cfg.ListenAddress).Msg("starting up the API...")
				if err := service.Startup(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errs <- err
				}
				close(errs)
			}()

			select {
			case err := <-errs:
				if err != nil {
					log.Error().Err(err).Msg("the API service raised an unexpected error")
				}
				return err
			case <-ctx.Done():
			}

			log.Info().Msg("shutting down the API...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			return service.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "create or update the tables before serving")

	return cmd
}
