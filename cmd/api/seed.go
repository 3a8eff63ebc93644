package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"realestate-backend/internal/adapter/repository/gormrepo"
	"realestate-backend/internal/infrastructure/db"
	"realestate-backend/internal/usecase/house"
)

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert randomized available houses numbered after the current maximum",
		RunE: func(cmd *cobra.Command, args []string) error {
			count, _ := cmd.Flags().GetInt("count")
			seed, _ := cmd.Flags().GetUint64("seed")
			if seed == 0 {
				seed = uint64(time.Now().UnixNano())
			}

			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer log.Sync()

			gdb, err := db.OpenGorm(cfg, log)
			if err != nil {
				return err
			}
			if err := db.Migrate(gdb); err != nil {
				return err
			}

			uc := house.NewUsecase(gormrepo.NewHouseRepository(gdb), gormrepo.NewGormUoW(gdb))
			created, err := uc.Seed(cmd.Context(), count, rand.New(rand.NewPCG(seed, seed>>1)))
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			log.Info("seed: done", "count", len(created), "first", created[0].HouseNumber, "last", created[len(created)-1].HouseNumber)
			return nil
		},
	}
	cmd.Flags().Int("count", 20, "number of houses to create")
	cmd.Flags().Uint64("seed", 0, "random seed (0 = time based)")
	return cmd
}
