package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"suredoor/config"
	"suredoor/config/setup"
	"suredoor/database"
	"suredoor/models"
	"suredoor/services"
	"suredoor/session"

	"github.com/spf13/cobra"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage the admin account",
}

var (
	adminEmail    string
	adminPassword string
)

var setPasswordCmd = &cobra.Command{
	Use:   "set-password",
	Short: "Set the admin email and password, signing out every session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if adminEmail == "" || adminPassword == "" {
			return errors.New("--email and --password are required")
		}

		db, err := setup.InitDatabase(config.AppConfig.DBPath, slog.Default())
		if err != nil {
			return err
		}
		defer db.Close()

		repo := database.NewRepository(db)
		store := session.NewStore(repo, config.AppConfig.SessionTTL)
		auth := services.NewAuthService(repo, store)

		previous, err := repo.GetSetting(models.SettingAdminEmail)
		if err != nil {
			return err
		}

		if err := auth.SetCredentials(adminEmail, adminPassword); err != nil {
			return err
		}

		emails := []string{strings.ToLower(strings.TrimSpace(adminEmail))}
		if previous != nil {
			emails = append(emails, previous.Value)
		}
		for _, email := range emails {
			if err := store.DeleteAllFor(email); err != nil {
				return err
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Admin credentials updated for %s\n", adminEmail)
		return nil
	},
}

func init() {
	setPasswordCmd.Flags().StringVar(&adminEmail, "email", "", "admin email address")
	setPasswordCmd.Flags().StringVar(&adminPassword, "password", "", "new admin password (8 to 72 characters)")
	adminCmd.AddCommand(setPasswordCmd)
	rootCmd.AddCommand(adminCmd)
}
