package cmd

import (
	"github.com/spf13/cobra"

	"kessoku/api"
	"kessoku/services/account"
	"kessoku/services/studio"
	"kessoku/utils"
)

// App bundles the wired dependencies the commands run against.
type App struct {
	Client  *api.Client
	Account account.AccountService
	Studio  studio.StudioService
	Session *utils.AuthSession
}

// NewRootCmd builds the command tree.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "kessoku",
		Short:         "Rehearsal room booking client",
		Long:          "Search studios, inspect room availability, and book rehearsal time slots.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newSearchCmd(app),
		newStoreCmd(app),
		newBookCmd(app),
		newBookingsCmd(app),
		newAccountCmd(app),
		newStudioCmd(app),
	)
	return root
}
