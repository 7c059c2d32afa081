package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"kessoku/utils"
)

func newSearchCmd(app *App) *cobra.Command {
	var city, instrument string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search studios by city and instrument",
		RunE: func(cmd *cobra.Command, args []string) error {
			if city != "" && !utils.ValidCityCode(city) {
				return fmt.Errorf("unknown city code %q", city)
			}
			if instrument != "" && !utils.ValidInstrumentCode(instrument) {
				return fmt.Errorf("unknown instrument code %q", instrument)
			}

			stores, err := app.Client.GetStores(cmd.Context(), city, instrument)
			if err != nil {
				return err
			}
			if len(stores) == 0 {
				cmd.Println("No studios matched.")
				return nil
			}

			for _, store := range stores {
				cmd.Printf("%s  %s\n", store.ID, store.Name)
				cmd.Printf("    %s  %s\n", store.Address, store.Phone)
				for _, class := range store.Classes {
					names := make([]string, 0, len(class.Instruments))
					for _, code := range class.Instruments {
						names = append(names, utils.InstrumentName(code))
					}
					cmd.Printf("    - %s (%s)\n", class.Name, strings.Join(names, ", "))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&city, "city", "", "city code, e.g. C01")
	cmd.Flags().StringVar(&instrument, "instrument", "", "instrument code, e.g. DRUMS")
	return cmd
}
