package cmd

import (
	"github.com/spf13/cobra"

	"kessoku/services/booking"
	"kessoku/utils"
)

func newStoreCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "store <storeId>",
		Short: "Show a studio's rooms and slot availability",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session := booking.NewStoreDetailSession(app.Client)
			store, err := session.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			cmd.Printf("%s\n%s  %s  %s\n", store.Name, store.Address, store.Phone, store.Email)
			for _, class := range store.Classes {
				cmd.Printf("\n%s  %s\n", class.ID, class.Name)
				for _, code := range class.Instruments {
					cmd.Printf("  instrument: %s\n", utils.InstrumentName(code))
				}
				for _, day := range class.OrderDateTimeList {
					cmd.Printf("  %s:", day.Date)
					for _, t := range day.TimeList {
						state := session.SlotState(class.ID, day.Date, t)
						switch state {
						case booking.SlotBooked:
							cmd.Printf("  [%s x]", t)
						default:
							cmd.Printf("  [%s  ]", t)
						}
					}
					cmd.Println()
				}
			}
			return nil
		},
	}
}
