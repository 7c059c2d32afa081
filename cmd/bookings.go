package cmd

import (
	"github.com/spf13/cobra"

	"kessoku/models"
)

func newBookingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "Manage your bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			bookings, err := app.Client.GetMyBookings(cmd.Context())
			if err != nil {
				return err
			}
			if len(bookings) == 0 {
				cmd.Println("No bookings.")
				return nil
			}
			for _, b := range bookings {
				status := models.BookStatusMap[b.BookStatus]
				if status == "" {
					status = b.BookStatus
				}
				cmd.Printf("%s  %s @ %s  %s - %s  %.0f  %s\n",
					b.BookID, b.ClassName, b.StoreName, b.BookStartDate, b.BookEndDate, b.Price, status)
			}
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "cancel <bookId>",
		Short: "Cancel a booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Client.CancelBooking(cmd.Context(), args[0]); err != nil {
				return err
			}
			cmd.Println("Booking cancelled.")
			return nil
		},
	})
	return cmd
}
