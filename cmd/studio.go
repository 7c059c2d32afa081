package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"kessoku/models"
)

func newStudioCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "studio",
		Short: "Owner tools: manage your listing, rooms, and orders",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show your studio listing",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.Studio.Listing(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Printf("%s\n%s  %s  %s\n", store.Name, store.Address, store.Phone, store.Email)
			for _, class := range store.Classes {
				cmd.Printf("  %s  %s (%s)\n", class.ID, class.Name, strings.Join(class.Instruments, ", "))
			}
			return nil
		},
	}

	var update models.StudioUpdate
	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Update listing details (only the given flags change)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Studio.UpdateListing(cmd.Context(), update); err != nil {
				return err
			}
			cmd.Println("Listing updated.")
			return nil
		},
	}
	updateCmd.Flags().StringVar(&update.Name, "name", "", "studio name")
	updateCmd.Flags().StringVar(&update.Address, "address", "", "address")
	updateCmd.Flags().StringVar(&update.Phone, "phone", "", "phone number")
	updateCmd.Flags().StringVar(&update.Email, "email", "", "contact email")
	updateCmd.Flags().StringVar(&update.Description, "description", "", "description")

	var roomInput models.ClassInput
	addRoom := &cobra.Command{
		Use:   "add-room",
		Short: "Add a rehearsal room",
		RunE: func(cmd *cobra.Command, args []string) error {
			class, err := app.Studio.AddRoom(cmd.Context(), roomInput)
			if err != nil {
				return err
			}
			cmd.Printf("Room created: %s\n", class.ID)
			return nil
		},
	}
	addRoom.Flags().StringVar(&roomInput.Name, "name", "", "room name")
	addRoom.Flags().StringVar(&roomInput.Description, "description", "", "room description")
	addRoom.Flags().StringSliceVar(&roomInput.Instruments, "instruments", nil, "instrument codes")

	var updInput models.ClassInput
	updateRoom := &cobra.Command{
		Use:   "update-room <classId>",
		Short: "Update a rehearsal room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Studio.UpdateRoom(cmd.Context(), args[0], updInput); err != nil {
				return err
			}
			cmd.Println("Room updated.")
			return nil
		},
	}
	updateRoom.Flags().StringVar(&updInput.Name, "name", "", "room name")
	updateRoom.Flags().StringVar(&updInput.Description, "description", "", "room description")
	updateRoom.Flags().StringSliceVar(&updInput.Instruments, "instruments", nil, "instrument codes")

	removeRoom := &cobra.Command{
		Use:   "remove-room <classId>",
		Short: "Remove a rehearsal room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Studio.RemoveRoom(cmd.Context(), args[0]); err != nil {
				return err
			}
			cmd.Println("Room removed.")
			return nil
		},
	}

	orders := &cobra.Command{
		Use:   "orders",
		Short: "List orders against your rooms",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Studio.Orders(cmd.Context())
			if err != nil {
				return err
			}
			if len(list) == 0 {
				cmd.Println("No orders.")
				return nil
			}
			for _, o := range list {
				status := models.BookStatusMap[o.BookStatus]
				if status == "" {
					status = o.BookStatus
				}
				cmd.Printf("%s  %s  %s %s  %s  %s\n",
					o.BookID, o.ClassName, o.BookDate, strings.Join(o.Times, ","), o.UserName, status)
			}
			return nil
		},
	}

	approve := &cobra.Command{
		Use:   "approve <bookId>",
		Short: "Approve an order in review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Studio.ApproveOrder(cmd.Context(), args[0]); err != nil {
				return err
			}
			cmd.Println("Order approved.")
			return nil
		},
	}

	reject := &cobra.Command{
		Use:   "reject <bookId>",
		Short: "Reject an order in review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Studio.RejectOrder(cmd.Context(), args[0]); err != nil {
				return err
			}
			cmd.Println("Order rejected.")
			return nil
		},
	}

	cmd.AddCommand(show, updateCmd, addRoom, updateRoom, removeRoom, orders, approve, reject)
	return cmd
}
