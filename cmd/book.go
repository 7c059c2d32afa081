package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"kessoku/services/booking"
)

func newBookCmd(app *App) *cobra.Command {
	var slots []string

	cmd := &cobra.Command{
		Use:   "book <storeId>",
		Short: "Book time slots at a studio",
		Long: `Book one or more time slots. Each --slot takes a classId:date:time
coordinate, e.g. --slot class1:2024-03-20:14:00. Slots already booked
by other users are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(slots) == 0 {
				return booking.ErrEmptyDraft
			}

			session := booking.NewStoreDetailSession(app.Client)
			if _, err := session.Load(cmd.Context(), args[0]); err != nil {
				return err
			}

			for _, slot := range slots {
				classID, date, timeKey, err := parseSlot(slot)
				if err != nil {
					return err
				}
				if session.SlotState(classID, date, timeKey) == booking.SlotBooked {
					cmd.Printf("slot %s is already booked, skipping\n", slot)
					continue
				}
				session.Toggle(classID, date, timeKey)
			}

			for _, sel := range session.Draft().Summary() {
				cmd.Printf("booking %s on %s at %s\n", sel.ClassID, sel.Date, strings.Join(sel.Times, ", "))
			}

			result, err := session.Submit(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Printf("booked: %s\n", strings.Join(result.BookIDs, ", "))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&slots, "slot", nil, "slot coordinate classId:date:time (repeatable)")
	return cmd
}

// parseSlot splits a classId:date:time coordinate. The time key itself
// contains a colon ("14:00"), so only the first two separators count.
func parseSlot(s string) (classID, date, timeKey string, err error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return "", "", "", fmt.Errorf("invalid slot %q, expected classId:date:time", s)
	}
	return parts[0], parts[1], parts[2], nil
}
