package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meterlab/meterlab/domain/oor"
)

func oorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "oor",
		Short: "Validate and expand OOR serial text",
		Long: `Work with out-of-range serial text such as "1000-1010, 1050":
validate it, show its compact and detailed forms, or estimate a
quantity from a plain serial range.`,
	}

	cmd.AddCommand(oorValidateCmd())
	cmd.AddCommand(oorShowCmd())
	cmd.AddCommand(oorQtyCmd())

	return cmd
}

func oorValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <text>",
		Short: "Check OOR serial text and report its totals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			serial, err := oor.Parse(args[0])
			if err != nil {
				return fmt.Errorf("%s", oor.ValidationMessage)
			}
			fmt.Printf("OK: %d entries, %d devices\n", serial.Len(), serial.TotalQty())
			return nil
		},
	}
}

func oorShowCmd() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "show <text>",
		Short: "Print the compact form and detailed breakdown of OOR text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			serial, err := oor.Parse(args[0])
			if err != nil {
				return fmt.Errorf("%s", oor.ValidationMessage)
			}
			if serial.IsEmpty() {
				fmt.Println("(empty)")
				return nil
			}
			fmt.Println(serial.Display(width))
			fmt.Println()
			fmt.Println(serial.Breakdown())
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", oor.DefaultDisplayLength, "Maximum length of the compact form before truncation")

	return cmd
}

func oorQtyCmd() *cobra.Command {
	var beg, end string

	cmd := &cobra.Command{
		Use:   "qty",
		Short: "Estimate a quantity from beginning and ending serials",
		Long: `Estimate how many devices a serial range covers. Non-numeric
characters are ignored, and unusable ranges report zero rather
than erroring, matching how quantities fall back during entry.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(oor.QtyFromSerialRange(beg, end))
			return nil
		},
	}

	cmd.Flags().StringVar(&beg, "beg", "", "Beginning serial number")
	cmd.Flags().StringVar(&end, "end", "", "Ending serial number")

	return cmd
}
