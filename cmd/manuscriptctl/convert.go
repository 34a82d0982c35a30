package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/byte-squad-abac/manuscript/internal/myanmar"
)

func convertCmd() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert Myanmar text between Zawgyi and Unicode encodings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if len(args) == 1 {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}

			var target myanmar.Encoding
			switch to {
			case "unicode":
				target = myanmar.EncodingUnicode
			case "zawgyi":
				target = myanmar.EncodingZawgyi
			default:
				return fmt.Errorf("--to must be unicode or zawgyi, got %q", to)
			}

			fmt.Fprint(cmd.OutOrStdout(), myanmar.Convert(string(data), target))
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "unicode", "target encoding: unicode|zawgyi")
	return cmd
}
