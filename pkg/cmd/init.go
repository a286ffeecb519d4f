package cmd

import (
	goerrors "errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/rigby-dev/rigby/pkg/config"
	"github.com/rigby-dev/rigby/pkg/errors"
)

const configFileName = ".rigby.toml"

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default configuration file",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(configFileName); err == nil {
		errorColor.Println(errors.ErrMsgConfigExists)
		return goerrors.New(errors.ErrMsgConfigExists)
	}
	if err := config.Default().Save(configFileName); err != nil {
		return err
	}
	successColor.Println(errors.InfoMsgConfigCreated)
	return nil
}
