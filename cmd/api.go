package cmd

import (
	"context"

	gconfig "github.com/Laisky/go-config/v2"
	gcmd "github.com/Laisky/go-utils/v6/cmd"
	"github.com/Laisky/zap"
	"github.com/spf13/cobra"

	"github.com/Piyush-Singh-Chauhan/zuinder-api/internal/web"
	"github.com/Piyush-Singh-Chauhan/zuinder-api/internal/web/cms/controller"
	"github.com/Piyush-Singh-Chauhan/zuinder-api/library/log"
)

var apiCtl *controller.Controller

var apiCMD = &cobra.Command{
	Use:   "api",
	Short: "api",
	Long:  `REST API service for the zuinder site`,
	Args:  gcmd.NoExtraArgs,
	PreRun: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		var err error
		if apiCtl, err = initialize(ctx, cmd); err != nil {
			log.Logger.Panic("init", zap.Error(err))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		web.RunServer(gconfig.Shared.GetString("listen"), apiCtl)
	},
}

func init() {
	rootCMD.AddCommand(apiCMD)
}
