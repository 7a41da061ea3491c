package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/Laisky/errors/v2"
	gconfig "github.com/Laisky/go-config/v2"
	gutils "github.com/Laisky/go-utils/v6"
	gcmd "github.com/Laisky/go-utils/v6/cmd"
	glog "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	"github.com/spf13/cobra"

	"github.com/Piyush-Singh-Chauhan/zuinder-api/internal/web/cms/controller"
	"github.com/Piyush-Singh-Chauhan/zuinder-api/internal/web/cms/dao"
	"github.com/Piyush-Singh-Chauhan/zuinder-api/internal/web/cms/service"
	"github.com/Piyush-Singh-Chauhan/zuinder-api/library/auth"
	"github.com/Piyush-Singh-Chauhan/zuinder-api/library/config"
	"github.com/Piyush-Singh-Chauhan/zuinder-api/library/db/mongo"
	"github.com/Piyush-Singh-Chauhan/zuinder-api/library/log"
	"github.com/Piyush-Singh-Chauhan/zuinder-api/library/media"
)

var rootCMD = &cobra.Command{
	Use:   "zuinder-api",
	Short: "zuinder-api",
	Long:  `bilingual content API service for the zuinder site`,
	Args:  gcmd.NoExtraArgs,
}

func initialize(ctx context.Context, cmd *cobra.Command) (*controller.Controller, error) {
	if err := gconfig.Shared.BindPFlags(cmd.Flags()); err != nil {
		return nil, errors.Wrap(err, "bind pflags")
	}

	setupSettings(ctx)
	setupLogger(ctx)

	if err := validateStartupConfig(); err != nil {
		return nil, errors.Wrap(err, "validate config")
	}

	return setupModules(ctx)
}

// setupModules wires the database, the media store, the CMS service
// and its REST controller from the shared settings.
func setupModules(ctx context.Context) (*controller.Controller, error) {
	// cookies are marked Secure outside debug mode
	authGate, err := auth.New(
		[]byte(gconfig.Shared.GetString("settings.secret")),
		!gconfig.Shared.GetBool("debug"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "setup auth")
	}

	db, err := mongo.NewDB(ctx, mongo.DialInfo{
		Addr:   gconfig.Shared.GetString("settings.db.addr"),
		DBName: gconfig.Shared.GetString("settings.db.db"),
		User:   gconfig.Shared.GetString("settings.db.user"),
		Pwd:    gconfig.Shared.GetString("settings.db.pwd"),
	})
	if err != nil {
		return nil, errors.Wrap(err, "dial db")
	}

	mediaStore := setupMediaStore()

	svc, err := service.New(ctx,
		log.Logger.Named("cms"),
		dao.New(log.Logger.Named("cms_dao"), db),
		mediaStore,
	)
	if err != nil {
		return nil, errors.Wrap(err, "setup cms service")
	}

	return controller.New(log.Logger.Named("cms_ctl"), svc, authGate, mediaStore), nil
}

// setupMediaStore returns nil when no media endpoint is configured;
// the media endpoints then respond 503 and image cleanup is skipped.
func setupMediaStore() *media.Store {
	endpoint := gconfig.Shared.GetString("settings.media.endpoint")
	if endpoint == "" {
		log.Logger.Info("media store not configured")
		return nil
	}

	store, err := media.New(media.Config{
		Endpoint:  endpoint,
		Bucket:    gconfig.Shared.GetString("settings.media.bucket"),
		AccessKey: gconfig.Shared.GetString("settings.media.access_key"),
		SecretKey: gconfig.Shared.GetString("settings.media.secret_key"),
		PublicURL: gconfig.Shared.GetString("settings.media.public_url"),
		UseSSL:    gconfig.Shared.GetBool("settings.media.use_ssl"),
	})
	if err != nil {
		log.Logger.Panic("setup media store", zap.Error(err))
	}

	return store
}

func setupSettings(ctx context.Context) {
	// mode
	if gconfig.Shared.GetBool("debug") {
		fmt.Println("run in debug mode")
		gconfig.Shared.Set("log-level", "debug")
	} else { // prod mode
		fmt.Println("run in prod mode")
	}

	// clock
	gutils.SetInternalClock(100 * time.Millisecond)

	// load configuration
	cfgPath := gconfig.Shared.GetString("config")
	config.LoadFromFile(cfgPath)
}

func setupLogger(ctx context.Context) {
	lvl := gconfig.Shared.GetString("log-level")
	if err := log.Logger.ChangeLevel(glog.Level(lvl)); err != nil {
		log.Logger.Panic("change log level", zap.Error(err), zap.String("level", lvl))
	}
}

func init() {
	rootCMD.PersistentFlags().Bool("debug", false, "run in debug mode")
	rootCMD.PersistentFlags().String("listen", "localhost:8080", "like `localhost:8080`")
	rootCMD.PersistentFlags().StringP("config", "c", "/etc/zuinder-api/settings.yml", "config file path")
	rootCMD.PersistentFlags().String("log-level", "info", "`debug/info/error`")
}

// Execute execute root command
func Execute() {
	if err := rootCMD.Execute(); err != nil {
		glog.Shared.Panic("start", zap.Error(err))
	}
}
