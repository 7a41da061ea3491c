// Package mongo wraps the MongoDB driver client used by the application.
package mongo

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	mongoLib "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/Piyush-Singh-Chauhan/zuinder-api/library/log"
)

const (
	dialTimeout         = 30 * time.Second
	healthCheckInterval = 5 * time.Second
)

// DB is the exported database handle.
type DB interface {
	Close(ctx context.Context) error
	GetCol(colName string) *mongoLib.Collection
	CurrentDB() *mongoLib.Database
}

// DialInfo defines the MongoDB connection information.
type DialInfo struct {
	Addr,
	DBName,
	User,
	Pwd string
}

type db struct {
	cli      *mongoLib.Client
	dialInfo DialInfo

	closeOnce sync.Once
	cancel    context.CancelFunc
}

// buildMongoURI builds a MongoDB connection URI from the given dial info.
func buildMongoURI(dialInfo DialInfo) string {
	uri := &url.URL{
		Scheme: "mongodb",
		Host:   dialInfo.Addr,
		Path:   "/" + dialInfo.DBName,
	}
	if dialInfo.User != "" || dialInfo.Pwd != "" {
		uri.User = url.UserPassword(dialInfo.User, dialInfo.Pwd)
	}

	return uri.String()
}

// NewDB dials a single long-lived client and relies on the driver's pool
// for reconnects. Failures surface at startup via an initial ping.
func NewDB(ctx context.Context, dialInfo DialInfo) (DB, error) {
	log.Logger.Info("try to connect to mongodb",
		zap.String("addr", dialInfo.Addr),
		zap.String("db", dialInfo.DBName),
	)

	dialCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(buildMongoURI(dialInfo)).
		SetConnectTimeout(dialTimeout).
		SetServerSelectionTimeout(dialTimeout).
		SetRetryReads(true).
		SetRetryWrites(true).
		SetMaxPoolSize(100).
		SetMaxConnIdleTime(300 * time.Second)

	cli, err := mongoLib.Connect(dialCtx, clientOpts)
	if err != nil {
		return nil, errors.Wrap(err, "connect db")
	}

	if err := cli.Ping(dialCtx, readpref.Primary()); err != nil {
		_ = cli.Disconnect(context.Background())
		return nil, errors.Wrap(err, "ping db")
	}

	checkCtx, checkCancel := context.WithCancel(context.Background())
	d := &db{
		cli:      cli,
		dialInfo: dialInfo,
		cancel:   checkCancel,
	}
	go d.runHealthCheck(checkCtx)

	return d, nil
}

// runHealthCheck pings periodically and logs when the server is
// unreachable. The driver recovers connections on its own.
func (d *db) runHealthCheck(ctx context.Context) {
	ticker := time.NewTicker(healthCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := d.cli.Ping(pingCtx, readpref.Primary())
		cancel()

		if err != nil {
			log.Logger.Warn("mongodb ping failed (driver will auto-recover)",
				zap.Error(err),
				zap.String("addr", d.dialInfo.Addr),
			)
		}
	}
}

// CurrentDB returns the database named in the dial info.
func (d *db) CurrentDB() *mongoLib.Database {
	return d.cli.Database(d.dialInfo.DBName)
}

// GetCol returns a collection handle by name.
func (d *db) GetCol(colName string) *mongoLib.Collection {
	return d.CurrentDB().Collection(colName)
}

// Close stops the health checker and disconnects the client.
func (d *db) Close(ctx context.Context) error {
	var err error
	d.closeOnce.Do(func() {
		if d.cancel != nil {
			d.cancel()
		}

		if ctx == nil {
			ctx = context.Background()
		}
		closeCtx, cancel := context.WithTimeout(ctx, dialTimeout)
		defer cancel()

		err = d.cli.Disconnect(closeCtx)
	})

	return err
}
