package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/getsentry/sentry-go"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"googlemaps.github.io/maps"

	"github.com/roadcare/pothole-api/api"
	"github.com/roadcare/pothole-api/geo"
	"github.com/roadcare/pothole-api/schema"
)

const (
	bootstrapAttempts = 5
	bootstrapBackoff  = 3 * time.Second
)

var (
	server *api.Server
	ormDB  *gorm.DB
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("pothole")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

// openPostgres dials the relational store with bounded attempts and a fixed
// backoff. This bootstrap loop is the only retry in the system.
func openPostgres(conn string) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	for attempt := 1; attempt <= bootstrapAttempts; attempt++ {
		db, err = gorm.Open("postgres", conn)
		if err == nil {
			return db, nil
		}

		log.WithFields(log.Fields{
			"prefix":  "init",
			"attempt": attempt,
			"error":   err,
		}).Warn("postgres not ready, retrying")
		time.Sleep(bootstrapBackoff)
	}

	return nil, err
}

func connectMongo(conn string, poolSize uint64) (*mongo.Client, error) {
	opts := options.Client().ApplyURI(conn)
	opts.SetMaxPoolSize(poolSize)

	client, err := mongo.NewClient(opts)
	if err != nil {
		return nil, err
	}
	if err := client.Connect(context.Background()); err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= bootstrapAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = client.Ping(ctx, nil)
		cancel()
		if err == nil {
			return client, nil
		}

		log.WithFields(log.Fields{
			"prefix":  "init",
			"attempt": attempt,
			"error":   err,
		}).Warn("mongo not ready, retrying")
		time.Sleep(bootstrapBackoff)
	}

	return nil, err
}

// buildResolver assembles the reverse-geocoding chain: nominatim first,
// google maps as a fallback when an API key is configured.
func buildResolver(httpClient *http.Client) geo.LocationResolver {
	resolvers := []geo.LocationResolver{
		geo.NewNominatimLocationResolver(
			httpClient,
			viper.GetString("nominatim.endpoint"),
			viper.GetString("nominatim.agent"),
		),
	}

	if apiKey := viper.GetString("googlemaps.apikey"); apiKey != "" {
		mapClient, err := maps.NewClient(maps.WithAPIKey(apiKey))
		if err != nil {
			log.WithField("prefix", "init").WithError(err).Error("init google maps client")
		} else {
			resolvers = append(resolvers, geo.NewGeocodingLocationResolver(mapClient))
		}
	}

	if len(resolvers) == 1 {
		return resolvers[0]
	}
	return geo.NewMultipleLocationResolver(resolvers...)
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if ormDB != nil {
			log.Info("Shutting down db store")
			if err := ormDB.Close(); err != nil {
				log.Error(err)
			}
		}

		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	httpClient := &http.Client{
		Timeout: 10 * time.Second,
	}

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	db, err := openPostgres(viper.GetString("orm.conn"))
	if err != nil {
		log.Panic(err)
	}
	ormDB = db

	mongoClient, err := connectMongo(viper.GetString("mongo.conn"), viper.GetUint64("mongo.pool"))
	if err != nil {
		log.Panicf("connect mongo database with error: %s", err)
	}

	// The spatial index only affects query performance, so a failure here
	// is logged and startup continues.
	indexer := schema.NewMongoDBIndexer(mongoClient, viper.GetString("mongo.database"))
	if err := indexer.IndexAll(); err != nil {
		log.WithField("prefix", "init").WithError(err).Error("ensure mongo indexes")
	}

	resolver := buildResolver(httpClient)
	geo.SetLocationResolver(resolver)

	// Init http server
	server = api.NewServer(ormDB, mongoClient, resolver)
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
