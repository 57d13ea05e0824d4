package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/roadcare/pothole-api/schema"
	"github.com/roadcare/pothole-api/store"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("pothole")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}
	defer db.Close()

	if err := db.AutoMigrate(&schema.Admin{}).Error; err != nil {
		panic(err)
	}

	if err := migrateMongo(); err != nil {
		panic(err)
	}

	if err := seedAdmin(db); err != nil {
		panic(err)
	}
}

func migrateMongo() error {
	ctx := context.Background()
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(1)
	client, err := mongo.NewClient(opts)
	if err != nil {
		return err
	}
	if err := client.Connect(ctx); err != nil {
		return err
	}
	defer client.Disconnect(ctx)

	return schema.NewMongoDBIndexer(client, viper.GetString("mongo.database")).IndexAll()
}

// seedAdmin creates the configured admin account when it does not exist
// yet. This is the only way admins enter the system.
func seedAdmin(db *gorm.DB) error {
	email := viper.GetString("admin.seed.email")
	password := viper.GetString("admin.seed.password")

	if email == "" || password == "" {
		fmt.Println("no admin seed configured, skipping")
		return nil
	}

	s := store.NewRoadcareStore(db)

	if _, err := s.GetAdminByEmail(email); err == nil {
		fmt.Println("admin already exists:", email)
		return nil
	} else if !gorm.IsRecordNotFoundError(err) {
		return err
	}

	if _, err := s.CreateAdmin(email, password); err != nil {
		return err
	}

	fmt.Println("created admin:", email)
	return nil
}
