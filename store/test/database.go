package test

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dentalanalytics/clinicas/store"
	"github.com/dentalanalytics/clinicas/test"
)

const (
	mongoTestHost  = "mongodb://127.0.0.1:27017"
	mongoTimeout   = time.Second * 5
	CollectionName = "Clinicas"
)

var (
	database    *mongo.Database
	unavailable error
)

func TestHost() string {
	if host := os.Getenv("TEST_MONGODB_URI"); host != "" {
		return host
	}
	return mongoTestHost
}

// SetupDatabase connects to the test server and selects a randomly named
// database. When no server is reachable, specs requesting the database are
// skipped.
func SetupDatabase() {
	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()

	client, err := store.NewClient(ctx, TestHost())
	Expect(err).ToNot(HaveOccurred())

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		unavailable = fmt.Errorf("mongo is not available at %s: %w", TestHost(), err)
		return
	}

	databaseName := fmt.Sprintf("clinicas_test_%s_%d", test.Faker.Lexify("????"), ginkgo.GinkgoParallelProcess())
	database = client.Database(databaseName)
}

func TeardownDatabase() {
	if database == nil {
		return
	}
	err := database.Drop(context.Background())
	Expect(err).ToNot(HaveOccurred())

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()
	Expect(database.Client().Disconnect(ctx)).ToNot(HaveOccurred())
	database = nil
}

func GetTestDatabase() *mongo.Database {
	if unavailable != nil {
		ginkgo.Skip(unavailable.Error())
	}
	Expect(database).ToNot(BeNil())
	return database
}

func GetTestCollection() *mongo.Collection {
	return GetTestDatabase().Collection(CollectionName)
}

// Config returns a store configuration pointing at the test database.
func Config(mode string) *store.Config {
	return &store.Config{
		URI:            TestHost(),
		DatabaseName:   GetTestDatabase().Name(),
		CollectionName: CollectionName,
		Mode:           mode,
	}
}
