package redis_client

import (
	"context"
	"strconv"

	"github.com/metroplan/metroplan/pkg/util"
	"github.com/redis/go-redis/v9"
)

var Client *redis.Client

const defaultConnectionAddress = "localhost:6379"
const defaultDatabase = 0

func Connect() error {
	address := util.GetEnvironmentVariable("METROPLAN_REDIS_ADDRESS", defaultConnectionAddress)
	password := util.GetEnvironmentVariable("METROPLAN_REDIS_PASSWORD", "")

	database := defaultDatabase
	if value := util.GetEnvironmentVariable("METROPLAN_REDIS_DATABASE", ""); value != "" {
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}

		database = n
	}

	Client = redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       database,
	})

	statusCmd := Client.Ping(context.Background())

	return statusCmd.Err()
}
