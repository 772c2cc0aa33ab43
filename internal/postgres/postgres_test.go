package postgres

import (
	"testing"

	"github.com/SergeyBogomolovv/checkout-service/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestConnectionStrings(t *testing.T) {
	cfg := config.Postgres{
		Host:     "db",
		Port:     5432,
		DBName:   "checkout",
		User:     "app",
		Password: "p@ss word",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=db port=5432 user=app password=p@ss word dbname=checkout sslmode=disable", DSN(cfg))
	assert.Equal(t, "postgres://app:p%40ss%20word@db:5432/checkout?sslmode=disable", URL(cfg))
}
