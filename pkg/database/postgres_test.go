package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dayumstir/IS4103-Capstone/pkg/config"
)

func TestNew_EmptyURL(t *testing.T) {
	cfg := &config.Config{}

	db, err := New(cfg)

	assert.Nil(t, db)
	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestNew_InvalidURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.URL = "://not-a-url"

	db, err := New(cfg)

	assert.Nil(t, db)
	assert.Error(t, err)
}
