package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigString(t *testing.T) {
	testCases := []struct {
		name string
		conf Config
		dsn  string
		url  string
	}{
		{
			name: "defaults",
			conf: Config{},
			dsn:  "host=127.0.0.1 port=5432 dbname=postgres sslmode=prefer",
			url:  "postgres://127.0.0.1:5432/postgres?sslmode=prefer",
		},
		{
			name: "credentials",
			conf: Config{Host: "db", User: "gaze", Password: "p@ss", DBName: "marketplace", SSLMode: "disable"},
			dsn:  "host=db port=5432 dbname=marketplace sslmode=disable user=gaze password=p@ss",
			url:  "postgres://gaze:p%40ss@db:5432/marketplace?sslmode=disable",
		},
		{
			name: "url wins",
			conf: Config{Host: "db", URL: "postgres://x@y/z"},
			dsn:  "postgres://x@y/z",
			url:  "postgres://x@y/z",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.dsn, tc.conf.String())
			assert.Equal(t, tc.url, tc.conf.URLString())
		})
	}
}
