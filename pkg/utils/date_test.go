package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	// Colunas date do Postgres chegam como meia-noite UTC; a API deve
	// devolver só a data, nunca o timestamp RFC3339
	fromColumn := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-08-28", FormatDate(fromColumn))

	withClock := time.Date(2026, 1, 5, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-01-05", FormatDate(withClock))
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2026-08-28")
	assert.NoError(t, err)
	assert.Equal(t, "2026-08-28", FormatDate(*date))

	_, err = ParseDate("28/08/2026")
	assert.Error(t, err)
}
