package utils

import "time"

const dateLayout = "2006-01-02"

// ParseDate valida uma data no formato YYYY-MM-DD
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// FormatDate devolve a data no formato YYYY-MM-DD. Colunas date do Postgres
// chegam como time.Time; sem a formatação a API ecoaria RFC3339.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// Today devolve a data corrente no formato usado pelas tabelas
func Today() string {
	return time.Now().Format(dateLayout)
}
