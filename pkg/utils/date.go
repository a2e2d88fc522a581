package utils

import (
	"strconv"
	"time"
)

// ParseDate converte yyyy-mm-dd; texto vazio resulta em data zero
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseYear converte o ano informado na query; texto vazio resulta em fallback
func ParseYear(yearStr string, fallback int) (int, error) {
	if yearStr == "" {
		return fallback, nil
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1900 || year > 9999 {
		return 0, &strconv.NumError{Func: "ParseYear", Num: yearStr, Err: strconv.ErrRange}
	}

	return year, nil
}
