package api_test

import (
	"time"

	"wanderlog/pkg/utils"
)

func mustDate(s string) time.Time {
	t, err := utils.ParseTripDate(s)
	if err != nil {
		panic(err)
	}
	return t
}
