package domain

import "time"

type Review struct {
	ID        string
	Name      string
	Details   string
	Rating    float64 // 0..5
	CreatedAt time.Time
}
