package entity

import "time"

// Item maestro de ítems (pmi100).
type Item struct {
	ItemCode  string
	ItemName  string
	Spec      string
	Unit      string
	UseYN     string
	UpdatedAt time.Time
}
