package types

import "time"

type Entry struct {
	Section Section
	Title   string
	Type    string
	Date    time.Time
	Author  string
	Witness string
}
