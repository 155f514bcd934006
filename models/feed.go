// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Article is an informational article served by the remote feed.
type Article struct {
	Title    string `json:"title"`
	FullText string `json:"fullText"`
}

// SharingRequest is an inbound request from a care provider asking the
// patient to share data.
type SharingRequest struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	RequestedData []string  `json:"requestedData"`
	DateRange     DateRange `json:"dateRange"`
}

// DateRange is an inclusive range of YYYY-MM-DD dates.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Contains reports whether date lies inside the range. Empty bounds are open.
func (r DateRange) Contains(date string) bool {
	if r.Start != "" && date < r.Start {
		return false
	}
	if r.End != "" && date > r.End {
		return false
	}
	return true
}
