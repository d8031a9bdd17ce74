// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package gallery

import "time"

type Photo struct {
	Key          string    `json:"key"`
	Album        string    `json:"album"`
	URL          string    `json:"url"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
}

type Image struct {
	Name string
	Data []byte
}
