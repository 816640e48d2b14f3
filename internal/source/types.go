// Package source holds the raw descriptor shapes shared by the upstream API
// and the curated static seed.
package source

import "encoding/json"

type Descriptor struct {
	Descr      string `json:"descr"`
	DescrShort string `json:"descrshort"`
}

type DiningItem struct {
	Descr        string `json:"descr"`
	Category     string `json:"category"`
	Item         string `json:"item"`
	Healthy      bool   `json:"healthy"`
	ShowCategory bool   `json:"showCategory"`
}

type MenuItem struct {
	Item    string `json:"item"`
	Healthy bool   `json:"healthy"`
	SortIdx int    `json:"sortIdx"`
}

type MenuCategory struct {
	Category string     `json:"category"`
	SortIdx  int        `json:"sortIdx"`
	Items    []MenuItem `json:"items"`
}

type Announcement struct {
	Title string `json:"title"`
}

// UnmarshalJSON accepts either a bare string or a {"title": ...} object.
func (a *Announcement) UnmarshalJSON(data []byte) error {
	var title string
	if err := json.Unmarshal(data, &title); err == nil {
		a.Title = title
		return nil
	}
	var obj struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	a.Title = obj.Title
	return nil
}
