// Package transform normalizes raw eateries from every source into domain
// records, runs upstream transformations concurrently and merges the sources.
package transform

import (
	"dining_sync/internal/source/dining"
	"dining_sync/internal/source/static"
)

// Kind tags which source a Record came from.
type Kind int

const (
	KindStatic Kind = iota + 1
	KindUpstream
)

func (k Kind) String() string {
	switch k {
	case KindStatic:
		return "static"
	case KindUpstream:
		return "upstream"
	default:
		return "unknown"
	}
}

// Record is a raw eatery from exactly one source.
type Record struct {
	Kind     Kind
	Static   *static.RawEatery
	Upstream *dining.RawEatery
}

func StaticRecord(raw static.RawEatery) Record {
	return Record{Kind: KindStatic, Static: &raw}
}

func UpstreamRecord(raw dining.RawEatery) Record {
	return Record{Kind: KindUpstream, Upstream: &raw}
}

func (r Record) Name() string {
	switch {
	case r.Static != nil:
		return r.Static.Name
	case r.Upstream != nil:
		return r.Upstream.Name
	default:
		return ""
	}
}

func (r Record) RawID() int64 {
	switch {
	case r.Static != nil:
		return r.Static.ID
	case r.Upstream != nil:
		return r.Upstream.ID
	default:
		return 0
	}
}
