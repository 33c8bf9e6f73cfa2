package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// OptionsKey identifies the singleton options document.
const OptionsKey = "global_options"

// LegacyCategory is the category name given to reasons stored as a flat list.
const LegacyCategory = "General"

type ReasonCategory struct {
	Name  string   `json:"name" bson:"name"`
	Items []string `json:"items" bson:"items"`
}

type OptionSet struct {
	Reasons []ReasonCategory `json:"reasons" bson:"reasons"`
	Sources []string         `json:"sources" bson:"sources"`
}

// OptionsDocument is the stored shape. Reasons stay undecoded so that both the
// categorised and the legacy flat-string layout can be read.
type OptionsDocument struct {
	Key       string        `bson:"key"`
	Reasons   []interface{} `bson:"reasons"`
	Sources   []string      `bson:"sources"`
	UpdatedAt time.Time     `bson:"updatedAt,omitempty"`
}

func EmptyOptions() OptionSet {
	return OptionSet{Reasons: []ReasonCategory{}, Sources: []string{}}
}

func (o OptionSet) IsEmpty() bool {
	return len(o.Reasons) == 0 && len(o.Sources) == 0
}

func (o OptionSet) Category(name string) (ReasonCategory, bool) {
	for _, c := range o.Reasons {
		if c.Name == name {
			return c, true
		}
	}
	return ReasonCategory{}, false
}

/*
* A flat list of strings is the legacy layout, wrap it in one "General" category
* Otherwise decode each element as a {name, items} category
* Elements that are neither are skipped
 */
func NormalizeReasons(raw []interface{}) []ReasonCategory {
	out := []ReasonCategory{}
	if len(raw) == 0 {
		return out
	}
	if _, legacy := raw[0].(string); legacy {
		items := []string{}
		for _, r := range raw {
			if s, ok := r.(string); ok {
				items = append(items, s)
			}
		}
		return append(out, ReasonCategory{Name: LegacyCategory, Items: items})
	}
	for _, r := range raw {
		if c, ok := categoryFrom(r); ok {
			out = append(out, c)
		}
	}
	return out
}

func categoryFrom(v interface{}) (ReasonCategory, bool) {
	var m map[string]interface{}
	switch doc := v.(type) {
	case ReasonCategory:
		return doc, true
	case map[string]interface{}:
		m = doc
	case bson.M:
		m = doc
	case bson.D:
		m = doc.Map()
	default:
		return ReasonCategory{}, false
	}
	name, ok := m["name"].(string)
	if !ok {
		return ReasonCategory{}, false
	}
	c := ReasonCategory{Name: name, Items: []string{}}
	switch items := m["items"].(type) {
	case []interface{}:
		c.Items = stringsOf(items)
	case bson.A:
		c.Items = stringsOf(items)
	case []string:
		c.Items = append(c.Items, items...)
	}
	return c, true
}

func stringsOf(items []interface{}) []string {
	out := []string{}
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func (d OptionsDocument) OptionSet() OptionSet {
	set := OptionSet{Reasons: NormalizeReasons(d.Reasons), Sources: []string{}}
	set.Sources = append(set.Sources, d.Sources...)
	return set
}

// DefaultOptions are shown by the kiosk when nothing has been configured yet.
// They are never written to the store.
func DefaultOptions() OptionSet {
	return OptionSet{
		Reasons: []ReasonCategory{
			{Name: "Facial Procedures", Items: []string{"Botox", "Fillers", "Thread Lift", "Facial Rejuvenation"}},
			{Name: "Body Contouring", Items: []string{"Liposuction", "Tummy Tuck", "Body Lift", "Breast Procedures"}},
			{Name: "Skin Treatments", Items: []string{"Laser Treatment", "Chemical Peel", "Microneedling", "Skin Rejuvenation"}},
			{Name: "Consultation", Items: []string{"General Consultation", "Follow-up", "Not Sure"}},
		},
		Sources: []string{
			"Google Search", "Google Ads", "Instagram", "Facebook", "Practo",
			"Google Maps", "Friend / Family", "Walk-in", OtherSource,
		},
	}
}
