package services

import (
	"IntakeKiosk/models"

	"context"
	"log"
	"strings"
	"time"
)

type OptionService struct {
	store OptionStore
	now   func() time.Time
}

func NewOptionService(store OptionStore) *OptionService {
	return &OptionService{store: store, now: time.Now}
}

/*
* Load the singleton document
* Missing document means nothing has been configured yet, return an empty set without writing
* Legacy flat reasons are normalised into the "General" category on the way out
 */
func (s *OptionService) Get(ctx context.Context) (models.OptionSet, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		log.Println("Error from options load: ", err)
		return models.OptionSet{}, storeError("load options", err)
	}
	if doc == nil {
		log.Println("No options found in database, returning empty structure")
		return models.EmptyOptions(), nil
	}
	set := doc.OptionSet()
	log.Printf("Fetched options: %d categories, %d sources", len(set.Reasons), len(set.Sources))
	return set, nil
}

/*
* Validate the set
* Replace the whole document, never merge
 */
func (s *OptionService) Save(ctx context.Context, set models.OptionSet) error {
	set, err := validateOptionSet(set)
	if err != nil {
		log.Println("Error from validateOptionSet: ", err)
		return err
	}
	reasons := make([]interface{}, 0, len(set.Reasons))
	for _, c := range set.Reasons {
		reasons = append(reasons, c)
	}
	doc := models.OptionsDocument{
		Key:       models.OptionsKey,
		Reasons:   reasons,
		Sources:   set.Sources,
		UpdatedAt: s.now(),
	}
	if err := s.store.Replace(ctx, doc); err != nil {
		log.Println("Error from options replace: ", err)
		return storeError("save options", err)
	}
	return nil
}

/*
* Category names must be non-empty and unique, items are trimmed and blanks dropped
* Sources are trimmed and deduplicated in order
* "Other" always survives and sits last
 */
func validateOptionSet(set models.OptionSet) (models.OptionSet, error) {
	out := models.OptionSet{Reasons: []models.ReasonCategory{}, Sources: []string{}}
	seen := map[string]bool{}
	for _, c := range set.Reasons {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return out, NewValidationError("Category name must not be empty")
		}
		if seen[name] {
			return out, NewValidationError("Duplicate category: %s", name)
		}
		seen[name] = true
		items := []string{}
		for _, it := range c.Items {
			if it = strings.TrimSpace(it); it != "" {
				items = append(items, it)
			}
		}
		out.Reasons = append(out.Reasons, models.ReasonCategory{Name: name, Items: items})
	}
	seenSource := map[string]bool{}
	for _, src := range set.Sources {
		src = strings.TrimSpace(src)
		if src == "" || src == models.OtherSource || seenSource[src] {
			continue
		}
		seenSource[src] = true
		out.Sources = append(out.Sources, src)
	}
	out.Sources = append(out.Sources, models.OtherSource)
	return out, nil
}

/*
* Check the raw request body
* reasons and sources must both be arrays
* every reason must be an object with a string name and an items array of strings
* a flat string array is the legacy layout and is rejected on write
 */
func ParseOptionSet(body map[string]interface{}) (models.OptionSet, error) {
	rawReasons, ok := body["reasons"].([]interface{})
	if !ok {
		return models.OptionSet{}, ErrInvalidFormat
	}
	rawSources, ok := body["sources"].([]interface{})
	if !ok {
		return models.OptionSet{}, ErrInvalidFormat
	}
	set := models.OptionSet{Reasons: []models.ReasonCategory{}, Sources: []string{}}
	for _, r := range rawReasons {
		cat, ok := r.(map[string]interface{})
		if !ok {
			return models.OptionSet{}, ErrLegacyReasons
		}
		name, ok := cat["name"].(string)
		if !ok {
			return models.OptionSet{}, ErrLegacyReasons
		}
		items, ok := cat["items"].([]interface{})
		if !ok {
			return models.OptionSet{}, ErrLegacyReasons
		}
		c := models.ReasonCategory{Name: name, Items: []string{}}
		for _, it := range items {
			s, ok := it.(string)
			if !ok {
				return models.OptionSet{}, ErrLegacyReasons
			}
			c.Items = append(c.Items, s)
		}
		set.Reasons = append(set.Reasons, c)
	}
	for _, src := range rawSources {
		s, ok := src.(string)
		if !ok {
			return models.OptionSet{}, NewValidationError("Sources must be strings")
		}
		set.Sources = append(set.Sources, s)
	}
	return set, nil
}
