// Package importer bulk-loads static city datasets into the database
package importer

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"weatherreminder.app/models"
	"weatherreminder.app/service"
)

// locationEntry matches one record of the static locations dataset
type locationEntry struct {
	Type string `json:"type"`
	Name struct {
		En string `json:"en"`
	} `json:"name"`
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CityImporter loads city records from a JSON dataset into one country
type CityImporter struct {
	countryRepo service.CountryRepositoryInterface
	cityRepo    service.CityRepositoryInterface
}

// NewCityImporter creates a new city importer
func NewCityImporter(
	countryRepo service.CountryRepositoryInterface,
	cityRepo service.CityRepositoryInterface,
) *CityImporter {
	return &CityImporter{
		countryRepo: countryRepo,
		cityRepo:    cityRepo,
	}
}

// ImportFromJSON reads a locations dataset and creates a city row for every
// CITY entry with coordinates, all under the given country (created when
// missing). Non-city entries and entries missing coordinates are skipped.
// Returns the number of cities created.
func (i *CityImporter) ImportFromJSON(path, countryName, countryCode string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read locations dataset: %w", err)
	}

	var entries []locationEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return 0, fmt.Errorf("parse locations dataset: %w", err)
	}

	country, err := i.countryRepo.FindOrCreate(countryName, countryCode)
	if err != nil {
		return 0, fmt.Errorf("find or create country %s: %w", countryName, err)
	}

	created := 0
	for _, entry := range entries {
		if entry.Type != "CITY" {
			continue
		}
		if entry.Lat == 0 || entry.Lng == 0 {
			continue
		}

		city := &models.City{
			Name:      entry.Name.En,
			Lat:       entry.Lat,
			Lon:       entry.Lng,
			CountryID: country.ID,
		}
		if err := i.cityRepo.Create(city); err != nil {
			return created, fmt.Errorf("create city %s: %w", city.Name, err)
		}
		created++
	}

	slog.Info("city import finished",
		"country", countryName, "entries", len(entries), "created", created)
	return created, nil
}
