// Package weather provides the mock weather store and the get_weather
// function tool used by the tutorial agents.
//
// Lookups are keyed by a normalized city name: lowercased with all
// spaces removed, so "New York", "new york" and "NEWYORK" resolve to
// the same record.
package weather

import (
	"fmt"
	"strings"
)

// Record is one city's mock weather data.
type Record struct {
	City      string // display name, e.g. "New York"
	TempC     int
	Condition string
}

// DB maps normalized city keys to weather records. It is populated once
// and read-only thereafter.
type DB map[string]Record

// Normalize lowercases a city name and strips all spaces.
func Normalize(city string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(city)), " ", "")
}

// DemoDB is the three-city store used by step1 and step2. Paris is
// deliberately absent so the scripted conversation exercises the error
// path.
func DemoDB() DB {
	return DB{
		"newyork": {City: "New York", TempC: 25, Condition: "Sunny"},
		"london":  {City: "London", TempC: 15, Condition: "Cloudy"},
		"tokyo":   {City: "Tokyo", TempC: 18, Condition: "Light rain"},
	}
}

// TeamDB is the five-city store used by the step3 agent team.
func TeamDB() DB {
	return DB{
		"london":  {City: "London", TempC: 15, Condition: "Cloudy"},
		"newyork": {City: "New York", TempC: 22, Condition: "Sunny"},
		"tokyo":   {City: "Tokyo", TempC: 18, Condition: "Rainy"},
		"paris":   {City: "Paris", TempC: 12, Condition: "Windy"},
		"sydney":  {City: "Sydney", TempC: 25, Condition: "Clear"},
	}
}

// Result is the discriminated tool result. Status is "success" with a
// Report, or "error" with an ErrorMessage.
type Result struct {
	Status       string `json:"status"`
	Report       string `json:"report,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// Lookup returns the weather report for a city. It is total over any
// string input: an unknown or empty city yields an error-status Result,
// never a failure.
func (db DB) Lookup(city string) Result {
	rec, ok := db[Normalize(city)]
	if !ok {
		return Result{
			Status:       "error",
			ErrorMessage: fmt.Sprintf("Sorry, I don't have weather information for '%s'.", city),
		}
	}
	return Result{
		Status: "success",
		Report: fmt.Sprintf("The weather in %s is currently %s with a temperature of %d°C.",
			rec.City, strings.ToLower(rec.Condition), rec.TempC),
	}
}
